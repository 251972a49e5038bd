/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

// Methods is a naked map extension
type Methods map[string]Method

func (m Methods) Methods() map[string]Method { return m }
