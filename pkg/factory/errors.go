/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import (
	"errors"
	"fmt"
)

func enrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrInvalidFieldNameError = errors.New("invalid field name")

func ErrInvalidFieldName(name string, reason error) error {
	if reason == nil {
		return enrichError(ErrInvalidFieldNameError, "«%s»", name)
	}
	return enrichError(ErrInvalidFieldNameError, "«%s»: %v", name, reason)
}

var ErrInvalidTypeNameError = errors.New("invalid type name")

func ErrInvalidTypeName(name string, reason error) error {
	if reason == nil {
		return enrichError(ErrInvalidTypeNameError, "«%s»", name)
	}
	return enrichError(ErrInvalidTypeNameError, "«%s»: %v", name, reason)
}

var ErrInvalidMethodNameError = errors.New("invalid method name")

func ErrInvalidMethodName(name string, reason error) error {
	return enrichError(ErrInvalidMethodNameError, "«%s»: %v", name, reason)
}

var ErrIndexOutOfRangeError = errors.New("index out of range")

func ErrIndexOutOfRange(idx, size int) error {
	return enrichError(ErrIndexOutOfRangeError, "offset %d out of record range (size: %d)", idx, size)
}

var ErrUnknownFieldError = errors.New("unknown field")

func ErrUnknownField(name string, t IRecordType) error {
	return enrichError(ErrUnknownFieldError, "«%s» in %v", name, t)
}

var ErrTooManyValuesError = errors.New("too many values")

func ErrTooManyValues(got int, t IRecordType) error {
	return enrichError(ErrTooManyValuesError, "%d values for %v", got, t)
}

var ErrUnknownMethodError = errors.New("unknown method")

func ErrUnknownMethod(name string, t IRecordType) error {
	return enrichError(ErrUnknownMethodError, "«%s» in %v", name, t)
}

// ident validation reasons
var (
	errIdentMissed   = errors.New("ident is empty")
	errIdentTooLong  = errors.New("ident is too long")
	errIdentBadChar  = errors.New("ident has invalid char")
	errNotCapital    = errors.New("must start with uppercase letter")
	errFieldRedeclar = errors.New("field is already declared")
	errMethodMissed  = errors.New("method is nil")
)
