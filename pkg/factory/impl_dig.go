/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Value which can be navigated by Dig
type digger interface {
	Dig(path ...Key) any
}

func (r *record) Dig(path ...Key) any {
	if len(path) == 0 {
		return nil
	}
	name, ok := path[0].Name()
	if !ok {
		return nil
	}
	v, ok := r.ToMapping().Get(name)
	if !ok {
		return nil
	}
	return dig(v, path[1:])
}

func dig(v any, path []Key) any {
	if len(path) == 0 {
		return v
	}
	k, rest := path[0], path[1:]
	switch c := v.(type) {
	case digger:
		return c.Dig(path...)
	case *orderedmap.OrderedMap[string, any]:
		if n, ok := k.Name(); ok {
			if nv, ok := c.Get(n); ok {
				return dig(nv, rest)
			}
		}
	case map[string]any:
		if n, ok := k.Name(); ok {
			if nv, ok := c[n]; ok {
				return dig(nv, rest)
			}
		}
	case []any:
		if i, ok := k.Position(); ok {
			if i < 0 {
				i += len(c)
			}
			if i >= 0 && i < len(c) {
				return dig(c[i], rest)
			}
		}
	}
	return nil
}
