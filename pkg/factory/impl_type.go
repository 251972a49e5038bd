/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type options struct {
	name       string
	extensions []IExtension
}

// Implements IRecordType
type recordType struct {
	id      uuid.UUID
	name    string
	fields  []string
	index   map[string]int
	methods map[string]Method
}

func newRecordType(fields []string, opts ...Option) (*recordType, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	if o.name != "" {
		if ok, err := ValidTypeName(o.name); !ok {
			return nil, ErrInvalidTypeName(o.name, err)
		}
	}

	t := &recordType{
		id:      uuid.New(),
		name:    o.name,
		fields:  make([]string, 0, len(fields)),
		index:   make(map[string]int, len(fields)),
		methods: make(map[string]Method),
	}

	for _, f := range fields {
		if ok, err := ValidIdent(f); !ok {
			return nil, ErrInvalidFieldName(f, err)
		}
		if _, exists := t.index[f]; exists {
			return nil, ErrInvalidFieldName(f, errFieldRedeclar)
		}
		t.index[f] = len(t.fields)
		t.fields = append(t.fields, f)
	}

	for _, ext := range o.extensions {
		if err := t.extend(ext); err != nil {
			return nil, err
		}
	}

	if logger.IsVerbose() {
		logger.Verbose("record type built:", t)
	}
	return t, nil
}

func (t *recordType) Accessor(name string) (Accessor, error) {
	idx, ok := t.index[name]
	if !ok {
		return Accessor{}, ErrUnknownField(name, t)
	}
	return Accessor{
		Name: name,
		Get:  func(r IRecord) any { return t.recordOf(r).values[idx] },
		Set:  func(r IRecord, v any) { t.recordOf(r).values[idx] = v },
	}, nil
}

func (t *recordType) FieldCount() int { return len(t.fields) }

func (t *recordType) FieldIndex(name string) (idx int, ok bool) {
	idx, ok = t.index[name]
	return idx, ok
}

func (t *recordType) Fields() []string { return slices.Clone(t.fields) }

func (t *recordType) ID() uuid.UUID { return t.id }

func (t *recordType) Method(name string) Method { return t.methods[name] }

func (t *recordType) MustNew(values ...any) IRecord {
	r, err := t.New(values...)
	if err != nil {
		panic(err)
	}
	return r
}

func (t *recordType) Name() string { return t.name }

func (t *recordType) New(values ...any) (IRecord, error) {
	if len(values) > len(t.fields) {
		return nil, ErrTooManyValues(len(values), t)
	}
	r := &record{
		typ:    t,
		values: make([]any, len(t.fields)),
	}
	copy(r.values, values)
	return r, nil
}

func (t *recordType) String() string {
	name := t.name
	if name == "" {
		name = "#" + t.id.String()[:8]
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(t.fields, ", "))
}

// Adds extension methods. Methods are added in name order, so errors are reproducible
func (t *recordType) extend(ext IExtension) error {
	methods := ext.Methods()
	names := maps.Keys(methods)
	slices.Sort(names)
	for _, n := range names {
		if ok, err := ValidIdent(n); !ok {
			return ErrInvalidMethodName(n, err)
		}
		m := methods[n]
		if m == nil {
			return ErrInvalidMethodName(n, errMethodMissed)
		}
		if _, exists := t.methods[n]; exists && logger.IsVerbose() {
			logger.Verbose(fmt.Sprintf("%v: method «%s» overridden", t, n))
		}
		t.methods[n] = m
	}
	return nil
}

// Returns internal record. Panics if r is not a record of this type
func (t *recordType) recordOf(r IRecord) *record {
	rec, ok := r.(*record)
	if !ok || rec.typ != t {
		panic(fmt.Errorf("%v is not a record of type %v", r, t))
	}
	return rec
}
