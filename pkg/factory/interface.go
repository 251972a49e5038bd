/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import (
	"iter"

	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record type. Describes ordered list of named fields.
//
// Record type is immutable after build and can be shared between goroutines.
type IRecordType interface {
	// Returns type name.
	//
	// Returns empty string for anonymous types.
	Name() string

	// Unique type identifier.
	ID() uuid.UUID

	// Returns field names in declaration order.
	Fields() []string

	// Returns fields count
	FieldCount() int

	// Returns field position by name.
	FieldIndex(name string) (idx int, ok bool)

	// Returns getter and setter bound to specified field.
	// Getter and setter panic if called for record of another type.
	//
	// Returns ErrUnknownFieldError if field not found.
	Accessor(name string) (Accessor, error)

	// Returns extension method by name.
	//
	// Returns nil if not found.
	Method(name string) Method

	// Creates new record. Values are assigned to fields in declaration order,
	// omitted trailing fields are nil.
	//
	// Returns ErrTooManyValuesError if more values than fields specified.
	New(values ...any) (IRecord, error)

	// Same as New, but panics on error.
	MustNew(values ...any) IRecord

	// Returns "Name(f1, f2, …)" or "#<id>(f1, f2, …)" for anonymous types.
	String() string
}

// Record is a value of record type.
//
// Record is mutable and not safe for concurrent mutations.
type IRecord interface {
	// Returns record type
	Type() IRecordType

	// Returns is other record has the same type and equal values.
	Equals(other IRecord) bool

	// Returns hash code, consistent with Equals.
	Hash() uint64

	// Returns value by position or field name.
	//
	// # Errors:
	//   - ErrIndexOutOfRangeError if position is out of range,
	//   - ErrUnknownFieldError if field not found.
	Get(Key) (any, error)

	// Assigns value by position or field name. Errors are the same as for Get.
	Set(Key, any) error

	// Returns copy of values in declaration order.
	Values() []any

	// Returns values at specified positions in requested order.
	ValuesAt(positions ...int) ([]any, error)

	// Returns field names in declaration order.
	Members() []string

	// Returns fields count.
	Len() int

	// Returns ordered field name → value mapping.
	ToMapping() *orderedmap.OrderedMap[string, any]

	// Calls visit for each value in declaration order. Returns record itself.
	Each(visit func(any)) IRecord

	// Returns restartable sequence of values.
	All() iter.Seq[any]

	// Calls visit for each (name, value) pair in declaration order. Returns record itself.
	EachPair(visit func(string, any)) IRecord

	// Returns restartable sequence of (name, value) pairs.
	Pairs() iter.Seq2[string, any]

	// Returns values satisfied by predicate.
	Select(pred func(any) bool) []any

	// Returns lazy sequence of values satisfied by predicate.
	Filter(pred func(any) bool) iter.Seq[any]

	// Returns is record contains specified value.
	Contains(v any) bool

	// Navigates nested values. First key is field name, next keys are applied
	// to nested records, maps and slices.
	//
	// Returns nil if path not found.
	Dig(path ...Key) any

	// Calls extension method.
	//
	// Returns ErrUnknownMethodError if type has no such method.
	Call(method string, args ...any) (any, error)

	String() string
}

// Getter and setter pair, bound to one field.
type Accessor struct {
	Name string
	Get  func(IRecord) any
	Set  func(IRecord, any)
}

// Extension method
type Method func(r IRecord, args ...any) (any, error)

// Extension is a set of named methods added to record type after fields accessors are built.
type IExtension interface {
	Methods() map[string]Method
}

// Option configures type builder
type Option func(*options)
