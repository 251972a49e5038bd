/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

// Builds new record type with specified fields.
//
// # Errors:
//   - ErrInvalidFieldNameError if some field is not valid identifier or is declared twice,
//   - ErrInvalidTypeNameError if name specified and it is not valid type name,
//   - ErrInvalidMethodNameError if some extension method has invalid name.
func New(fields []string, opts ...Option) (IRecordType, error) {
	t, err := newRecordType(fields, opts...)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Same as New, but panics on error.
func MustNew(fields []string, opts ...Option) IRecordType {
	t, err := New(fields, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Sets type name. Name should start with uppercase letter.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// Adds extension. Extensions are applied in order, after fields accessors are built.
// Method from later extension overrides method with the same name from earlier one.
func WithExtension(ext IExtension) Option {
	return func(o *options) { o.extensions = append(o.extensions, ext) }
}

// Adds single extension method.
func WithMethod(name string, m Method) Option {
	return WithExtension(Methods{name: m})
}
