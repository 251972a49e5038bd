/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package namespace

import (
	"sync"
	"sync/atomic"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/recfactory/pkg/factory"
)

// Namespace is a set of record types bound to names.
// It is safe for concurrent use.
type Namespace struct {
	mu     sync.RWMutex
	types  map[string]factory.IRecordType
	opt    options
	sealed atomic.Bool
}

// Creates empty namespace.
func New(opts ...Option) *Namespace {
	ns := &Namespace{types: make(map[string]factory.IRecordType)}
	for _, o := range opts {
		o(&ns.opt)
	}
	return ns
}

// Allows re-registering an existing name.
func WithAllowReplace() Option { return func(o *options) { o.allowReplace = true } }

// Builds record type with specified name and registers it.
//
// Name is passed to factory.New, so record type knows it.
func (ns *Namespace) Define(name string, fields []string, opts ...factory.Option) (factory.IRecordType, error) {
	if ns.Sealed() {
		return nil, ErrSealed
	}
	t, err := factory.New(fields, append(slices.Clone(opts), factory.WithName(name))...)
	if err != nil {
		return nil, err
	}
	if err := ns.Register(t, name); err != nil {
		return nil, err
	}
	return t, nil
}

// Returns type by name.
func (ns *Namespace) Lookup(name string) (factory.IRecordType, bool) {
	ns.mu.RLock()
	t, ok := ns.types[name]
	ns.mu.RUnlock()
	return t, ok
}

// Returns type by name or ErrUnknown.
func (ns *Namespace) Get(name string) (factory.IRecordType, error) {
	if t, ok := ns.Lookup(name); ok {
		return t, nil
	}
	return nil, errUnknown(name)
}

// Returns type by name. Panics if not found.
func (ns *Namespace) MustLookup(name string) factory.IRecordType {
	t, err := ns.Get(name)
	if err != nil {
		panic(err)
	}
	return t
}

// Returns registered names in lexicographic order.
func (ns *Namespace) Names() []string {
	ns.mu.RLock()
	names := maps.Keys(ns.types)
	ns.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Binds type to name. Type may be anonymous or have another name: one type
// can be bound to many names.
//
// # Errors:
//   - factory.ErrInvalidTypeNameError if name is not valid type name,
//   - ErrDuplicate if name is already bound (unless WithAllowReplace),
//   - ErrSealed if namespace is sealed.
func (ns *Namespace) Register(t factory.IRecordType, name string) error {
	if ns.Sealed() {
		return ErrSealed
	}
	if t == nil {
		return ErrNilType
	}
	if ok, err := factory.ValidTypeName(name); !ok {
		return factory.ErrInvalidTypeName(name, err)
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()

	if _, exists := ns.types[name]; exists && !ns.opt.allowReplace {
		return errDuplicate(name)
	}
	ns.types[name] = t

	if logger.IsVerbose() {
		logger.Verbose("record type registered as «"+name+"»:", t)
	}
	return nil
}

// Prevents further registrations. Returns true if this call sealed namespace.
func (ns *Namespace) Seal() bool { return !ns.sealed.Swap(true) }

// Returns is namespace sealed.
func (ns *Namespace) Sealed() bool { return ns.sealed.Load() }

// Returns count of registered names.
func (ns *Namespace) Len() int {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return len(ns.types)
}
