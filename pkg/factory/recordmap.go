/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package factory

import "iter"

// RecordMap is a map with record keys. Keys are equivalent if they are equal by Equals.
//
// Keys are stored by reference: mutating a key record after Put makes it unreachable
// until it is restored to the value it had when put.
type RecordMap[V any] struct {
	buckets map[uint64][]recordMapEntry[V]
	count   int
}

type recordMapEntry[V any] struct {
	key   IRecord
	value V
}

func NewRecordMap[V any]() *RecordMap[V] {
	return &RecordMap[V]{buckets: make(map[uint64][]recordMapEntry[V])}
}

// Enumerates all key-value pairs in undefined order.
func (m *RecordMap[V]) All() iter.Seq2[IRecord, V] {
	return func(yield func(IRecord, V) bool) {
		for _, b := range m.buckets {
			for _, e := range b {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

// Removes key. Returns is key was found.
func (m *RecordMap[V]) Delete(key IRecord) bool {
	h := key.Hash()
	b := m.buckets[h]
	for i, e := range b {
		if e.key.Equals(key) {
			b = append(b[:i], b[i+1:]...)
			if len(b) == 0 {
				delete(m.buckets, h)
			} else {
				m.buckets[h] = b
			}
			m.count--
			return true
		}
	}
	return false
}

func (m *RecordMap[V]) Get(key IRecord) (value V, ok bool) {
	for _, e := range m.buckets[key.Hash()] {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return value, false
}

func (m *RecordMap[V]) Len() int { return m.count }

// Stores value by key. Returns true if value for equal key is replaced.
func (m *RecordMap[V]) Put(key IRecord, value V) (replaced bool) {
	h := key.Hash()
	b := m.buckets[h]
	for i, e := range b {
		if e.key.Equals(key) {
			b[i].value = value
			return true
		}
	}
	m.buckets[h] = append(b, recordMapEntry[V]{key, value})
	m.count++
	return false
}
