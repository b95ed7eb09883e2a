// Package chardict implements a small, fixed-size dictionary keyed by single
// bytes.
//
// A Dict is built once from an unsorted batch of (key, value) pairs, possibly
// with repeated keys, and afterwards only supports lookups and replacing the
// value of an existing key. Entries are kept in a pair of sorted slices and
// found by binary search.
package chardict

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goose-lang/primitive"
)

type Entry[T any] struct {
	Key   byte
	Value T
}

// A Dict maps bytes to values of type T. It is not safe for concurrent use,
// not even by readers only: lookups update an internal cache. See Locked.
type Dict[T any] struct {
	// strictly increasing
	keys []byte
	// values[i] belongs to keys[i]
	values []T

	// index of the most recently found key, so that a HasKey followed by Get
	// or Update for the same key only searches once. Always a valid index
	// when the dictionary is non-empty.
	last uint64
}

// New builds a Dict from the parallel slices keys and values. Pairs may come
// in any order; if a key appears more than once the value of its last
// occurrence wins.
//
// At most MaxEntries pairs are accepted.
func New[T any](keys []byte, values []T) (*Dict[T], error) {
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys, %d values", ErrLengthMismatch, len(keys), len(values))
	}
	if len(keys) > MaxEntries {
		return nil, fmt.Errorf("%w: got %d, limit is %d", ErrTooManyEntries, len(keys), MaxEntries)
	}

	// Sort into scratch buffers sized for the worst case (no duplicates),
	// then copy into exactly-sized storage.
	tmpKeys := make([]byte, 0, len(keys))
	tmpVals := make([]T, 0, len(values))
	for i := range keys {
		idx, found := search(tmpKeys, keys[i])
		if found {
			tmpVals[idx] = values[i]
			continue
		}
		primitive.Assert(len(tmpKeys) < cap(tmpKeys))
		tmpKeys = slices.Insert(tmpKeys, int(idx), keys[i])
		tmpVals = slices.Insert(tmpVals, int(idx), values[i])
	}

	d := &Dict[T]{
		keys:   make([]byte, len(tmpKeys)),
		values: make([]T, len(tmpVals)),
	}
	copy(d.keys, tmpKeys)
	copy(d.values, tmpVals)
	return d, nil
}

// MustNew is like New but panics if the input is rejected. It is meant for
// tables that are fixed at compile time.
func MustNew[T any](keys []byte, values []T) *Dict[T] {
	d, err := New(keys, values)
	if err != nil {
		panic(err)
	}
	return d
}

// FromEntries builds a Dict from a batch of entries, with the same rules as
// New.
func FromEntries[T any](entries []Entry[T]) (*Dict[T], error) {
	keys := make([]byte, len(entries))
	values := make([]T, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		values[i] = e.Value
	}
	return New(keys, values)
}

// FromMap builds a Dict holding the contents of m.
func FromMap[T any](m map[byte]T) (*Dict[T], error) {
	keys := make([]byte, 0, len(m))
	values := make([]T, 0, len(m))
	for k, v := range m {
		keys = append(keys, k)
		values = append(values, v)
	}
	return New(keys, values)
}

// Len returns the number of distinct keys.
func (d *Dict[T]) Len() int {
	return len(d.keys)
}

// HasKey reports whether key is present.
func (d *Dict[T]) HasKey(key byte) bool {
	if len(d.keys) > 0 && d.keys[d.last] == key {
		return true
	}
	idx, found := search(d.keys, key)
	if found {
		d.last = idx
	}
	return found
}

// Get returns a pointer to the value stored for key, or nil if key is not
// present. The pointer stays valid for the lifetime of d and writes through it
// are visible to later lookups.
func (d *Dict[T]) Get(key byte) *T {
	if !d.HasKey(key) {
		return nil
	}
	return &d.values[d.last]
}

// Lookup returns a copy of the value stored for key.
func (d *Dict[T]) Lookup(key byte) (T, bool) {
	if !d.HasKey(key) {
		var zero T
		return zero, false
	}
	return d.values[d.last], true
}

// Update replaces the value of an existing key. It returns false, leaving d
// unchanged, if key is not present; it never adds keys.
func (d *Dict[T]) Update(key byte, value T) bool {
	if !d.HasKey(key) {
		return false
	}
	d.values[d.last] = value
	return true
}

// Keys returns the keys in increasing order. The slice is d's own storage and
// must not be modified.
func (d *Dict[T]) Keys() []byte {
	return d.keys
}

// Values returns the values in key order. The slice is d's own storage:
// assigning to an element is the same as calling Update for its key.
func (d *Dict[T]) Values() []T {
	return d.values
}

// Entries returns a copy of the contents in key order.
func (d *Dict[T]) Entries() []Entry[T] {
	entries := make([]Entry[T], len(d.keys))
	for i := range d.keys {
		entries[i] = Entry[T]{Key: d.keys[i], Value: d.values[i]}
	}
	return entries
}

// Range calls f for each entry in key order until f returns false.
func (d *Dict[T]) Range(f func(key byte, value T) bool) {
	for i := range d.keys {
		if !f(d.keys[i], d.values[i]) {
			return
		}
	}
}

func (d *Dict[T]) String() string {
	var b strings.Builder
	b.WriteString("map[")
	for i := range d.keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%q:%v", d.keys[i], d.values[i])
	}
	b.WriteByte(']')
	return b.String()
}
