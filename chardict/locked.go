package chardict

import (
	"sync"

	"github.com/goose-lang/std"
)

// Locked wraps a Dict so it can be shared between goroutines. Every
// operation, reads included, takes the same lock, since lookups write the
// Dict's cache.
type Locked[T any] struct {
	mu      *sync.Mutex
	d       *Dict[T]
	updates uint64
}

// NewLocked takes ownership of d; the caller must not use d directly
// afterwards.
func NewLocked[T any](d *Dict[T]) *Locked[T] {
	return &Locked[T]{mu: new(sync.Mutex), d: d}
}

func (l *Locked[T]) Len() int {
	l.mu.Lock()
	n := l.d.Len()
	l.mu.Unlock()
	return n
}

func (l *Locked[T]) HasKey(key byte) bool {
	l.mu.Lock()
	ok := l.d.HasKey(key)
	l.mu.Unlock()
	return ok
}

// Load returns a copy of the value for key. There is no pointer-returning
// variant: a pointer would escape the lock.
func (l *Locked[T]) Load(key byte) (T, bool) {
	l.mu.Lock()
	v, ok := l.d.Lookup(key)
	l.mu.Unlock()
	return v, ok
}

func (l *Locked[T]) Update(key byte, value T) bool {
	l.mu.Lock()
	ok := l.d.Update(key, value)
	if ok {
		l.updates = std.SumAssumeNoOverflow(l.updates, 1)
	}
	l.mu.Unlock()
	return ok
}

// Updates returns the number of successful Update calls so far.
func (l *Locked[T]) Updates() uint64 {
	l.mu.Lock()
	n := l.updates
	l.mu.Unlock()
	return n
}

// Entries returns a snapshot of the contents in key order.
func (l *Locked[T]) Entries() []Entry[T] {
	l.mu.Lock()
	entries := l.d.Entries()
	l.mu.Unlock()
	return entries
}
