package store

import (
	"sync"
)

// Value is an observable value with a single logical writer. Readers always
// see a complete value; subscribers are notified after every Set.
type Value[T any] struct {
	mu          sync.RWMutex
	current     T
	nextID      int
	subscribers map[int]func(T)
}

// NewValue creates a Value holding initial
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current:     initial,
		subscribers: make(map[int]func(T)),
	}
}

// Get returns the current value
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.current
}

// Set replaces the value and notifies subscribers outside the lock
func (v *Value[T]) Set(next T) {
	v.mu.Lock()
	v.current = next
	subs := make([]func(T), 0, len(v.subscribers))
	for _, fn := range v.subscribers {
		subs = append(subs, fn)
	}
	v.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers fn for future updates and returns a function that
// removes it. fn is not called with the current value.
func (v *Value[T]) Subscribe(fn func(T)) (cancel func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.subscribers, id)
			v.mu.Unlock()
		})
	}
}
