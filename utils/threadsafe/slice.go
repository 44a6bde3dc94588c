package threadsafe

import (
	"sort"
	"sync"
)

// Slice is a mutex-guarded slice used for result and
// failure accumulation across download worker goroutines.
type Slice[T any] struct {
	items []T
	mu    sync.RWMutex
}

func NewSlice[T any]() *Slice[T] {
	return &Slice[T]{
		items: make([]T, 0),
	}
}

func NewSliceWithCapacity[T any](capacity int) *Slice[T] {
	return &Slice[T]{
		items: make([]T, 0, capacity),
	}
}

func (s *Slice[T]) Append(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, v)
}

func (s *Slice[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]T, 0)
}

func (s *Slice[T]) At(idx int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if idx < 0 || idx >= len(s.items) {
		var defaultVal T
		return defaultVal, false
	}
	return s.items[idx], true
}

func (s *Slice[T]) CopyItems() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]T(nil), s.items...)
}

func (s *Slice[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

type LessFunc[T any] func(valAtI, valAtJ T) bool

func (s *Slice[T]) Sort(less LessFunc[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sort.Slice(s.items, func(i, j int) bool {
		return less(s.items[i], s.items[j])
	})
}
