// Package viewstate holds the observable screen state of the currency list and currency details screens.
package viewstate

import "sync"

// Store holds an immutable snapshot of type T and broadcasts every replacement to its subscribers.
// Snapshots are replaced wholesale; values handed out must not be mutated by callers.
type Store[T any] struct {
	mu          sync.RWMutex
	value       T
	subscribers map[int]chan T
	nextID      int
}

// NewStore creates a store holding initial.
func NewStore[T any](initial T) *Store[T] {
	return &Store[T]{
		value:       initial,
		subscribers: make(map[int]chan T),
	}
}

// Get returns the current snapshot.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Update replaces the snapshot with fn(current) and publishes it. Updates are serialized.
func (s *Store[T]) Update(fn func(T) T) T {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = fn(s.value)
	for _, ch := range s.subscribers {
		offer(ch, s.value)
	}
	return s.value
}

// Subscribe returns a channel that receives the current snapshot and every later one.
// A slow reader only ever sees the latest snapshot. cancel closes the channel and may be called more than once.
func (s *Store[T]) Subscribe() (<-chan T, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan T, 1)
	ch <- s.value
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
	return ch, cancel
}

// offer replaces any unread value in ch with v. Callers hold the write lock, so they are the only sender.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- v
}
