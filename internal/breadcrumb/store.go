package breadcrumb

import (
	"context"
	"sync"
)

// Listener receives the new trail after every state change.
type Listener func(Trail)

// Store holds one trail and notifies listeners when it changes. It is safe
// for concurrent use. Listeners run synchronously in Dispatch, in dispatch
// order, and must not call Dispatch, Subscribe, unsubscribe or Close.
type Store struct {
	notifyMu sync.Mutex // serializes notifications and listener removal
	mu       sync.Mutex
	state    Trail
	nextID   uint64
	subs     map[uint64]Listener
	closed   bool
	done     chan struct{}
}

// NewStore returns a store holding an empty trail.
func NewStore() *Store {
	return &Store{
		state: Trail{},
		subs:  make(map[uint64]Listener),
		done:  make(chan struct{}),
	}
}

// State returns a copy of the current trail.
func (s *Store) State() Trail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch reduces action into the state and returns the new trail.
// Listeners are not called when the action leaves the trail unchanged.
func (s *Store) Dispatch(action Action) Trail {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, action)
	changed := !prev.Equal(next)
	s.state = next
	var listeners []Listener
	if changed {
		listeners = make([]Listener, 0, len(s.subs))
		for _, l := range s.subs {
			listeners = append(listeners, l)
		}
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next.Clone())
	}
	return next.Clone()
}

// Subscribe registers l and returns a function removing it. Once the
// returned function returns, l is not called again.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return func() {}
	}
	id := s.nextID
	s.nextID++
	s.subs[id] = l
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.notifyMu.Lock()
			defer s.notifyMu.Unlock()
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Watch delivers trail changes on a channel until ctx is done, cancel is
// called or the store is closed; the channel is then closed. Only the latest
// undelivered trail is kept for slow readers.
func (s *Store) Watch(ctx context.Context) (<-chan Trail, func()) {
	ch := make(chan Trail, 1)
	unsubscribe := s.Subscribe(func(t Trail) {
		select {
		case ch <- t:
			return
		default:
		}
		// Drop the stale trail and keep the newest.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- t:
		default:
		}
	})

	stop := make(chan struct{})
	var once sync.Once
	cancel := func() {
		once.Do(func() {
			unsubscribe()
			close(stop)
			close(ch)
		})
	}

	go func() {
		select {
		case <-ctx.Done():
		case <-s.done:
		case <-stop:
		}
		cancel()
	}()

	return ch, cancel
}

// Done is closed when the store is closed.
func (s *Store) Done() <-chan struct{} {
	return s.done
}

// Close drops every listener and closes Done. Dispatch keeps working but
// no longer notifies anyone.
func (s *Store) Close() {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.subs = make(map[uint64]Listener)
	close(s.done)
}
