package state

import (
	"fmt"
	"log/slog"
	"sync"
)

// Listener receives a snapshot after every dispatch.
type Listener func(State)

// Store owns a State and applies actions to it one at a time.
type Store struct {
	mu        sync.Mutex
	state     State
	listeners []subscription
	nextID    int
	logger    *slog.Logger
}

type subscription struct {
	id int
	fn Listener
}

// Option configures a Store.
type Option func(*Store)

// WithInitialState seeds the store. The value is cloned.
func WithInitialState(s State) Option {
	return func(st *Store) {
		st.state = s.Clone()
	}
}

// WithLogger sets the logger used for dispatch tracing and rejected payloads.
func WithLogger(logger *slog.Logger) Option {
	return func(st *Store) {
		if logger != nil {
			st.logger = logger
		}
	}
}

// NewStore creates a Store holding InitialState unless configured otherwise.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state:  InitialState(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Dispatch reduces a into the store and notifies listeners. A nil action is
// logged and ignored.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		s.logger.Warn("ignoring nil action")
		return
	}

	s.mu.Lock()
	next, handled := reduce(s.state, a)
	s.state = next
	snapshot := s.state.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, sub := range s.listeners {
		listeners = append(listeners, sub.fn)
	}
	s.mu.Unlock()

	if !handled {
		s.logger.Warn("unhandled action", "type", a.Type(), "go_type", fmt.Sprintf("%T", a))
	} else {
		s.logger.Debug("dispatched action",
			"type", a.Type(),
			"projects", len(snapshot.Projects),
			"suites", len(snapshot.Suites))
	}

	// Listeners run outside the lock so they may dispatch.
	for _, fn := range listeners {
		fn(snapshot.Clone())
	}
}

// Subscribe registers fn to run after every dispatch. The returned function
// removes the subscription and is safe to call more than once.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, subscription{id: id, fn: fn})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.listeners {
			if sub.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// DispatchEnvelope decodes env and dispatches the result. Envelopes that fail
// to decode are logged and not applied.
func (s *Store) DispatchEnvelope(env Envelope) error {
	a, err := DecodeAction(env)
	if err != nil {
		s.logger.Warn("rejected action", "type", env.Type, "error", err)
		return err
	}
	s.Dispatch(a)
	return nil
}
