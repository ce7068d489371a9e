// Package alert is a single-slot notification channel for transient status
// messages. A shown alert clears itself after a fixed delay.
package alert

import (
	"sync"
	"time"
)

// DefaultDelay is how long an alert stays up before clearing itself.
const DefaultDelay = 3200 * time.Millisecond

// Type classifies an alert.
type Type string

const (
	Success Type = "success"
	Error   Type = "error"
)

// Data is the active alert.
type Data struct {
	Message string `json:"message"`
	Type    Type   `json:"type"`
}

// Listener receives the current alert, or nil when the slot is empty.
type Listener func(*Data)

// Option configures a Store.
type Option func(*Store)

// WithDelay overrides DefaultDelay. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(s *Store) {
		if d > 0 {
			s.delay = d
		}
	}
}

// Store holds at most one alert and pushes every change to its subscribers.
// Construct one per application and pass it to whatever needs to raise or
// render alerts. It is safe for concurrent use. Subscribers see changes in the
// order they happen; a listener must not call back into the Store.
type Store struct {
	delay time.Duration

	// deliverMu is held from a state change until its listeners return, and is
	// always taken before mu.
	deliverMu sync.Mutex

	mu      sync.Mutex
	current *Data
	timer   *time.Timer
	gen     uint64
	nextID  int
	subs    map[int]Listener
	closed  bool
}

// New returns an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		delay: DefaultDelay,
		subs:  make(map[int]Listener),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Delay reports the auto-clear delay.
func (s *Store) Delay() time.Duration {
	return s.delay
}

// Show replaces the current alert and schedules it to clear after the delay.
// typ defaults to Success. A pending clear from an earlier Show is cancelled,
// so it cannot clear this alert early.
func (s *Store) Show(message string, typ ...Type) {
	t := Success
	if len(typ) > 0 && typ[0] != "" {
		t = typ[0]
	}
	d := &Data{Message: message, Type: t}

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.stopTimerLocked()
	s.gen++
	gen := s.gen
	s.current = d
	s.timer = time.AfterFunc(s.delay, func() { s.expire(gen) })
	subs := s.listenersLocked()
	s.mu.Unlock()

	notify(subs, d)
}

// Hide clears the current alert immediately.
func (s *Store) Hide() {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	s.mu.Lock()
	s.stopTimerLocked()
	s.gen++
	s.current = nil
	subs := s.listenersLocked()
	s.mu.Unlock()

	notify(subs, nil)
}

// Current returns the active alert, if any.
func (s *Store) Current() (Data, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return Data{}, false
	}
	return *s.current, true
}

// Subscribe registers fn and calls it right away with the current value. The
// returned func removes the subscription.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.deliverMu.Lock()
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	cur := copyData(s.current)
	s.mu.Unlock()

	fn(cur)
	s.deliverMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

// Close stops any pending clear and ignores later Show calls.
func (s *Store) Close() {
	s.mu.Lock()
	s.stopTimerLocked()
	s.closed = true
	s.mu.Unlock()
}

// expire clears the slot if no Show or Hide happened since the timer for gen
// was scheduled.
func (s *Store) expire(gen uint64) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.current = nil
	subs := s.listenersLocked()
	s.mu.Unlock()

	notify(subs, nil)
}

func (s *Store) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Store) listenersLocked() []Listener {
	out := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(subs []Listener, d *Data) {
	for _, fn := range subs {
		fn(copyData(d))
	}
}

func copyData(d *Data) *Data {
	if d == nil {
		return nil
	}
	cp := *d
	return &cp
}
