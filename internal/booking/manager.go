package booking

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/seat-booking/internal/latency"
	"github.com/iliyamo/seat-booking/internal/model"
)

var ErrSessionNotFound = errors.New("booking session not found")

// Manager keeps the live sessions of the process.  Sessions idle for
// longer than the TTL are discarded; abandoning a flow simply drops it.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time

	delay  latency.Simulator
	rec    Recorder
	notify Notifier
}

// NewManager wires the checkout dependencies.  A zero ttl disables
// expiry; a nil delay means no simulated latency.
func NewManager(rec Recorder, notify Notifier, delay latency.Simulator, ttl time.Duration) *Manager {
	if delay == nil {
		delay = latency.None
	}
	return &Manager{
		sessions: map[string]*Session{},
		ttl:      ttl,
		now:      time.Now,
		delay:    delay,
		rec:      rec,
		notify:   notify,
	}
}

// Start opens a new session with a freshly generated inventory.
func (m *Manager) Start(ev model.Event) *Session {
	now := m.now()
	s := newSession(uuid.NewString(), ev, now)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

// Get returns a live session and marks it as used.
func (m *Manager) Get(id string) (*Session, error) {
	now := m.now()
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok && m.expired(s, now) {
		delete(m.sessions, id)
		ok = false
	}
	m.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	s.touch(now)
	return s, nil
}

// Abandon discards a session.  Nothing is compensated: an unconfirmed
// selection never left the session.
func (m *Manager) Abandon(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, id)
	return nil
}

// Checkout runs the checkout of session id for owner.
func (m *Manager) Checkout(ctx context.Context, id, owner string, c Customer) (model.Booking, error) {
	s, err := m.Get(id)
	if err != nil {
		return model.Booking{}, err
	}
	return s.Checkout(ctx, owner, c, m.delay, m.rec, m.notify)
}

// Len reports the number of tracked sessions, expired ones included
// until the next sweep.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep drops expired sessions and returns how many were removed.
func (m *Manager) Sweep() int {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

// Run sweeps periodically until ctx is done.
func (m *Manager) Run(ctx context.Context, every time.Duration) {
	if m.ttl <= 0 || every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := m.Sweep(); n > 0 {
				log.Printf("booking: swept %d idle sessions", n)
			}
		}
	}
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return m.ttl > 0 && now.Sub(s.idleSince()) > m.ttl
}
