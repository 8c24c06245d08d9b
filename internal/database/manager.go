package database

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Manager owns the process-wide database handle. It hands the same
// connected handle to every caller and guarantees that no matter how many
// callers race on first use, at most one underlying connection attempt is
// ever in flight.
//
// The manager moves through three states: uninitialized (no handle, no
// attempt), connecting (an attempt is stored and callers wait on it), and
// connected (the handle is cached and returned immediately). A failed
// attempt reports the same error to every waiter and returns the manager
// to uninitialized so a later call may retry. There is no automatic
// retry or backoff, and no reconnect: once connected, the handle lives
// until Close.
type Manager struct {
	config  Config
	timeout time.Duration

	// dial performs the actual connection; swapped out in tests.
	dial func(ctx context.Context) (Database, error)

	mu      sync.Mutex
	db      Database // non-nil once connected
	attempt *attempt // non-nil while a dial is in flight
}

// attempt is one in-flight connection attempt. Waiters block on done and
// then read db/err; both are written exactly once before done is closed.
type attempt struct {
	done chan struct{}
	db   Database
	err  error
}

// NewManager creates a manager for the given connection settings.
// connectTimeout bounds the single dial attempt; it belongs to the
// manager rather than any caller so one impatient caller cannot abort
// an attempt other callers are joined on.
func NewManager(cfg Config, connectTimeout time.Duration) *Manager {
	m := &Manager{
		config:  cfg,
		timeout: connectTimeout,
	}
	m.dial = m.connect
	return m
}

func (m *Manager) connect(ctx context.Context) (Database, error) {
	db := NewSurrealDB(m.config)
	if err := db.Connect(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Acquire returns the shared handle, dialing on first use. A caller
// arriving while a dial is outstanding joins that attempt instead of
// starting a second one. A caller whose own ctx expires unblocks with
// ctx.Err(); the shared attempt keeps running for the callers still
// joined on it.
func (m *Manager) Acquire(ctx context.Context) (Database, error) {
	if m.config.URL == "" {
		return nil, fmt.Errorf("%w: endpoint URL is empty", ErrConfiguration)
	}

	m.mu.Lock()
	if m.db != nil {
		db := m.db
		m.mu.Unlock()
		return db, nil
	}
	a := m.attempt
	if a == nil {
		a = &attempt{done: make(chan struct{})}
		m.attempt = a
		go m.run(a)
	}
	m.mu.Unlock()

	select {
	case <-a.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if a.err != nil {
		return nil, a.err
	}
	return a.db, nil
}

// run performs the dial for one attempt and publishes the outcome.
// On failure the attempt slot is cleared so the next Acquire starts fresh.
func (m *Manager) run(a *attempt) {
	ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
	defer cancel()

	db, err := m.dial(ctx)

	m.mu.Lock()
	if err != nil {
		a.err = err
	} else {
		a.db = db
		m.db = db
	}
	m.attempt = nil
	m.mu.Unlock()

	close(a.done)
}

// Close shuts down the cached handle if a connection was established.
// Intended for process shutdown; callers never disconnect mid-flight.
func (m *Manager) Close() error {
	m.mu.Lock()
	db := m.db
	m.db = nil
	m.mu.Unlock()

	if db != nil {
		return db.Close()
	}
	return nil
}
