// Copyright (c) 2025 Northbound System
// Author: Nicholas Skitch
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docview/internal/parser"
)

// State holds what one viewing session currently shows: the declared name of
// the last uploaded file and its extraction result. A new upload replaces the
// state wholesale; clearing the session discards it.
type State struct {
	ID         string
	Filename   string
	Result     parser.Result
	UploadedAt time.Time
}

// Store is an in-memory session registry keyed by session ID. Nothing in it
// survives a restart; idle sessions are swept after the TTL.
type Store struct {
	sessions map[string]State
	mu       sync.RWMutex
	ttl      time.Duration
	ticker   *time.Ticker
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewStore creates a session store and starts its expiry sweep.
func NewStore(ttl time.Duration) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		sessions: make(map[string]State),
		ttl:      ttl,
		ticker:   time.NewTicker(time.Minute),
		ctx:      ctx,
		cancel:   cancel,
	}

	go s.sweepLoop()

	return s
}

// NewID returns a fresh session identifier.
func (s *Store) NewID() string {
	return uuid.New().String()
}

// Get returns the current state for a session, if any.
func (s *Store) Get(id string) (State, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[id]
	return state, ok
}

// Put records the result of a new upload, replacing any previous state for
// the session.
func (s *Store) Put(id, filename string, result parser.Result) State {
	state := State{
		ID:         id,
		Filename:   filename,
		Result:     result,
		UploadedAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[id] = state
	s.mu.Unlock()

	return state
}

// Clear discards a session's state.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Stop halts the expiry sweep.
func (s *Store) Stop() {
	s.cancel()
	s.ticker.Stop()
}

func (s *Store) sweepLoop() {
	for {
		select {
		case <-s.ctx.Done():
			return
		case <-s.ticker.C:
			s.sweepExpired(time.Now())
		}
	}
}

func (s *Store) sweepExpired(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, state := range s.sessions {
		if now.Sub(state.UploadedAt) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
