// Package session holds the client's authentication state: the resolved
// identity, the cached API key, and the session lifecycle state machine.
//
// The Store is the single source of truth. It is written only by the
// Resolver and the auth service; everything else (guards, authorization
// predicates, transport) reads it through the narrow getter surface.
package session

import (
	"sync"

	"github.com/dmitrijs2005/snipshare/internal/client/models"
)

// State is the session lifecycle state.
//
//	Resolving     — initial identity check still in flight
//	Anonymous     — no confirmed identity
//	Authenticated — identity confirmed by the server
//
// Resolving is transient: once the first resolver pass completes, no
// transition ever re-enters it.
type State int

const (
	StateResolving State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateResolving:
		return "resolving"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Snapshot is a consistent read of the store taken under one lock.
// Guards evaluate against a Snapshot so identity and state can never be
// observed mid-update.
type Snapshot struct {
	State    State
	Identity *models.Identity
	APIKey   string
}

// Store keeps identity and API key in memory for the life of the client
// session. It performs no I/O. Identity and key written by one resolver
// pass are applied under a single lock, so concurrent passes are
// last-write-wins but a mixed pair from two interleaved passes is never
// exposed.
type Store struct {
	mu       sync.RWMutex
	state    State
	identity *models.Identity
	apiKey   string
}

// NewStore returns a store in the Resolving state with no credentials.
func NewStore() *Store {
	return &Store{state: StateResolving}
}

// Identity returns the current principal, nil when anonymous or still
// resolving. Callers must treat the returned value as read-only.
func (s *Store) Identity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity
}

// APIKey returns the cached bearer key, or "" when none is cached. A
// non-empty key alone never implies authentication; gate on State.
func (s *Store) APIKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.apiKey
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated reports whether a confirmed identity is present.
func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// Snapshot returns identity, key, and state read atomically.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{State: s.state, Identity: s.identity, APIKey: s.apiKey}
}

// SetResolved applies the outcome of one resolver pass atomically.
//
// identity == nil resolves to Anonymous and drops any cached key: a key
// without a confirmed identity must not linger where transport would keep
// attaching it. When keyFetched is false (the follow-up key fetch failed
// after a successful identity check) the previously cached key is
// retained; the user stays authenticated on cookie transport alone.
func (s *Store) SetResolved(identity *models.Identity, key string, keyFetched bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if identity == nil {
		s.state = StateAnonymous
		s.identity = nil
		s.apiKey = ""
		return
	}
	s.state = StateAuthenticated
	s.identity = identity
	if keyFetched {
		s.apiKey = key
	}
}

// SetAPIKey replaces the cached key without touching identity or state.
// Used by login/register (key arrives before the identity confirmation
// pass) and by key rotation.
func (s *Store) SetAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = key
}

// Clear drops identity and key and moves to Anonymous. Logout calls this
// unconditionally, before it even looks at the network result.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAnonymous
	s.identity = nil
	s.apiKey = ""
}
