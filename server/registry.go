// Package server implements the verifier side of the Chaum-Pedersen
// identification protocol: the Register/CreateChallenge/VerifyAuthentication
// state machine and its concurrency-safe registries.
package server

import (
	"math/big"
	"sync"
	"time"

	zkp "github.com/chaumpedersen/zkpauth"
)

// UserInfo is the verifier's record of a registered identity's public
// commitments.
type UserInfo struct {
	UserID string
	Y1, Y2 zkp.Point
}

// AuthSession is the ephemeral record created by CreateChallenge and
// completed by VerifyAuthentication. SessionID is empty until verification
// succeeds.
type AuthSession struct {
	AuthID    string
	Y1, Y2    zkp.Point
	R1, R2    zkp.Point
	C         *big.Int
	SessionID string
	CreatedAt time.Time
}

// userRegistry is a mutex-guarded user_id -> UserInfo map: a single lock
// protecting insertion, lookup, and in-place mutation, with no work beyond
// map access performed while the lock is held.
type userRegistry struct {
	mu    sync.Mutex
	users map[string]UserInfo
}

func newUserRegistry() *userRegistry {
	return &userRegistry{users: make(map[string]UserInfo)}
}

// put inserts or overwrites the record for userID. Register is
// unauthenticated and overwriting is allowed, so this never returns an error.
func (r *userRegistry) put(info UserInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[info.UserID] = info
}

func (r *userRegistry) get(userID string) (UserInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	info, ok := r.users[userID]
	return info, ok
}

// sessionRegistry is a mutex-guarded auth_id -> AuthSession map with the
// same discipline as userRegistry.
type sessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]AuthSession
}

func newSessionRegistry() *sessionRegistry {
	return &sessionRegistry{sessions: make(map[string]AuthSession)}
}

func (r *sessionRegistry) get(authID string) (AuthSession, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[authID]
	return s, ok
}

// put inserts a session under authID, failing if authID is already taken.
// Callers re-draw authID on collision.
func (r *sessionRegistry) put(s AuthSession) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.sessions[s.AuthID]; exists {
		return false
	}
	r.sessions[s.AuthID] = s
	return true
}

// complete stores the session_id produced by a successful
// VerifyAuthentication, in place.
func (r *sessionRegistry) complete(authID, sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[authID]
	if !ok {
		return
	}
	s.SessionID = sessionID
	r.sessions[authID] = s
}

// Sweep evicts sessions older than maxAge and returns the number removed.
// Session retention is otherwise unbounded: Sweep is never invoked
// automatically, only when a caller opts in via ServerConfig.SessionTTL
// (see handlers.go).
func (r *sessionRegistry) Sweep(maxAge time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, s := range r.sessions {
		if s.CreatedAt.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

// userIDs returns a snapshot of registered user ids, used by tests to
// observe registry state without reaching into the lock directly.
func (r *userRegistry) userIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	return ids
}
