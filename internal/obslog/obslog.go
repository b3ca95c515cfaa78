// Package obslog provides the verifier's event logging: one line per
// protocol event, written with the standard library's log.Logger as plain
// text lines, with no structured logging library. Secret values (x, s) are
// never logged; only
// user-visible identifiers and outcomes are.
package obslog

import (
	"io"
	"log"
	"os"
)

// Logger wraps a standard library *log.Logger with protocol-specific event
// methods so call sites never format log lines by hand.
type Logger struct {
	l *log.Logger
}

// New builds a Logger writing to w with a fixed "zkpauth: " prefix and
// microsecond timestamps.
func New(w io.Writer) *Logger {
	return &Logger{l: log.New(w, "zkpauth: ", log.LstdFlags|log.Lmicroseconds)}
}

// Default returns a Logger writing to os.Stderr.
func Default() *Logger {
	return New(os.Stderr)
}

func (lg *Logger) Registered(userID string) {
	lg.l.Printf("register user=%s", userID)
}

func (lg *Logger) ChallengeIssued(userID, authID string) {
	lg.l.Printf("challenge issued user=%s auth_id=%s", userID, authID)
}

func (lg *Logger) ChallengeRejected(userID string, reason string) {
	lg.l.Printf("challenge rejected user=%s reason=%s", userID, reason)
}

func (lg *Logger) VerificationSucceeded(authID, sessionID string) {
	lg.l.Printf("verification succeeded auth_id=%s session_id=%s", authID, sessionID)
}

func (lg *Logger) VerificationFailed(authID string, reason string) {
	lg.l.Printf("verification failed auth_id=%s reason=%s", authID, reason)
}

func (lg *Logger) SessionsSwept(count int) {
	lg.l.Printf("session sweep removed=%d", count)
}
