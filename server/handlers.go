package server

import (
	"math/big"
	"time"

	zkp "github.com/chaumpedersen/zkpauth"
	"github.com/chaumpedersen/zkpauth/internal/obslog"
)

// ServerConfig fixes the group backend a verifier process runs with for its
// lifetime, and optionally enables the session-eviction sweep.
type ServerConfig struct {
	GroupConstants zkp.GroupConstants

	// SessionTTL is the age beyond which Sweep evicts AuthSessions. Zero
	// disables sweeping entirely (Sweep is then a no-op). NewServer starts
	// no background sweep; callers schedule Sweep themselves.
	SessionTTL time.Duration

	Logger *obslog.Logger
}

// Server is the verifier: it holds the process-wide group parameters and
// the two concurrency-safe registries, and exposes the three protocol
// handlers. A Server may be driven by any number of concurrent
// callers; state affecting either registry is protected by that registry's
// own lock.
type Server struct {
	cfg      ServerConfig
	users    *userRegistry
	sessions *sessionRegistry
	log      *obslog.Logger
}

// NewServer builds a Server for the given configuration.
func NewServer(cfg ServerConfig) *Server {
	lg := cfg.Logger
	if lg == nil {
		lg = obslog.Default()
	}
	return &Server{
		cfg:      cfg,
		users:    newUserRegistry(),
		sessions: newSessionRegistry(),
		log:      lg,
	}
}

// Register decodes y1Bytes/y2Bytes under the server's group backend and
// inserts or overwrites users[userID]. It fails only if the bytes do not
// decode (BadEncoding for an odd-length EC encoding); otherwise the
// endpoint is unauthenticated and admits silent overwrite.
func (s *Server) Register(userID string, y1Bytes, y2Bytes []byte) error {
	choice := s.cfg.GroupConstants.Choice
	p := s.cfg.GroupConstants.P

	y1, err := zkp.Deserialize(y1Bytes, choice, p)
	if err != nil {
		return err
	}
	y2, err := zkp.Deserialize(y2Bytes, choice, p)
	if err != nil {
		return err
	}

	s.users.put(UserInfo{UserID: userID, Y1: y1, Y2: y2})
	s.log.Registered(userID)
	return nil
}

// CreateChallenge issues a fresh challenge for a previously registered
// user. It fails with UserNotFound if Register was never called for
// userID. On success it returns the freshly drawn auth_id and challenge c.
func (s *Server) CreateChallenge(userID string, r1Bytes, r2Bytes []byte) (authID string, c *big.Int, err error) {
	// users before sessions: the only handler that touches both registries,
	// and always in this order.
	info, ok := s.users.get(userID)
	if !ok {
		s.log.ChallengeRejected(userID, "UserNotFound")
		return "", nil, zkp.NewError(zkp.KindUserNotFound, "Server.CreateChallenge", nil)
	}

	choice := s.cfg.GroupConstants.Choice
	p := s.cfg.GroupConstants.P

	r1, err := zkp.Deserialize(r1Bytes, choice, p)
	if err != nil {
		return "", nil, err
	}
	r2, err := zkp.Deserialize(r2Bytes, choice, p)
	if err != nil {
		return "", nil, err
	}

	c, err = zkp.RandomScalar()
	if err != nil {
		return "", nil, err
	}

	for {
		id, err := zkp.RandomAlphanumeric(zkp.DefaultIDLength)
		if err != nil {
			return "", nil, err
		}
		session := AuthSession{
			AuthID:    id,
			Y1:        info.Y1,
			Y2:        info.Y2,
			R1:        r1,
			R2:        r2,
			C:         c,
			CreatedAt: time.Now(),
		}
		if s.sessions.put(session) {
			s.log.ChallengeIssued(userID, id)
			return id, c, nil
		}
		// auth_id collision: re-draw a fresh one.
	}
}

// VerifyAuthentication checks the prover's response s against the stored
// challenge for authID. It fails with AuthIdNotFound for an unknown
// auth_id, BadProof for a failed Chaum-Pedersen check, and InternalError if
// the verification primitive itself errors.
func (s *Server) VerifyAuthentication(authID string, sBytes []byte) (sessionID string, err error) {
	session, ok := s.sessions.get(authID)
	if !ok {
		s.log.VerificationFailed(authID, "AuthIdNotFound")
		return "", zkp.NewError(zkp.KindAuthIDNotFound, "Server.VerifyAuthentication", nil)
	}

	sVal := new(big.Int).SetBytes(sBytes)

	ok2, err := zkp.Verify(session.R1, session.R2, session.Y1, session.Y2, s.cfg.GroupConstants, session.C, sVal)
	if err != nil {
		s.log.VerificationFailed(authID, "InternalError")
		return "", zkp.NewError(zkp.KindInternal, "Server.VerifyAuthentication", nil)
	}
	if !ok2 {
		s.log.VerificationFailed(authID, "BadProof")
		return "", zkp.NewError(zkp.KindBadProof, "Server.VerifyAuthentication", nil)
	}

	sessionID, err = zkp.RandomAlphanumeric(zkp.DefaultIDLength)
	if err != nil {
		return "", err
	}
	s.sessions.complete(authID, sessionID)
	s.log.VerificationSucceeded(authID, sessionID)
	return sessionID, nil
}

// Sweep evicts sessions older than the configured SessionTTL and logs how
// many were removed. It is a no-op if SessionTTL is zero. Callers that want
// periodic eviction are expected to invoke this from their own ticker; the
// server never schedules it itself.
func (s *Server) Sweep() int {
	if s.cfg.SessionTTL <= 0 {
		return 0
	}
	n := s.sessions.Sweep(s.cfg.SessionTTL)
	if n > 0 {
		s.log.SessionsSwept(n)
	}
	return n
}
