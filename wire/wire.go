// Package wire implements the verifier/prover transport: the three
// request/response pairs of the protocol, framed length-prefixed over a
// net.Conn and encoded with the standard library's encoding/gob. No Go
// RPC or protobuf framework appears as a direct dependency anywhere in the
// reference pack, so gob is the minimal honest stand-in for that layer.
package wire

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"fmt"
	"io"
	"net"
)

// RegisterRequest is the client's registration message.
type RegisterRequest struct {
	User string
	Y1   []byte
	Y2   []byte
}

// RegisterResponse carries no fields; its presence on the wire is the
// acknowledgement.
type RegisterResponse struct{}

// AuthenticationChallengeRequest is the client's commitment message.
type AuthenticationChallengeRequest struct {
	User string
	R1   []byte
	R2   []byte
}

// AuthenticationChallengeResponse carries the server-issued challenge.
type AuthenticationChallengeResponse struct {
	AuthID string
	C      []byte
}

// AuthenticationAnswerRequest is the client's response to the challenge.
type AuthenticationAnswerRequest struct {
	AuthID string
	S      []byte
}

// AuthenticationAnswerResponse carries the session token on success.
type AuthenticationAnswerResponse struct {
	SessionID string
}

// Envelope wraps exactly one of the six message types above plus a Kind
// discriminator, so a single framed stream can carry any of them.
type Envelope struct {
	Kind          string
	Register      *RegisterRequest
	RegisterResp  *RegisterResponse
	Challenge     *AuthenticationChallengeRequest
	ChallengeResp *AuthenticationChallengeResponse
	Answer        *AuthenticationAnswerRequest
	AnswerResp    *AuthenticationAnswerResponse
	ErrorMessage  string
}

const (
	KindRegister      = "register"
	KindRegisterResp  = "register_resp"
	KindChallenge     = "challenge"
	KindChallengeResp = "challenge_resp"
	KindAnswer        = "answer"
	KindAnswerResp    = "answer_resp"
	KindError         = "error"
)

// WriteEnvelope gob-encodes env and writes it to w prefixed with a 4-byte
// big-endian length, so the reader never has to guess where one gob stream
// ends and the next begins on a shared net.Conn.
func WriteEnvelope(w io.Writer, env *Envelope) error {
	buf, err := encodeEnvelope(env)
	if err != nil {
		return err
	}
	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(buf)))
	if _, err := w.Write(lenPrefix[:]); err != nil {
		return fmt.Errorf("wire: write length prefix: %w", err)
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("wire: write envelope: %w", err)
	}
	return nil
}

// ReadEnvelope reads one length-prefixed, gob-encoded Envelope from r.
func ReadEnvelope(r io.Reader) (*Envelope, error) {
	var lenPrefix [4]byte
	if _, err := io.ReadFull(r, lenPrefix[:]); err != nil {
		return nil, fmt.Errorf("wire: read length prefix: %w", err)
	}
	n := binary.BigEndian.Uint32(lenPrefix[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("wire: read envelope: %w", err)
	}
	return decodeEnvelope(buf)
}

func encodeEnvelope(env *Envelope) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(env); err != nil {
		return nil, fmt.Errorf("wire: encode envelope: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeEnvelope(buf []byte) (*Envelope, error) {
	var env Envelope
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&env); err != nil {
		return nil, fmt.Errorf("wire: decode envelope: %w", err)
	}
	return &env, nil
}

// Dial connects to addr and returns a net.Conn ready for WriteEnvelope/
// ReadEnvelope framing.
func Dial(addr string) (net.Conn, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("wire: dial %s: %w", addr, err)
	}
	return conn, nil
}

// Listen binds addr for a server to Accept connections on.
func Listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("wire: listen %s: %w", addr, err)
	}
	return ln, nil
}
