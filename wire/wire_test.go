package wire

import (
	"bytes"
	"testing"
	"time"

	"github.com/chaumpedersen/zkpauth/internal/testutils"
)

func TestWriteReadEnvelopeRegisterRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := &Envelope{
		Kind:     KindRegister,
		Register: &RegisterRequest{User: "alice", Y1: []byte{1, 2}, Y2: []byte{3, 4}},
	}
	if err := WriteEnvelope(&buf, in); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	out, err := ReadEnvelope(&buf)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	testutils.AssertStringsEqual(t, "kind", KindRegister, out.Kind)
	testutils.AssertStringsEqual(t, "user", "alice", out.Register.User)
	testutils.AssertBytesEqual(t, []byte{1, 2}, out.Register.Y1)
	testutils.AssertBytesEqual(t, []byte{3, 4}, out.Register.Y2)
}

func TestWriteReadEnvelopeChallengeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := &Envelope{
		Kind:          KindChallengeResp,
		ChallengeResp: &AuthenticationChallengeResponse{AuthID: "abc1234567", C: []byte{9, 9}},
	}
	if err := WriteEnvelope(&buf, in); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	out, err := ReadEnvelope(&buf)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	testutils.AssertStringsEqual(t, "auth_id", "abc1234567", out.ChallengeResp.AuthID)
	testutils.AssertBytesEqual(t, []byte{9, 9}, out.ChallengeResp.C)
}

func TestWriteReadEnvelopeAnswerRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := &Envelope{
		Kind:   KindAnswer,
		Answer: &AuthenticationAnswerRequest{AuthID: "xyz", S: []byte{7}},
	}
	if err := WriteEnvelope(&buf, in); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}
	out, err := ReadEnvelope(&buf)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	testutils.AssertStringsEqual(t, "auth_id", "xyz", out.Answer.AuthID)
	testutils.AssertBytesEqual(t, []byte{7}, out.Answer.S)
}

func TestMultipleEnvelopesOnSameStream(t *testing.T) {
	var buf bytes.Buffer
	first := &Envelope{Kind: KindRegister, Register: &RegisterRequest{User: "a"}}
	second := &Envelope{Kind: KindRegister, Register: &RegisterRequest{User: "b"}}
	if err := WriteEnvelope(&buf, first); err != nil {
		t.Fatal(err)
	}
	if err := WriteEnvelope(&buf, second); err != nil {
		t.Fatal(err)
	}

	got1, err := ReadEnvelope(&buf)
	if err != nil {
		t.Fatal(err)
	}
	got2, err := ReadEnvelope(&buf)
	if err != nil {
		t.Fatal(err)
	}
	testutils.AssertStringsEqual(t, "first user", "a", got1.Register.User)
	testutils.AssertStringsEqual(t, "second user", "b", got2.Register.User)
}

func TestDialListenRoundTrip(t *testing.T) {
	ln, err := Listen("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()

	serverDone := make(chan error, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			serverDone <- err
			return
		}
		defer conn.Close()
		env, err := ReadEnvelope(conn)
		if err != nil {
			serverDone <- err
			return
		}
		serverDone <- WriteEnvelope(conn, &Envelope{
			Kind:         KindRegisterResp,
			RegisterResp: &RegisterResponse{},
			ErrorMessage: env.Register.User,
		})
	}()

	conn, err := Dial(ln.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	if err := WriteEnvelope(conn, &Envelope{
		Kind:     KindRegister,
		Register: &RegisterRequest{User: "echo-me"},
	}); err != nil {
		t.Fatalf("WriteEnvelope: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	resp, err := ReadEnvelope(conn)
	if err != nil {
		t.Fatalf("ReadEnvelope: %v", err)
	}
	if err := <-serverDone; err != nil {
		t.Fatalf("server goroutine: %v", err)
	}
	testutils.AssertStringsEqual(t, "echoed user", "echo-me", resp.ErrorMessage)
}
