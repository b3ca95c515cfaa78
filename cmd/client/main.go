// Command client is the Chaum-Pedersen prover: given a secret x, it
// registers the corresponding commitments with a server, answers the
// issued challenge, and prints the resulting session_id.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/big"
	"os"

	zkp "github.com/chaumpedersen/zkpauth"
	"github.com/chaumpedersen/zkpauth/wire"
)

const defaultAddr = "127.0.0.1:50051"

func main() {
	choice, addr, user, x := parseFlags(os.Args[1:])

	gc, err := zkp.DefaultGroupConstants(choice)
	if err != nil {
		fail(err)
	}

	conn, err := wire.Dial(addr)
	if err != nil {
		fail(err)
	}
	defer conn.Close()

	y1, y2, err := zkp.ExponentiatePair(x, gc)
	if err != nil {
		fail(err)
	}
	if _, err := roundTrip(conn, &wire.Envelope{
		Kind:     wire.KindRegister,
		Register: &wire.RegisterRequest{User: user, Y1: y1.Serialize(), Y2: y2.Serialize()},
	}); err != nil {
		fail(err)
	}

	k, err := zkp.RandomScalar()
	if err != nil {
		fail(err)
	}
	r1, r2, err := zkp.ExponentiatePair(k, gc)
	if err != nil {
		fail(err)
	}

	challengeResp, err := roundTrip(conn, &wire.Envelope{
		Kind:      wire.KindChallenge,
		Challenge: &wire.AuthenticationChallengeRequest{User: user, R1: r1.Serialize(), R2: r2.Serialize()},
	})
	if err != nil {
		fail(err)
	}
	c := new(big.Int).SetBytes(challengeResp.ChallengeResp.C)
	s := zkp.SolveChallengeS(x, k, c, gc.Q)

	answerResp, err := roundTrip(conn, &wire.Envelope{
		Kind:   wire.KindAnswer,
		Answer: &wire.AuthenticationAnswerRequest{AuthID: challengeResp.ChallengeResp.AuthID, S: s.Bytes()},
	})
	if err != nil {
		fail(err)
	}

	fmt.Printf("client: authenticated, session_id=%s\n", answerResp.AnswerResp.SessionID)
}

func roundTrip(conn io.ReadWriter, req *wire.Envelope) (*wire.Envelope, error) {
	if err := wire.WriteEnvelope(conn, req); err != nil {
		return nil, err
	}
	resp, err := wire.ReadEnvelope(conn)
	if err != nil {
		return nil, err
	}
	if resp.Kind == wire.KindError {
		return nil, fmt.Errorf("client: server rejected request: %s", resp.ErrorMessage)
	}
	return resp, nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "client: %v\n", err)
	os.Exit(1)
}

func parseFlags(args []string) (choice zkp.GroupChoice, addr, user string, x *big.Int) {
	fs := flag.NewFlagSet("client", flag.ExitOnError)
	scalar := fs.Bool("scalar", false, "use the multiplicative group backend (default)")
	elliptic := fs.Bool("elliptic", false, "use the secp256k1 elliptic curve backend")
	addrFlag := fs.String("addr", defaultAddr, "server TCP address")
	userFlag := fs.String("user", "demo-user", "identity to register and authenticate as")
	secretFlag := fs.String("x", "300", "decimal secret scalar x")
	fs.Parse(args)

	if *scalar && *elliptic {
		fmt.Fprintln(os.Stderr, "client: --scalar and --elliptic are mutually exclusive")
		fs.Usage()
		os.Exit(2)
	}
	choice = zkp.MulGroup
	if *elliptic {
		choice = zkp.EcGroup
	}

	xVal, ok := new(big.Int).SetString(*secretFlag, 10)
	if !ok {
		fmt.Fprintf(os.Stderr, "client: invalid -x value %q\n", *secretFlag)
		os.Exit(2)
	}
	return choice, *addrFlag, *userFlag, xVal
}
