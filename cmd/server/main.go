// Command server runs the Chaum-Pedersen verifier: it accepts TCP
// connections framed per package wire and dispatches each envelope to the
// protocol state machine in package server.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	zkp "github.com/chaumpedersen/zkpauth"
	"github.com/chaumpedersen/zkpauth/internal/obslog"
	"github.com/chaumpedersen/zkpauth/server"
	"github.com/chaumpedersen/zkpauth/wire"
)

const defaultAddr = "127.0.0.1:50051"

func main() {
	choice, addr, sessionTTL := parseFlags(os.Args[1:])

	gc, err := zkp.DefaultGroupConstants(choice)
	if err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}

	log := obslog.Default()
	srv := server.NewServer(server.ServerConfig{GroupConstants: gc, Logger: log, SessionTTL: sessionTTL})

	if sessionTTL > 0 {
		go sweepPeriodically(srv, sessionTTL)
	}

	ln, err := wire.Listen(addr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
	defer ln.Close()

	fmt.Printf("server: listening on %s (%s)\n", addr, choice)
	for {
		conn, err := ln.Accept()
		if err != nil {
			fmt.Fprintf(os.Stderr, "server: accept: %v\n", err)
			continue
		}
		go handleConn(srv, conn)
	}
}

// sweepPeriodically calls Server.Sweep every interval, the ticker the
// server wires in only when SessionTTL is configured.
func sweepPeriodically(srv *server.Server, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		srv.Sweep()
	}
}

func handleConn(srv *server.Server, conn net.Conn) {
	defer conn.Close()
	for {
		env, err := wire.ReadEnvelope(conn)
		if err != nil {
			return
		}
		resp := dispatch(srv, env)
		if wire.WriteEnvelope(conn, resp) != nil {
			return
		}
	}
}

func dispatch(srv *server.Server, env *wire.Envelope) *wire.Envelope {
	switch env.Kind {
	case wire.KindRegister:
		req := env.Register
		if err := srv.Register(req.User, req.Y1, req.Y2); err != nil {
			return errorEnvelope(err)
		}
		return &wire.Envelope{Kind: wire.KindRegisterResp, RegisterResp: &wire.RegisterResponse{}}

	case wire.KindChallenge:
		req := env.Challenge
		authID, c, err := srv.CreateChallenge(req.User, req.R1, req.R2)
		if err != nil {
			return errorEnvelope(err)
		}
		return &wire.Envelope{
			Kind: wire.KindChallengeResp,
			ChallengeResp: &wire.AuthenticationChallengeResponse{
				AuthID: authID,
				C:      c.Bytes(),
			},
		}

	case wire.KindAnswer:
		req := env.Answer
		sessionID, err := srv.VerifyAuthentication(req.AuthID, req.S)
		if err != nil {
			return errorEnvelope(err)
		}
		return &wire.Envelope{
			Kind:       wire.KindAnswerResp,
			AnswerResp: &wire.AuthenticationAnswerResponse{SessionID: sessionID},
		}

	default:
		return &wire.Envelope{Kind: wire.KindError, ErrorMessage: "unknown request kind"}
	}
}

func errorEnvelope(err error) *wire.Envelope {
	return &wire.Envelope{Kind: wire.KindError, ErrorMessage: zkp.KindOf(err).String()}
}

func parseFlags(args []string) (choice zkp.GroupChoice, addr string, sessionTTL time.Duration) {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	scalar := fs.Bool("scalar", false, "use the multiplicative group backend (default)")
	elliptic := fs.Bool("elliptic", false, "use the secp256k1 elliptic curve backend")
	addrFlag := fs.String("addr", defaultAddr, "TCP address to listen on")
	ttlFlag := fs.Duration("session-ttl", 0, "evict sessions older than this; 0 disables eviction")
	fs.Parse(args)

	if *scalar && *elliptic {
		fmt.Fprintln(os.Stderr, "server: --scalar and --elliptic are mutually exclusive")
		fs.Usage()
		os.Exit(2)
	}
	choice = zkp.MulGroup
	if *elliptic {
		choice = zkp.EcGroup
	}
	return choice, *addrFlag, *ttlFlag
}
