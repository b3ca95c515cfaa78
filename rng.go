package zkp

import (
	"crypto/rand"
	"math/big"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomBytes fills an N-byte slice from the platform CSPRNG. A read
// failure is treated as fatal and surfaces as RngFailure:
// unlike the other primitives in this package, callers are not expected to
// retry, since the platform RNG is not expected to run dry.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, newErr(KindRngFailure, "RandomBytes", err)
	}
	return b, nil
}

// RandomScalar returns a big-endian unsigned integer from 32 random bytes.
// It is deliberately NOT reduced modulo any subgroup order q, matching the
// reference implementation's behavior even
// though this is markedly non-uniform for small q such as the toy
// multiplicative group's q=5004.
func RandomScalar() (*big.Int, error) {
	b, err := RandomBytes(32)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(b), nil
}

// RandomAlphanumeric returns n characters drawn uniformly from
// [A-Za-z0-9], used for auth_id and session_id (default length 10).
func RandomAlphanumeric(n int) (string, error) {
	out := make([]byte, 0, n)
	// Bytes at or above 4*62 = 248 are rejected and redrawn, so that the
	// mod-62 reduction does not favor the first 8 characters.
	limit := 4 * len(alphanumeric)
	for len(out) < n {
		idx, err := RandomBytes(n - len(out))
		if err != nil {
			return "", err
		}
		for _, v := range idx {
			if int(v) < limit {
				out = append(out, alphanumeric[int(v)%len(alphanumeric)])
			}
		}
	}
	return string(out), nil
}

// DefaultIDLength is the default auth_id/session_id length.
const DefaultIDLength = 10
