package zkp

import "math/big"

// GroupChoice selects the backend used for an entire process lifetime: the
// toy multiplicative group modulo a prime, or the secp256k1 elliptic curve
// group. It is set at startup and treated as read-only thereafter (see
// design note: pass it explicitly, never read from global state).
type GroupChoice int

const (
	// MulGroup selects the multiplicative group Z/pZ*.
	MulGroup GroupChoice = iota
	// EcGroup selects the secp256k1 elliptic curve group.
	EcGroup
)

func (g GroupChoice) String() string {
	if g == EcGroup {
		return "elliptic"
	}
	return "scalar"
}

// GroupConstants bundles the process-wide modulus p, subgroup order q, and
// the two independent generators g, h of the protocol.
type GroupConstants struct {
	Choice GroupChoice
	P      *big.Int
	Q      *big.Int
	G      Point
	H      Point
}

// DefaultMulGroupConstants returns the toy multiplicative group parameters
// the toy multiplicative-group parameters: p=10009, q=5004, g=3, h=2892.
func DefaultMulGroupConstants() GroupConstants {
	p := big.NewInt(10009)
	q := big.NewInt(5004)
	return GroupConstants{
		Choice: MulGroup,
		P:      p,
		Q:      q,
		G:      ScalarPoint(big.NewInt(3), p),
		H:      ScalarPoint(big.NewInt(2892), p),
	}
}

// DefaultEcGroupConstants returns the secp256k1 parameters:
// p is the curve's field prime, q is its order n, g is the standard
// generator, and h = 13*G.
func DefaultEcGroupConstants() (GroupConstants, error) {
	g, err := Secp256k1Generator()
	if err != nil {
		return GroupConstants{}, err
	}
	h, err := secp256k1H()
	if err != nil {
		return GroupConstants{}, err
	}
	return GroupConstants{
		Choice: EcGroup,
		P:      Secp256k1Prime(),
		Q:      Secp256k1Order(),
		G:      EcPointFrom(g),
		H:      EcPointFrom(h),
	}, nil
}

// DefaultGroupConstants returns the standard parameters for the requested
// backend.
func DefaultGroupConstants(choice GroupChoice) (GroupConstants, error) {
	switch choice {
	case MulGroup:
		return DefaultMulGroupConstants(), nil
	case EcGroup:
		return DefaultEcGroupConstants()
	default:
		return GroupConstants{}, newErr(KindInvalidArguments, "DefaultGroupConstants", nil)
	}
}
