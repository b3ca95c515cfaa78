package zkp

import "math/big"

// pointVariant distinguishes the two backends a Point may hold.
type pointVariant int

const (
	variantScalar pointVariant = iota
	variantEcPoint
)

// Point is the externally visible group element: either a Scalar in the
// multiplicative group or an EcPoint on secp256k1. Every primitive that
// takes a pair of Points requires them to share a variant, failing with
// InvalidArguments otherwise.
type Point struct {
	variant pointVariant
	u       *big.Int // Scalar value, 0 <= u < p
	x, y    *big.Int // EcPoint affine coordinates
	prime   *big.Int // modulus shared by both representations
}

// ScalarPoint builds a Point in the multiplicative group mod p.
func ScalarPoint(u, p *big.Int) Point {
	v := new(big.Int).Mod(u, p)
	return Point{variant: variantScalar, u: v, prime: new(big.Int).Set(p)}
}

// EcPointFrom lifts a CurvePoint into a Point. Infinity is not representable
// by this constructor; callers in this package never need to serialize it,
// since y1/y2/r1/r2 are never the identity for honestly-generated proofs.
func EcPointFrom(cp CurvePoint) Point {
	return Point{
		variant: variantEcPoint,
		x:       cp.X().Int(),
		y:       cp.Y().Int(),
		prime:   cp.X().Prime(),
	}
}

// IsScalar reports whether pt holds a Scalar variant.
func (pt Point) IsScalar() bool { return pt.variant == variantScalar }

// IsEcPoint reports whether pt holds an EcPoint variant.
func (pt Point) IsEcPoint() bool { return pt.variant == variantEcPoint }

// ScalarValue returns the underlying integer; only meaningful for Scalar points.
func (pt Point) ScalarValue() *big.Int { return new(big.Int).Set(pt.u) }

// Coords returns the affine (x, y) pair; only meaningful for EcPoint points.
func (pt Point) Coords() (*big.Int, *big.Int) {
	return new(big.Int).Set(pt.x), new(big.Int).Set(pt.y)
}

// CurvePoint reconstructs the affine CurvePoint backing an EcPoint Point,
// against the given curve parameters.
func (pt Point) CurvePoint(a, b FieldElement) (CurvePoint, error) {
	if pt.variant != variantEcPoint {
		return CurvePoint{}, newErr(KindInvalidArguments, "Point.CurvePoint", nil)
	}
	x := NewFieldElement(pt.x, pt.prime)
	y := NewFieldElement(pt.y, pt.prime)
	return NewAffinePoint(a, b, x, y)
}

func samePointVariant(pts ...Point) bool {
	for i := 1; i < len(pts); i++ {
		if pts[i].variant != pts[0].variant {
			return false
		}
	}
	return true
}

// Serialize encodes pt to bytes: a Scalar serializes to its
// minimal big-endian representation; an EcPoint serializes to X and Y each
// left-zero-padded to the longer of the two, concatenated.
func (pt Point) Serialize() []byte {
	switch pt.variant {
	case variantScalar:
		return pt.u.Bytes()
	case variantEcPoint:
		xb := pt.x.Bytes()
		yb := pt.y.Bytes()
		n := len(xb)
		if len(yb) > n {
			n = len(yb)
		}
		out := make([]byte, 2*n)
		copy(out[n-len(xb):n], xb)
		copy(out[2*n-len(yb):], yb)
		return out
	default:
		return nil
	}
}

// Deserialize decodes bytes into a Point under the given backend. MulGroup
// yields a Scalar; EcGroup requires an even-length input (split into equal
// X and Y halves) and fails with BadEncoding otherwise.
func Deserialize(b []byte, choice GroupChoice, prime *big.Int) (Point, error) {
	switch choice {
	case MulGroup:
		return ScalarPoint(new(big.Int).SetBytes(b), prime), nil
	case EcGroup:
		if len(b)%2 != 0 {
			return Point{}, newErr(KindBadEncoding, "Deserialize", nil)
		}
		half := len(b) / 2
		x := new(big.Int).SetBytes(b[:half])
		y := new(big.Int).SetBytes(b[half:])
		return Point{variant: variantEcPoint, x: x, y: y, prime: new(big.Int).Set(prime)}, nil
	default:
		return Point{}, newErr(KindInvalidArguments, "Deserialize", nil)
	}
}
