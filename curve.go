package zkp

import "math/big"

// CurvePoint is a point on a short Weierstrass curve y^2 = x^3 + a*x + b
// over a prime field, represented in affine coordinates. The zero value is
// not a valid point; use InfinityPoint or NewAffinePoint.
//
// This is the didactic core of the system: addition, doubling, and scalar
// multiplication are hand-written chord-and-tangent arithmetic rather than
// delegated to a curve library (cross-checked against one in
// secp256k1_btcec_test.go, but never depended on by this file).
type CurvePoint struct {
	infinity bool
	a, b     FieldElement // curve parameters, shared by every affine point
	x, y     FieldElement
}

// InfinityPoint returns the additive identity for curves sharing (a, b, prime).
func InfinityPoint(a, b FieldElement) CurvePoint {
	return CurvePoint{infinity: true, a: a, b: b}
}

// NewAffinePoint builds a point from coordinates, verifying y^2 = x^3+a*x+b
// and failing with NotOnCurve otherwise.
func NewAffinePoint(a, b, x, y FieldElement) (CurvePoint, error) {
	lhs, err := y.Mul(y)
	if err != nil {
		return CurvePoint{}, err
	}
	x2, err := x.Mul(x)
	if err != nil {
		return CurvePoint{}, err
	}
	x3, err := x2.Mul(x)
	if err != nil {
		return CurvePoint{}, err
	}
	ax, err := a.Mul(x)
	if err != nil {
		return CurvePoint{}, err
	}
	rhs, err := x3.Add(ax)
	if err != nil {
		return CurvePoint{}, err
	}
	rhs, err = rhs.Add(b)
	if err != nil {
		return CurvePoint{}, err
	}
	if !lhs.Equal(rhs) {
		return CurvePoint{}, newErr(KindNotOnCurve, "NewAffinePoint", nil)
	}
	return CurvePoint{a: a, b: b, x: x, y: y}, nil
}

// IsInfinity reports whether P is the point at infinity.
func (p CurvePoint) IsInfinity() bool { return p.infinity }

// X returns the affine x-coordinate; only meaningful when !IsInfinity().
func (p CurvePoint) X() FieldElement { return p.x }

// Y returns the affine y-coordinate; only meaningful when !IsInfinity().
func (p CurvePoint) Y() FieldElement { return p.y }

func (p CurvePoint) compatible(q CurvePoint) bool {
	return p.a.prime.Cmp(q.a.prime) == 0 &&
		p.a.n.Cmp(q.a.n) == 0 &&
		p.b.n.Cmp(q.b.n) == 0
}

// Add implements the standard affine chord-and-tangent addition rule.
func (p CurvePoint) Add(q CurvePoint) (CurvePoint, error) {
	if p.infinity {
		return q, nil
	}
	if q.infinity {
		return p, nil
	}
	if !p.compatible(q) {
		return CurvePoint{}, newErr(KindCurveMismatch, "CurvePoint.Add", nil)
	}

	if p.x.Equal(q.x) && !p.y.Equal(q.y) {
		return InfinityPoint(p.a, p.b), nil
	}

	if p.x.Equal(q.x) && p.y.Equal(q.y) {
		if p.y.IsZero() {
			return InfinityPoint(p.a, p.b), nil
		}
		return p.double()
	}

	// s = (q.y - p.y) / (q.x - p.x)
	num, err := q.y.Sub(p.y)
	if err != nil {
		return CurvePoint{}, err
	}
	den, err := q.x.Sub(p.x)
	if err != nil {
		return CurvePoint{}, err
	}
	s, err := num.Div(den)
	if err != nil {
		return CurvePoint{}, err
	}
	return p.combine(q, s)
}

func (p CurvePoint) double() (CurvePoint, error) {
	// s = (3*p.x^2 + a) / (2*p.y)
	x2, err := p.x.Mul(p.x)
	if err != nil {
		return CurvePoint{}, err
	}
	num := x2.Scale(big.NewInt(3))
	num, err = num.Add(p.a)
	if err != nil {
		return CurvePoint{}, err
	}
	den := p.y.Scale(big.NewInt(2))
	s, err := num.Div(den)
	if err != nil {
		return CurvePoint{}, err
	}
	return p.combine(p, s)
}

// combine computes x3 = s^2 - p.x - q.x, y3 = s*(p.x-x3) - p.y, shared by
// the distinct-point and doubling cases once the slope s is known.
func (p CurvePoint) combine(q CurvePoint, s FieldElement) (CurvePoint, error) {
	s2, err := s.Mul(s)
	if err != nil {
		return CurvePoint{}, err
	}
	x3, err := s2.Sub(p.x)
	if err != nil {
		return CurvePoint{}, err
	}
	x3, err = x3.Sub(q.x)
	if err != nil {
		return CurvePoint{}, err
	}
	dx, err := p.x.Sub(x3)
	if err != nil {
		return CurvePoint{}, err
	}
	y3, err := s.Mul(dx)
	if err != nil {
		return CurvePoint{}, err
	}
	y3, err = y3.Sub(p.y)
	if err != nil {
		return CurvePoint{}, err
	}
	return CurvePoint{a: p.a, b: p.b, x: x3, y: y3}, nil
}

// Neg returns the additive inverse of p.
func (p CurvePoint) Neg() CurvePoint {
	if p.infinity {
		return p
	}
	return CurvePoint{a: p.a, b: p.b, x: p.x, y: p.y.Neg()}
}

// Scale computes k*P via right-to-left double-and-add on the binary
// expansion of k, in at most ceil(log2 k)+1 iterations.
func (p CurvePoint) Scale(k *big.Int) (CurvePoint, error) {
	result := InfinityPoint(p.a, p.b)
	if k.Sign() == 0 {
		return result, nil
	}
	kk := new(big.Int).Abs(k)
	addend := p
	for i := 0; i < kk.BitLen(); i++ {
		if kk.Bit(i) == 1 {
			var err error
			result, err = result.Add(addend)
			if err != nil {
				return CurvePoint{}, err
			}
		}
		var err error
		addend, err = addend.Add(addend)
		if err != nil {
			return CurvePoint{}, err
		}
	}
	if k.Sign() < 0 {
		result = result.Neg()
	}
	return result, nil
}
