package zkp

import "math/big"

// secp256k1 curve parameters: y^2 = x^3 + 7 over F_p, generator G of prime
// order n. Constants are the standard published values for the curve.
var (
	secp256k1P = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F")
	secp256k1N = mustHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	secp256k1A = big.NewInt(0)
	secp256k1B = big.NewInt(7)
	secp256k1Gx = mustHex("79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	secp256k1Gy = mustHex("483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8")
)

func mustHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("zkp: invalid hex constant: " + s)
	}
	return v
}

// Secp256k1Prime returns the field prime p.
func Secp256k1Prime() *big.Int { return new(big.Int).Set(secp256k1P) }

// Secp256k1Order returns the subgroup order n.
func Secp256k1Order() *big.Int { return new(big.Int).Set(secp256k1N) }

// Secp256k1A returns the curve parameter a (always 0).
func Secp256k1A() *big.Int { return new(big.Int).Set(secp256k1A) }

// Secp256k1B returns the curve parameter b (always 7).
func Secp256k1B() *big.Int { return new(big.Int).Set(secp256k1B) }

// Secp256k1Generator returns the standard base point G.
func Secp256k1Generator() (CurvePoint, error) {
	a := NewFieldElement(secp256k1A, secp256k1P)
	b := NewFieldElement(secp256k1B, secp256k1P)
	x := NewFieldElement(secp256k1Gx, secp256k1P)
	y := NewFieldElement(secp256k1Gy, secp256k1P)
	return NewAffinePoint(a, b, x, y)
}

// secp256k1H returns h = 13*G, the fixed second generator. Its
// discrete log base G (13) is public and known; this is acceptable only
// for the didactic use this system is built for.
func secp256k1H() (CurvePoint, error) {
	g, err := Secp256k1Generator()
	if err != nil {
		return CurvePoint{}, err
	}
	return g.Scale(big.NewInt(13))
}
