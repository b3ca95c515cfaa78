package zkp

import (
	"math/big"
	"testing"

	"github.com/chaumpedersen/zkpauth/internal/testutils"
)

// toyMulConstants builds GroupConstants for the small multiplicative groups used
// across the seeded scenarios, parameterized so S1-S3 can share this helper.
func toyMulConstants(p, q, g, h int64) GroupConstants {
	pb := big.NewInt(p)
	return GroupConstants{
		Choice: MulGroup,
		P:      pb,
		Q:      big.NewInt(q),
		G:      ScalarPoint(big.NewInt(g), pb),
		H:      ScalarPoint(big.NewInt(h), pb),
	}
}

// TestScenarioS1ToySuccess is a toy end-to-end scenario: p=23, q=11, g=4, h=9, x=6,
// k=7, c=4. Expect y1=2, y2=3, r1=8, r2=4, s=5, verify=true.
func TestScenarioS1ToySuccess(t *testing.T) {
	gc := toyMulConstants(23, 11, 4, 9)
	x := big.NewInt(6)
	k := big.NewInt(7)
	c := big.NewInt(4)

	y1, y2, err := ExponentiatePair(x, gc)
	if err != nil {
		t.Fatalf("ExponentiatePair(x): %v", err)
	}
	testutils.AssertBigIntsEqual(t, "y1", big.NewInt(2), y1.ScalarValue())
	testutils.AssertBigIntsEqual(t, "y2", big.NewInt(3), y2.ScalarValue())

	r1, r2, err := ExponentiatePair(k, gc)
	if err != nil {
		t.Fatalf("ExponentiatePair(k): %v", err)
	}
	testutils.AssertBigIntsEqual(t, "r1", big.NewInt(8), r1.ScalarValue())
	testutils.AssertBigIntsEqual(t, "r2", big.NewInt(4), r2.ScalarValue())

	s := SolveChallengeS(x, k, c, gc.Q)
	testutils.AssertBigIntsEqual(t, "s", big.NewInt(5), s)

	ok, err := Verify(r1, r2, y1, y2, gc, c, s)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Errorf("expected verification to succeed")
	}
}

// TestScenarioS2ToyFailure is as S1 but the prover sends
// s=4. Expect verify=false.
func TestScenarioS2ToyFailure(t *testing.T) {
	gc := toyMulConstants(23, 11, 4, 9)
	x := big.NewInt(6)
	k := big.NewInt(7)
	c := big.NewInt(4)

	y1, y2, err := ExponentiatePair(x, gc)
	if err != nil {
		t.Fatal(err)
	}
	r1, r2, err := ExponentiatePair(k, gc)
	if err != nil {
		t.Fatal(err)
	}

	badS := big.NewInt(4)
	ok, err := Verify(r1, r2, y1, y2, gc, c, badS)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Errorf("expected verification to fail with a wrong s")
	}
}

// TestScenarioS3SmallComposite uses the default toy group, whose modulus p=10009 is prime; q=5004, g=3,
// h=2892, x=300, k=10, c=894. Expect y1=6419, y2=4984, verify=true.
func TestScenarioS3SmallComposite(t *testing.T) {
	gc := toyMulConstants(10009, 5004, 3, 2892)
	x := big.NewInt(300)
	k := big.NewInt(10)
	c := big.NewInt(894)

	y1, y2, err := ExponentiatePair(x, gc)
	if err != nil {
		t.Fatal(err)
	}
	testutils.AssertBigIntsEqual(t, "y1", big.NewInt(6419), y1.ScalarValue())
	testutils.AssertBigIntsEqual(t, "y2", big.NewInt(4984), y2.ScalarValue())

	r1, r2, err := ExponentiatePair(k, gc)
	if err != nil {
		t.Fatal(err)
	}
	s := SolveChallengeS(x, k, c, gc.Q)

	ok, err := Verify(r1, r2, y1, y2, gc, c, s)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("expected verification to succeed")
	}
}

// TestScenarioS4EcSuccess runs the same x=300, k=10, c=894 as
// S3 but over secp256k1. Expect verify=true.
func TestScenarioS4EcSuccess(t *testing.T) {
	gc, err := DefaultEcGroupConstants()
	if err != nil {
		t.Fatal(err)
	}
	x := big.NewInt(300)
	k := big.NewInt(10)
	c := big.NewInt(894)

	y1, y2, err := ExponentiatePair(x, gc)
	if err != nil {
		t.Fatal(err)
	}
	r1, r2, err := ExponentiatePair(k, gc)
	if err != nil {
		t.Fatal(err)
	}
	s := SolveChallengeS(x, k, c, gc.Q)

	ok, err := Verify(r1, r2, y1, y2, gc, c, s)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("expected verification to succeed")
	}
}

// TestScenarioS5EcFailure is as S4 but s replaced by s+1.
func TestScenarioS5EcFailure(t *testing.T) {
	gc, err := DefaultEcGroupConstants()
	if err != nil {
		t.Fatal(err)
	}
	x := big.NewInt(300)
	k := big.NewInt(10)
	c := big.NewInt(894)

	y1, y2, err := ExponentiatePair(x, gc)
	if err != nil {
		t.Fatal(err)
	}
	r1, r2, err := ExponentiatePair(k, gc)
	if err != nil {
		t.Fatal(err)
	}
	s := SolveChallengeS(x, k, c, gc.Q)
	s.Add(s, big.NewInt(1))

	ok, err := Verify(r1, r2, y1, y2, gc, c, s)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Errorf("expected verification to fail with s+1")
	}
}

func TestSolveChallengeSNegativeCaseZeroResidue(t *testing.T) {
	// k - c*x < 0 and (c*x - k) mod q == 0: result must be 0, not q.
	q := big.NewInt(10)
	x := big.NewInt(1)
	c := big.NewInt(10)
	k := big.NewInt(0)
	// c*x - k = 10, mod q(10) = 0 -> s must be 0
	s := SolveChallengeS(x, k, c, q)
	testutils.AssertBigIntsEqual(t, "s", big.NewInt(0), s)

	if s.Sign() < 0 || s.Cmp(q) >= 0 {
		t.Errorf("s must be in [0, q), got %v", s)
	}
}

func TestSolveChallengeSPositiveAndNegative(t *testing.T) {
	// s = 10 - 3*3 mod 10 = 1
	testutils.AssertBigIntsEqual(t, "s", big.NewInt(1),
		SolveChallengeS(big.NewInt(3), big.NewInt(10), big.NewInt(3), big.NewInt(10)))

	// s = 10 - 3*4 mod 10 = 8
	testutils.AssertBigIntsEqual(t, "s", big.NewInt(8),
		SolveChallengeS(big.NewInt(4), big.NewInt(10), big.NewInt(3), big.NewInt(10)))
}

// TestVerifyInvariantForArbitraryParameters checks: for any
// x, k, c under valid GroupConstants, a correctly-computed proof verifies,
// and perturbing s by any nonzero delta mod q breaks it.
func TestVerifyInvariantForArbitraryParameters(t *testing.T) {
	cases := []struct {
		name string
		gc   GroupConstants
	}{
		{"mul-toy", toyMulConstants(10009, 5004, 3, 2892)},
	}
	ecGc, err := DefaultEcGroupConstants()
	if err != nil {
		t.Fatal(err)
	}
	cases = append(cases, struct {
		name string
		gc   GroupConstants
	}{"ec-secp256k1", ecGc})

	xs := []int64{1, 7, 300, 4999}
	ks := []int64{1, 10, 123, 2500}
	cs := []int64{0, 4, 894, 1000}

	for _, tc := range cases {
		for _, xv := range xs {
			for _, kv := range ks {
				for _, cv := range cs {
					x := big.NewInt(xv)
					k := big.NewInt(kv)
					c := big.NewInt(cv)

					y1, y2, err := ExponentiatePair(x, tc.gc)
					if err != nil {
						t.Fatalf("%s: ExponentiatePair(x): %v", tc.name, err)
					}
					r1, r2, err := ExponentiatePair(k, tc.gc)
					if err != nil {
						t.Fatalf("%s: ExponentiatePair(k): %v", tc.name, err)
					}
					s := SolveChallengeS(x, k, c, tc.gc.Q)

					ok, err := Verify(r1, r2, y1, y2, tc.gc, c, s)
					if err != nil {
						t.Fatalf("%s: Verify: %v", tc.name, err)
					}
					if !ok {
						t.Fatalf("%s: expected verify(x=%v,k=%v,c=%v) to succeed", tc.name, xv, kv, cv)
					}

					delta := big.NewInt(1)
					sPrime := new(big.Int).Add(s, delta)
					sPrime.Mod(sPrime, tc.gc.Q)
					if sPrime.Cmp(s) == 0 {
						continue // delta reduced to 0 mod q, no assertion to make
					}
					ok2, err := Verify(r1, r2, y1, y2, tc.gc, c, sPrime)
					if err != nil {
						t.Fatalf("%s: Verify: %v", tc.name, err)
					}
					if ok2 {
						t.Fatalf("%s: expected verify with s+1 to fail (x=%v,k=%v,c=%v)", tc.name, xv, kv, cv)
					}
				}
			}
		}
	}
}

func TestExponentiatePairMixedVariantsFails(t *testing.T) {
	gc, err := DefaultEcGroupConstants()
	if err != nil {
		t.Fatal(err)
	}
	gc.H = ScalarPoint(big.NewInt(1), big.NewInt(23))
	if _, _, err := ExponentiatePair(big.NewInt(1), gc); KindOf(err) != KindInvalidArguments {
		t.Errorf("expected InvalidArguments for mixed variants, got %v", err)
	}
}
