package vr

import (
	"math"
	"math/big"
	"testing"
)

func TestTwoSumExact(t *testing.T) {
	cases := [][2]float64{
		{1.0, math.Pow(2, -53)},
		{1e16, 1.0},
		{0.1, 0.2},
		{-3.5, 3.5},
	}
	for _, c := range cases {
		x, e := TwoSum(c[0], c[1])
		checkExactBig(t, "TwoSum", c[0], c[1], x, e)
	}
}

func TestTwoProdExact(t *testing.T) {
	cases := [][2]float64{
		{0.1, 0.1},
		{1e16, 1e-16},
		{-2.5, 4.25},
	}
	for _, c := range cases {
		x, e := TwoProd(c[0], c[1])
		checkExactBigMul(t, c[0], c[1], x, e)
	}
}

// checkExactBig verifies x+e == a+b exactly using a high-precision
// big.Float reconstruction, the role original Verrou used a __float128
// cross-check for (spec.md P2).
func checkExactBig(t *testing.T, label string, a, b, x, e float64) {
	t.Helper()
	prec := uint(200)
	ba := big.NewFloat(a).SetPrec(prec)
	bb := big.NewFloat(b).SetPrec(prec)
	sum := new(big.Float).SetPrec(prec).Add(ba, bb)

	bx := big.NewFloat(x).SetPrec(prec)
	be := big.NewFloat(e).SetPrec(prec)
	recon := new(big.Float).SetPrec(prec).Add(bx, be)

	if sum.Cmp(recon) != 0 {
		t.Errorf("%s(%v,%v): x+e = %v, want %v", label, a, b, recon, sum)
	}
}

func checkExactBigMul(t *testing.T, a, b, x, e float64) {
	t.Helper()
	prec := uint(200)
	ba := big.NewFloat(a).SetPrec(prec)
	bb := big.NewFloat(b).SetPrec(prec)
	prod := new(big.Float).SetPrec(prec).Mul(ba, bb)

	bx := big.NewFloat(x).SetPrec(prec)
	be := big.NewFloat(e).SetPrec(prec)
	recon := new(big.Float).SetPrec(prec).Add(bx, be)

	if prod.Cmp(recon) != 0 {
		t.Errorf("TwoProd(%v,%v): x+e = %v, want %v", a, b, recon, prod)
	}
}

func TestAddNearestMatchesHardware(t *testing.T) {
	a, b := 1.0, math.Pow(2, -53)
	got := AddNearest(Pack2[float64]{A: a, B: b})
	if want := a + b; got != want {
		t.Errorf("AddNearest(%v,%v) = %v, want %v", a, b, got, want)
	}
}

func TestMulScenario3(t *testing.T) {
	p := Pack2[float64]{A: 0.1, B: 0.1}
	x := MulNearest(p)
	if x != 0.010000000000000002 {
		t.Errorf("MulNearest(0.1,0.1) = %v, want 0.010000000000000002", x)
	}
	e := MulError(p, x)
	want := -8.326672684688674e-19
	if math.Abs(e-want) > 1e-33 {
		t.Errorf("MulError(0.1,0.1) = %v, want ~%v", e, want)
	}
}

func TestFmaExactScenario5(t *testing.T) {
	p := Pack3[float64]{A: 1e16, B: 1e-16, C: 1.0}
	x := FmaNearest(p)
	if x != 2.0 {
		t.Errorf("FmaNearest(1e16,1e-16,1.0) = %v, want 2.0", x)
	}
	e := FmaError(p, x)
	want := -2.0902213275965396e-17
	if e != want {
		t.Errorf("FmaError(1e16,1e-16,1.0) = %v, want %v", e, want)
	}
}

func TestCastError(t *testing.T) {
	a := 1.0 + math.Pow(2, -40)
	z := CastNearest(a)
	if z != float32(1.0) {
		t.Fatalf("CastNearest(%v) = %v, want 1.0", a, z)
	}
	e := CastError(a, z)
	if e == 0 {
		t.Errorf("CastError(%v, %v) = 0, want nonzero", a, z)
	}
}

func TestDivSameSignOfErrorBinary32Magnitude(t *testing.T) {
	p := Pack2[float32]{A: 1, B: 3}
	x := DivNearest(p)
	s := DivSameSignOfError(p, x)
	if s != 0 && s != p.B && s != -p.B {
		t.Errorf("DivSameSignOfError(binary32) = %v, want 0, %v, or %v", s, p.B, -p.B)
	}
}
