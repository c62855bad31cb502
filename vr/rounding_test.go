package vr

import (
	"math"
	"testing"
)

func newCtx(mode RoundingMode) *Context {
	c := NewContext()
	c.DefaultRoundingMode = mode
	c.RoundingMode = mode
	return c
}

func TestScenario1AddUnderDirectedModes(t *testing.T) {
	a, b := 1.0, math.Pow(2, -53)

	if got := Add(newCtx(Nearest), a, b); got != 1.0 {
		t.Errorf("NEAREST: got %v, want 1.0", got)
	}
	if got := Add(newCtx(Upward), a, b); got != NextAfter(1.0) {
		t.Errorf("UPWARD: got %v, want %v", got, NextAfter(1.0))
	}
	if got := Add(newCtx(Downward), a, b); got != 1.0 {
		t.Errorf("DOWNWARD: got %v, want 1.0", got)
	}
}

func TestScenario2AverageUnbiased(t *testing.T) {
	a, b := 1.0, math.Pow(2, -53)
	const trials = 200000
	up := 0
	ctx := newCtx(Average)
	for i := 0; i < trials; i++ {
		if Add(ctx, a, b) != 1.0 {
			up++
		}
	}
	p := float64(up) / trials
	if math.Abs(p-0.5) > 0.02 {
		t.Errorf("AVERAGE up-probability = %v, want ~0.5", p)
	}
}

func TestScenario4DivDownward(t *testing.T) {
	got := Div(newCtx(Downward), 1.0, 3.0)
	want := 1.0 / 3.0
	if got != want {
		t.Errorf("div(1,3) DOWNWARD = %v, want %v", got, want)
	}
}

func TestScenario5FmaExactAllModesAgree(t *testing.T) {
	modes := []RoundingMode{Nearest, Upward, Downward, Zero, Farthest, Random}
	for _, m := range modes {
		got := Fma(newCtx(m), 2.0, 3.0, 1.0)
		if got != 7.0 {
			t.Errorf("fma exact under %s = %v, want 7.0", m, got)
		}
	}
}

func TestScenario7NaNInfSaturation(t *testing.T) {
	got := Add(newCtx(Downward), math.NaN(), 1.0)
	if !math.IsNaN(got) {
		t.Errorf("add(NaN,1.0) DOWNWARD = %v, want NaN", got)
	}

	got2 := Add(newCtx(Downward), math.Inf(1), 1.0)
	if got2 != math.MaxFloat64 {
		t.Errorf("add(+Inf,1.0) DOWNWARD = %v, want +MaxFloat64", got2)
	}

	got3 := Add(newCtx(Upward), math.Inf(1), 1.0)
	if got3 != -math.MaxFloat64 {
		t.Errorf("add(+Inf,1.0) UPWARD = %v, want -MaxFloat64", got3)
	}
}

func TestScenario8ComdetCommutativity(t *testing.T) {
	ctx1 := newCtx(RandomComdet)
	ctx2 := newCtx(RandomComdet)
	got1 := Add(ctx1, 3.0, math.Pi)
	got2 := Add(ctx2, math.Pi, 3.0)
	if got1 != got2 {
		t.Errorf("RANDOM_COMDET not commutative: add(3,pi)=%v add(pi,3)=%v", got1, got2)
	}
}

func TestP3DirectedModesStayAdjacent(t *testing.T) {
	modes := []RoundingMode{Upward, Downward, Random, Average, Farthest}
	a, b := 0.1, 0.2
	for _, m := range modes {
		x := AddNearest(Pack2[float64]{A: a, B: b})
		got := Add(newCtx(m), a, b)
		if got != x && got != NextAfter(x) && got != NextPrev(x) {
			t.Errorf("mode %s: add(%v,%v) = %v, not in {x, nextAfter, nextPrev}", m, a, b, got)
		}
	}
}

func TestP4ExactOperationsUnperturbed(t *testing.T) {
	modes := []RoundingMode{Upward, Downward, Zero, Random, RandomDet, RandomComdet,
		Average, AverageDet, AverageComdet, Prandom, PrandomDet, PrandomComdet, Farthest}
	for _, m := range modes {
		got := Add(newCtx(m), 1.0, 1.0)
		if got != 2.0 {
			t.Errorf("mode %s: exact add(1,1) = %v, want 2.0 unchanged", m, got)
		}
	}
}

func TestP5DeterministicModesRepeat(t *testing.T) {
	modes := []RoundingMode{RandomDet, RandomComdet, AverageDet, AverageComdet, PrandomDet, PrandomComdet}
	for _, m := range modes {
		ctx1 := newCtx(m)
		ctx1.P = 0.3
		ctx2 := newCtx(m)
		ctx2.P = 0.3
		got1 := Add(ctx1, 0.1, 0.2)
		got2 := Add(ctx2, 0.1, 0.2)
		if got1 != got2 {
			t.Errorf("mode %s not deterministic: %v != %v", m, got1, got2)
		}
	}
}

func TestP6ComdetCommutativeForMul(t *testing.T) {
	got1 := Mul(newCtx(AverageComdet), 7.0, 0.3)
	got2 := Mul(newCtx(AverageComdet), 0.3, 7.0)
	if got1 != got2 {
		t.Errorf("mul AVERAGE_COMDET not commutative: %v != %v", got1, got2)
	}
}

func TestP8FloatModeMatchesBinary32Roundtrip(t *testing.T) {
	a, b := 1.0/3.0, 7.0/11.0
	got := Add(newCtx(Float), a, b)
	want := float64(float32(a) + float32(b))
	if got != want {
		t.Errorf("FLOAT mode add(%v,%v) = %v, want %v", a, b, got, want)
	}
}

func TestFTZFlushesSubnormals(t *testing.T) {
	sub := math.SmallestNonzeroFloat64 * 2
	got := Add(newCtx(FTZ), sub, 0.0)
	if got != 0 {
		t.Errorf("FTZ(subnormal) = %v, want 0", got)
	}
}

func TestNativePassesThrough(t *testing.T) {
	got := Add(newCtx(Native), 1.0, math.Pow(2, -53))
	if got != 1.0 {
		t.Errorf("NATIVE add = %v, want 1.0 (nearest)", got)
	}
}

func TestParseRoundingModeRoundTrips(t *testing.T) {
	for m := Nearest; m <= FTZ; m++ {
		parsed, err := ParseRoundingMode(m.String())
		if err != nil {
			t.Fatalf("ParseRoundingMode(%q): %v", m.String(), err)
		}
		if parsed != m {
			t.Errorf("ParseRoundingMode(%q) = %v, want %v", m.String(), parsed, m)
		}
	}
	if _, err := ParseRoundingMode("bogus"); err == nil {
		t.Error("ParseRoundingMode(\"bogus\") should fail")
	}
}
