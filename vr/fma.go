package vr

import "math"

// fma64 is the correctly-rounded binary64 fused multiply-add a*b+c. The
// error-free transform layer requires a correctly-rounded fma — without
// it TwoProd/ErrFmaApp are not exact and rounding decisions become biased
// (spec.md §4.1). math.FMA already guarantees this.
func fma64(a, b, c float64) float64 {
	return math.FMA(a, b, c)
}

// fma32 is a correctly-rounded binary32 fused multiply-add. Go exposes no
// hardware FMA intrinsic for float32, so it is computed by promoting all
// three operands to float64 (which represents the float32 inputs and their
// product exactly — a 24-bit x 24-bit product needs at most 48 significant
// bits, well inside float64's 53) and adding c in float64.
//
// That float64 sum is rounded, so narrowing it directly to float32 could
// round twice and land on a false tie. The sum is therefore rounded to odd:
// TwoSum recovers what the float64 addition dropped, and when that is
// nonzero the last bit of the sum is forced to 1. Rounding to odd in
// precision p2 >= p1+2 and then to nearest in p1 gives the correctly
// rounded result; here p1=24 (binary32) and p2=53 (binary64).
func fma32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	r := p + float64(c)
	z := r - p
	e := (p - (r - z)) + (float64(c) - z)
	if bits := math.Float64bits(r); (e > 0 || e < 0) && bits&1 == 0 {
		if (e > 0) == (r > 0) {
			bits++
		} else {
			bits--
		}
		r = math.Float64frombits(bits)
	}
	return float32(r)
}
