package vr

// This file is the error-free transform (EFT) layer of spec.md §4.1: for
// each operation it computes the IEEE round-to-nearest result and the
// exact rounding error such that, in unbounded real arithmetic,
// nearest + error == a op b. Formulas are ported directly from
// original_source/vr_op.hxx (scalar specializations) and
// original_source/x86_64/vr_vop.hxx (vector specializations), which is
// EDF Verrou's own implementation of Dekker/Knuth/Boldo-Muller EFTs.

// TwoSum is Knuth's branch-free EFT for addition: x = a+b (rounded),
// e the exact error such that x+e == a+b over the reals.
func TwoSum[T Float](a, b T) (x, e T) {
	x = a + b
	e = AddError(Pack2[T]{A: a, B: b}, x)
	return
}

// TwoProd is the EFT for multiplication via one FMA: x = a*b (rounded),
// e the exact error such that x+e == a*b over the reals.
func TwoProd[T Float](a, b T) (x, e T) {
	x = a * b
	e = MulError(Pack2[T]{A: a, B: b}, x)
	return
}

// --- add ---

// AddNearest is the IEEE round-to-nearest result of a+b.
func AddNearest[T Float](p Pack2[T]) T { return p.A + p.B }

// AddError recovers the exact rounding error of a+b via Knuth's TwoSum.
func AddError[T Float](p Pack2[T], x T) T {
	z := x - p.A
	return (p.A - (x - z)) + (p.B - z)
}

// AddSameSignOfError returns a value whose sign equals the true error's sign.
func AddSameSignOfError[T Float](p Pack2[T], x T) T { return AddError(p, x) }

// AddComdetPack canonicalizes (a,b) to (min,max) so that commuted calls
// to add hash identically under *_COMDET modes.
func AddComdetPack[T Float](p Pack2[T]) Pack2[T] {
	if p.A <= p.B {
		return p
	}
	return Pack2[T]{A: p.B, B: p.A}
}

// --- sub ---

// SubNearest is the IEEE round-to-nearest result of a-b.
func SubNearest[T Float](p Pack2[T]) T { return p.A - p.B }

// SubError recovers the exact rounding error of a-b via TwoSum with b'=-b.
func SubError[T Float](p Pack2[T], x T) T {
	bNeg := -p.B
	z := x - p.A
	return (p.A - (x - z)) + (bNeg - z)
}

// SubSameSignOfError returns a value whose sign equals the true error's sign.
func SubSameSignOfError[T Float](p Pack2[T], x T) T { return SubError(p, x) }

// SubComdetPack canonicalizes on (a,-b) using the add canonicalization, per
// spec.md §4.2 ("Tie-breaks & determinism").
func SubComdetPack[T Float](p Pack2[T]) Pack2[T] {
	return AddComdetPack(Pack2[T]{A: p.A, B: -p.B})
}

// --- mul ---

// MulNearest is the IEEE round-to-nearest result of a*b.
func MulNearest[T Float](p Pack2[T]) T { return p.A * p.B }

// MulError recovers the exact rounding error of a*b via one FMA
// (Ogita-Rump-Oishi), using a correctly-rounded FMA for T.
func MulError[T Float](p Pack2[T], x T) T {
	switch a := any(p.A).(type) {
	case float64:
		b := any(p.B).(float64)
		xf := any(x).(float64)
		return any(fma64(a, b, -xf)).(T)
	case float32:
		b := any(p.B).(float32)
		xf := any(x).(float32)
		return any(fma32(a, b, -xf)).(T)
	default:
		panic("vr: unsupported scalar type")
	}
}

// MulSameSignOfError returns a value whose sign equals the true error's
// sign. binary64 matches MulError except at x==0, where the product's
// sign is recovered from the operands directly (spec.md §4.1). binary32
// computes the error in binary64 and returns only its sign, ±1 or 0.
func MulSameSignOfError[T Float](p Pack2[T], x T) T {
	switch a := any(p.A).(type) {
	case float64:
		b := any(p.B).(float64)
		xf := any(x).(float64)
		if xf != 0 {
			return any(fma64(a, b, -xf)).(T)
		}
		if a == 0 || b == 0 {
			return any(0.0).(T)
		}
		if a > 0 {
			return any(b).(T)
		}
		return any(-b).(T)
	case float32:
		b := any(p.B).(float32)
		xf := any(x).(float32)
		res := fma64(float64(a), float64(b), -float64(xf))
		switch {
		case res < 0:
			return any(float32(-1)).(T)
		case res > 0:
			return any(float32(1)).(T)
		default:
			return any(float32(0)).(T)
		}
	default:
		panic("vr: unsupported scalar type")
	}
}

// MulComdetPack canonicalizes (a,b) to (min,max) for the commutative
// multiplication operation.
func MulComdetPack[T Float](p Pack2[T]) Pack2[T] {
	if p.A <= p.B {
		return p
	}
	return Pack2[T]{A: p.B, B: p.A}
}

// --- div ---

// DivNearest is the IEEE round-to-nearest result of a/b.
func DivNearest[T Float](p Pack2[T]) T { return p.A / p.B }

// DivError recovers the signed remainder of a/b: sign(e) == sign(true-x).
// binary64 returns the unscaled residual -FMA(x,b,-a); binary32 scales it
// by /b (spec.md §4.1 and the division Open Question in §9 — the
// magnitude mismatch between the two is intentional and is not "fixed").
func DivError[T Float](p Pack2[T], x T) T {
	switch a := any(p.A).(type) {
	case float64:
		b := any(p.B).(float64)
		xf := any(x).(float64)
		return any(-fma64(xf, b, -a)).(T)
	case float32:
		b := any(p.B).(float32)
		xf := any(x).(float32)
		return any(-fma32(xf, b, -a) / b).(T)
	default:
		panic("vr: unsupported scalar type")
	}
}

// DivSameSignOfError returns a value whose sign equals the true error's
// sign. binary64 is the full unscaled residual (same formula as
// DivError); binary32 computes the residual in binary64 and returns
// ±b or 0, matching original_source/vr_op.hxx's DivOp<float> exactly.
func DivSameSignOfError[T Float](p Pack2[T], x T) T {
	switch a := any(p.A).(type) {
	case float64:
		b := any(p.B).(float64)
		xf := any(x).(float64)
		return any(-fma64(xf, b, -a)).(T)
	case float32:
		b := any(p.B).(float32)
		xf := any(x).(float32)
		r := -fma64(float64(xf), float64(b), -float64(a))
		switch {
		case r > 0:
			return any(b).(T)
		case r < 0:
			return any(-b).(T)
		default:
			return any(float32(0)).(T)
		}
	default:
		panic("vr: unsupported scalar type")
	}
}

// DivComdetPack is the identity: division is not commutative, so *_COMDET
// modes canonicalize on the pack unchanged.
func DivComdetPack[T Float](p Pack2[T]) Pack2[T] { return p }

// --- fma ---

// FmaNearest is the correctly-rounded result of fma(a,b,c) = a*b+c.
func FmaNearest[T Float](p Pack3[T]) T {
	switch a := any(p.A).(type) {
	case float64:
		b := any(p.B).(float64)
		c := any(p.C).(float64)
		return any(fma64(a, b, c)).(T)
	case float32:
		b := any(p.B).(float32)
		c := any(p.C).(float32)
		return any(fma32(a, b, c)).(T)
	default:
		panic("vr: unsupported scalar type")
	}
}

// FmaError recovers the exact rounding error of fma(a,b,c) via the
// Boldo-Muller ErrFmaApp algorithm: (p_h,p_l)=TwoProd(a,b);
// (u_h,u_l)=TwoSum(c,p_h); t=u_h-x; t+(p_l+u_l).
func FmaError[T Float](p Pack3[T], x T) T {
	ph, pl := TwoProd(p.A, p.B)
	uh, ul := TwoSum(p.C, ph)
	t := uh - x
	return t + (pl + ul)
}

// FmaSameSignOfError returns a value whose sign equals the true error's sign.
func FmaSameSignOfError[T Float](p Pack3[T], x T) T { return FmaError(p, x) }

// FmaComdetPack canonicalizes the commutative operands (a,b) to
// (min,max), leaving the addend c untouched.
func FmaComdetPack[T Float](p Pack3[T]) Pack3[T] {
	if p.A <= p.B {
		return p
	}
	return Pack3[T]{A: p.B, B: p.A, C: p.C}
}

// --- cast f64 -> f32 ---

// CastNearest is the IEEE round-to-nearest binary32 narrowing of a.
func CastNearest(a float64) float32 { return float32(a) }

// CastError recovers the exact rounding error of the narrowing, which is
// representable in binary32 whenever a is itself exactly representable
// after widening from a normal binary32 (spec.md I1).
func CastError(a float64, z float32) float32 {
	errHi := a - float64(z)
	return float32(errHi)
}

// CastSameSignOfError returns a value whose sign equals the true error's sign.
func CastSameSignOfError(a float64, z float32) float32 { return CastError(a, z) }
