package vr

// This file is the rounding-decision layer of spec.md §4.2: given the
// (nearest, error, sameSignOfError) triple the EFT layer produces, it picks
// one of {x, nextAfter(x), nextPrev(x)} (or, for FLOAT/NATIVE/FTZ, a value
// outside that set) according to the selected RoundingMode.
//
// decide is shared by every Pack2 and Pack3 operation: ops.go builds the
// (x, e, s) triple with the op-specific EFT functions and passes it here
// along with closures for the two things that differ per op — the
// deterministic-hash key and the FLOAT-mode recomputation.

// decideArgs bundles the EFT outputs and per-call hooks a single rounding
// decision needs, decoupling this file from Pack2/Pack3/cast shapes.
type decideArgs[T Float] struct {
	op     OpKind
	x      T // nearest(P)
	e      T // error(P, x) -- full signed, correctly scaled per the EFT table
	s      T // sameSignOfError(P, x) -- sign-correct, possibly differently scaled
	nanInf bool

	hashKey func() uint64 // deterministic-mode reseed key, lazily computed
	inFloat func() T      // recompute the op in binary32 and widen back to T
}

func decide[T Float](ctx *Context, d decideArgs[T]) T {
	switch ctx.RoundingMode {
	case Nearest:
		ctx.recordOp(signOf(d.e) == 0)
		return d.x

	case Upward:
		return decideUpward(ctx, d)

	case Downward:
		return decideDownward(ctx, d)

	case Zero:
		return decideZero(ctx, d)

	case Farthest:
		return decideFarthest(ctx, d)

	case Random:
		return decideRandomBit(ctx, d, rngForCurrentThread(ctx.Seed).NextBool)

	case RandomDet, RandomComdet:
		r := NewPRNG(d.hashKey())
		return decideRandomBit(ctx, d, r.NextBool)

	case Average:
		return decideAverage(ctx, d, rngForCurrentThread(ctx.Seed).NextDouble)

	case AverageDet, AverageComdet:
		r := NewPRNG(d.hashKey())
		return decideAverage(ctx, d, r.NextDouble)

	case Prandom:
		return decidePrandom(ctx, d, rngForCurrentThread(ctx.Seed).NextDouble)

	case PrandomDet, PrandomComdet:
		r := NewPRNG(d.hashKey())
		return decidePrandom(ctx, d, r.NextDouble)

	case Float:
		ctx.recordOp(signOf(d.e) == 0)
		return d.inFloat()

	case Native:
		ctx.recordOp(signOf(d.e) == 0)
		return d.x

	case FTZ:
		ctx.recordOp(signOf(d.e) == 0)
		return flushToZero(d.x)

	default:
		panic("vr: rounding mode not implemented")
	}
}

func decideUpward[T Float](ctx *Context, d decideArgs[T]) T {
	if d.nanInf {
		ctx.recordOp(false)
		if isNaNT(d.x) {
			return d.x
		}
		return saturateUpward(d.x)
	}
	ctx.recordOp(signOf(d.s) == 0)
	if signOf(d.s) <= 0 {
		return d.x
	}
	if isNegDenormMin(d.x) {
		var zero T
		return zero
	}
	return NextAfter(d.x)
}

func decideDownward[T Float](ctx *Context, d decideArgs[T]) T {
	if d.nanInf {
		ctx.recordOp(false)
		if isNaNT(d.x) {
			return d.x
		}
		return saturateDownward(d.x)
	}
	ctx.recordOp(signOf(d.s) == 0)
	if signOf(d.s) >= 0 {
		return d.x
	}
	return NextPrev(d.x)
}

func isNaNT[T Float](x T) bool {
	f := float64(x)
	return f != f
}

func decideZero[T Float](ctx *Context, d decideArgs[T]) T {
	exact := signOf(d.s) == 0
	ctx.recordOp(exact)
	if exact {
		return d.x
	}
	if signOf(d.s) != signOf(d.x) {
		return d.x
	}
	if d.x > 0 {
		return NextPrev(d.x)
	}
	return NextAfter(d.x)
}

func decideFarthest[T Float](ctx *Context, d decideArgs[T]) T {
	exact := signOf(d.e) == 0
	ctx.recordOp(exact)
	if exact {
		return d.x
	}
	up := NextAfter(d.x)
	down := NextPrev(d.x)
	if absT(up) >= absT(down) {
		return up
	}
	return down
}

func decideRandomBit[T Float](ctx *Context, d decideArgs[T], nextBool func() bool) T {
	exact := signOf(d.s) == 0
	ctx.recordOp(exact)
	if exact {
		return d.x
	}
	b := nextBool()
	target := signOf(d.s) > 0
	if b == target {
		return NextAfter(d.x)
	}
	return NextPrev(d.x)
}

func decideAverage[T Float](ctx *Context, d decideArgs[T], nextDouble func() float64) T {
	exact := signOf(d.e) == 0
	ctx.recordOp(exact)
	if exact {
		return d.x
	}
	var neighbor T
	if d.e > 0 {
		neighbor = NextAfter(d.x)
	} else {
		neighbor = NextPrev(d.x)
	}
	ulp := absT(neighbor - d.x)
	u := T(nextDouble())
	if u*ulp < absT(d.e) {
		return neighbor
	}
	return d.x
}

func decidePrandom[T Float](ctx *Context, d decideArgs[T], nextDouble func() float64) T {
	exact := signOf(d.e) == 0
	ctx.recordOp(exact)
	if exact {
		return d.x
	}
	u := nextDouble()
	if u >= ctx.P {
		return d.x
	}
	if d.e > 0 {
		return NextAfter(d.x)
	}
	return NextPrev(d.x)
}

func signOf[T Float](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func absT[T Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// isNegDenormMin reports whether x is exactly the smallest-magnitude
// negative representable value, the one case where nextAfter's natural
// bit-increment produces -0 but UPWARD must emit +0 (original Verrou's
// SIMD upward path explicitly overrides this boundary; see
// x86_64/vr_vroundingOp.hxx's RoundingUpward blend against
// simd_is_res_eq_neg_denorm_min).
func isNegDenormMin[T Float](x T) bool {
	switch v := any(x).(type) {
	case float64:
		return v == -smallestNonzeroFloat64
	case float32:
		return v == -smallestNonzeroFloat32
	default:
		return false
	}
}

const smallestNonzeroFloat64 = 5e-324

func saturateUpward[T Float](x T) T {
	switch any(x).(type) {
	case float64:
		return any(-maxFiniteFloat64).(T)
	case float32:
		return any(-maxFiniteFloat32).(T)
	default:
		panic("vr: unsupported scalar type")
	}
}

func saturateDownward[T Float](x T) T {
	switch any(x).(type) {
	case float64:
		return any(maxFiniteFloat64).(T)
	case float32:
		return any(maxFiniteFloat32).(T)
	default:
		panic("vr: unsupported scalar type")
	}
}

const (
	maxFiniteFloat64 = 1.7976931348623157e+308
	maxFiniteFloat32 = 3.4028235e+38
)

// flushToZero implements the FTZ mode: nearest result, subnormal outputs
// collapsed to a signed zero.
func flushToZero[T Float](x T) T {
	switch v := any(x).(type) {
	case float64:
		if v != 0 && absT(v) < smallestNormalFloat64 {
			return any(copysignZero(v)).(T)
		}
		return x
	case float32:
		if v != 0 && absT(v) < smallestNormalFloat32 {
			return any(copysignZero32(v)).(T)
		}
		return x
	default:
		panic("vr: unsupported scalar type")
	}
}

const (
	smallestNormalFloat64 = 2.2250738585072014e-308
	smallestNormalFloat32 = 1.1754944e-38
)

func copysignZero(x float64) float64 {
	if x < 0 {
		return negZero64
	}
	return 0
}

func copysignZero32(x float32) float32 {
	if x < 0 {
		return negZero32
	}
	return 0
}

var negZero64 = negZeroFloat64()
var negZero32 = negZeroFloat32()

func negZeroFloat64() float64 {
	var z float64
	return -z
}

func negZeroFloat32() float32 {
	var z float32
	return -z
}
