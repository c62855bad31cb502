package vr

// Lane-width emulation for binary32 add/sub/mul, per spec.md §4.4: the
// decision logic is identical per lane to the scalar path, batched only so
// a "no lane needs perturbing" fast-exit can skip the PRNG entirely. There
// is no real vector *data type* here (see DESIGN.md on why archsimd/
// goexperiment.simd isn't wired in) — "lanes" means "the independent
// scalar decisions this call batches". SimdAdd/SimdSub/SimdMul accept any
// slice length and treat the whole slice as one batch with one fast-exit
// check; they do not split it into chunks of LaneWidthF32 lanes.

// SimdAdd computes res[i] = a[i] ⊕ b[i] for every lane under ctx's mode.
// If every lane's rounding error is exactly zero, the whole batch is
// emitted as its nearest result without drawing a single PRNG bit.
func SimdAdd(ctx *Context, a, b, res []float32) {
	n := len(a)
	allExact := true
	for i := 0; i < n; i++ {
		p := Pack2[float32]{A: a[i], B: b[i]}
		x := AddNearest(p)
		res[i] = x
		if AddSameSignOfError(p, x) != 0 {
			allExact = false
		}
	}
	if allExact {
		ctx.recordOp(true)
		return
	}
	for i := 0; i < n; i++ {
		res[i] = Add(ctx, a[i], b[i])
	}
}

// SimdSub computes res[i] = a[i] ⊖ b[i] for every lane under ctx's mode.
func SimdSub(ctx *Context, a, b, res []float32) {
	n := len(a)
	allExact := true
	for i := 0; i < n; i++ {
		p := Pack2[float32]{A: a[i], B: b[i]}
		x := SubNearest(p)
		res[i] = x
		if SubSameSignOfError(p, x) != 0 {
			allExact = false
		}
	}
	if allExact {
		ctx.recordOp(true)
		return
	}
	for i := 0; i < n; i++ {
		res[i] = Sub(ctx, a[i], b[i])
	}
}

// SimdMul computes res[i] = a[i] ⊗ b[i] for every lane under ctx's mode.
func SimdMul(ctx *Context, a, b, res []float32) {
	n := len(a)
	allExact := true
	for i := 0; i < n; i++ {
		p := Pack2[float32]{A: a[i], B: b[i]}
		x := MulNearest(p)
		res[i] = x
		if MulSameSignOfError(p, x) != 0 {
			allExact = false
		}
	}
	if allExact {
		ctx.recordOp(true)
		return
	}
	for i := 0; i < n; i++ {
		res[i] = Mul(ctx, a[i], b[i])
	}
}

// SimdDiv is division's lane entry: never vectorized (spec.md §4.4), a
// plain scalar loop documented here rather than hidden behind a vector
// name that would suggest otherwise.
func SimdDiv(ctx *Context, a, b, res []float32) {
	for i := range a {
		res[i] = Div(ctx, a[i], b[i])
	}
}
