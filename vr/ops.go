package vr

// Package-level entry points: each combines the EFT layer (eft.go) with the
// rounding-decision layer (rounding.go) for one elementary operation,
// exactly the composition spec.md §2 describes ("two layers compose").
// This is the scalar surface backend.Backend wraps with the host vtable
// contract; SIMD variants live in simd.go and share the same EFT/decide
// building blocks per lane.

// Add returns a⊕b rounded under ctx's selected mode.
func Add[T Float](ctx *Context, a, b T) T {
	p := Pack2[T]{A: a, B: b}
	x := AddNearest(p)
	return decide(ctx, decideArgs[T]{
		op:     OpAdd,
		x:      x,
		e:      AddError(p, x),
		s:      AddSameSignOfError(p, x),
		nanInf: p.AnyNaNOrInf(),
		hashKey: func() uint64 {
			return hashKey2(OpAdd, comdetIfNeeded(ctx, p, AddComdetPack[T]))
		},
		inFloat: func() T {
			af, bf := float32(a), float32(b)
			return T(af + bf)
		},
	})
}

// Sub returns a⊖b rounded under ctx's selected mode.
func Sub[T Float](ctx *Context, a, b T) T {
	p := Pack2[T]{A: a, B: b}
	x := SubNearest(p)
	return decide(ctx, decideArgs[T]{
		op:     OpSub,
		x:      x,
		e:      SubError(p, x),
		s:      SubSameSignOfError(p, x),
		nanInf: p.AnyNaNOrInf(),
		hashKey: func() uint64 {
			return hashKey2(OpSub, comdetIfNeeded(ctx, p, SubComdetPack[T]))
		},
		inFloat: func() T {
			af, bf := float32(a), float32(b)
			return T(af - bf)
		},
	})
}

// Mul returns a⊗b rounded under ctx's selected mode.
func Mul[T Float](ctx *Context, a, b T) T {
	p := Pack2[T]{A: a, B: b}
	x := MulNearest(p)
	return decide(ctx, decideArgs[T]{
		op:     OpMul,
		x:      x,
		e:      MulError(p, x),
		s:      MulSameSignOfError(p, x),
		nanInf: p.AnyNaNOrInf(),
		hashKey: func() uint64 {
			return hashKey2(OpMul, comdetIfNeeded(ctx, p, MulComdetPack[T]))
		},
		inFloat: func() T {
			af, bf := float32(a), float32(b)
			return T(af * bf)
		},
	})
}

// Div returns a⊘b rounded under ctx's selected mode.
func Div[T Float](ctx *Context, a, b T) T {
	p := Pack2[T]{A: a, B: b}
	x := DivNearest(p)
	return decide(ctx, decideArgs[T]{
		op:     OpDiv,
		x:      x,
		e:      DivError(p, x),
		s:      DivSameSignOfError(p, x),
		nanInf: p.AnyNaNOrInf(),
		hashKey: func() uint64 {
			return hashKey2(OpDiv, comdetIfNeeded(ctx, p, DivComdetPack[T]))
		},
		inFloat: func() T {
			af, bf := float32(a), float32(b)
			return T(af / bf)
		},
	})
}

// Fma returns the correctly-rounded a*b+c, rounded under ctx's selected mode.
func Fma[T Float](ctx *Context, a, b, c T) T {
	p := Pack3[T]{A: a, B: b, C: c}
	x := FmaNearest(p)
	return decide(ctx, decideArgs[T]{
		op:     OpFma,
		x:      x,
		e:      FmaError(p, x),
		s:      FmaSameSignOfError(p, x),
		nanInf: p.AnyNaNOrInf(),
		hashKey: func() uint64 {
			return hashKey3(OpFma, comdetIfNeeded3(ctx, p))
		},
		inFloat: func() T {
			af, bf, cf := float32(a), float32(b), float32(c)
			return T(fma32(af, bf, cf))
		},
	})
}

// CastF64ToF32 narrows a to binary32, rounded under ctx's selected mode.
func CastF64ToF32(ctx *Context, a float64) float32 {
	x := CastNearest(a)
	return decide(ctx, decideArgs[float32]{
		op:     OpCast,
		x:      x,
		e:      CastError(a, x),
		s:      CastSameSignOfError(a, x),
		nanInf: isNanOrInf(a),
		hashKey: func() uint64 {
			return hashKey(CombinedHash(OpCast, TypeOf[float32]()), []float64{a})
		},
		inFloat: func() float32 {
			return x
		},
	})
}

func comdetIfNeeded[T Float](ctx *Context, p Pack2[T], canon func(Pack2[T]) Pack2[T]) Pack2[T] {
	if ctx.RoundingMode.isCommutativeCanonicalized() {
		return canon(p)
	}
	return p
}

func comdetIfNeeded3[T Float](ctx *Context, p Pack3[T]) Pack3[T] {
	if ctx.RoundingMode.isCommutativeCanonicalized() {
		return FmaComdetPack(p)
	}
	return p
}
