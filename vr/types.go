// Package vr implements the stochastic rounding kernel: a pipeline that,
// for each elementary IEEE-754 operation, computes the correctly-rounded
// nearest result, recovers the exact rounding error, and selects an
// adjacent representable value according to a caller-chosen rounding mode.
//
// The package is organized the way the teacher's SIMD library organizes
// dispatch over (operation, scalar type): a small set of generic
// constraints, a per-op descriptor, and type-switch based specializations
// for float32 and float64 — no reflection, no boxing on the hot path.
package vr

import "math"

// Float is the scalar-type constraint for the two types this package
// instruments. binary128 is never a first-class Float here; where the
// spec calls for extra precision (property tests only) math/big.Float is
// used directly instead of a third generic type.
type Float interface {
	~float32 | ~float64
}

// OpKind identifies the elementary operation being instrumented. Values
// match original_source/vr_op.hxx's opHash enum exactly so that any
// golden data derived from the original tool's hash table stays valid.
type OpKind uint32

const (
	OpAdd OpKind = iota
	OpSub
	OpMul
	OpDiv
	OpFma
	OpCast
	nbOpKind
)

func (o OpKind) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpFma:
		return "madd"
	case OpCast:
		return "cast"
	default:
		return "unknown"
	}
}

// TypeKind identifies the scalar type of an operation's result, matching
// vr_op.hxx's typeHash enum (floatHash=0, doubleHash=1, otherHash=2).
type TypeKind uint32

const (
	TypeFloat32 TypeKind = iota
	TypeFloat64
	typeOther
	nbTypeKind
)

// TypeOf returns the TypeKind for T.
func TypeOf[T Float]() TypeKind {
	var zero T
	switch any(zero).(type) {
	case float32:
		return TypeFloat32
	case float64:
		return TypeFloat64
	default:
		return typeOther
	}
}

// CombinedHash labels every call deterministically: op*3 + type. This is
// the same packing original_source/vr_op.hxx uses for getHash()/getComdetHash().
func CombinedHash(op OpKind, t TypeKind) uint64 {
	return uint64(op)*uint64(nbTypeKind) + uint64(t)
}

// Pack2 is an ordered 2-tuple of operands for add/sub/mul/div.
type Pack2[T Float] struct {
	A, B T
}

// Pack3 is an ordered 3-tuple of operands for fma.
type Pack3[T Float] struct {
	A, B, C T
}

// AnyNaNOrInf reports whether any operand is NaN or infinite.
func (p Pack2[T]) AnyNaNOrInf() bool {
	return isNanOrInf(p.A) || isNanOrInf(p.B)
}

// AnyNaNOrInf reports whether any operand is NaN or infinite.
func (p Pack3[T]) AnyNaNOrInf() bool {
	return isNanOrInf(p.A) || isNanOrInf(p.B) || isNanOrInf(p.C)
}

// SerializeDouble returns a canonical binary64 serialization of the pack,
// used for hashing in the deterministic rounding modes.
func (p Pack2[T]) SerializeDouble() [2]float64 {
	return [2]float64{float64(p.A), float64(p.B)}
}

// SerializeDouble returns a canonical binary64 serialization of the pack.
func (p Pack3[T]) SerializeDouble() [3]float64 {
	return [3]float64{float64(p.A), float64(p.B), float64(p.C)}
}

func isNanOrInf[T Float](x T) bool {
	f := float64(x)
	return math.IsNaN(f) || math.IsInf(f, 0)
}
