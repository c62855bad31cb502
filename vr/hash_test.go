package vr

import "testing"

func TestHashKeyDeterministic(t *testing.T) {
	p := Pack2[float64]{A: 3.0, B: 3.141592653589793}
	k1 := hashKey2(OpAdd, p)
	k2 := hashKey2(OpAdd, p)
	if k1 != k2 {
		t.Errorf("hashKey2 not deterministic: %v != %v", k1, k2)
	}
}

func TestHashKeyCommutativeAfterCanon(t *testing.T) {
	p1 := AddComdetPack(Pack2[float64]{A: 3.0, B: 3.141592653589793})
	p2 := AddComdetPack(Pack2[float64]{A: 3.141592653589793, B: 3.0})
	if p1 != p2 {
		t.Fatalf("AddComdetPack not commutative: %v != %v", p1, p2)
	}
	if hashKey2(OpAdd, p1) != hashKey2(OpAdd, p2) {
		t.Error("hashKey2 differs for canonicalized-equal packs")
	}
}

func TestHashKeySensitiveToOperands(t *testing.T) {
	p1 := Pack2[float64]{A: 1.0, B: 2.0}
	p2 := Pack2[float64]{A: 1.0, B: 2.0000001}
	if hashKey2(OpAdd, p1) == hashKey2(OpAdd, p2) {
		t.Error("hashKey2 collided for distinct operands")
	}
}

func TestHashKeySensitiveToOp(t *testing.T) {
	p := Pack2[float64]{A: 1.0, B: 2.0}
	if hashKey2(OpAdd, p) == hashKey2(OpMul, p) {
		t.Error("hashKey2 collided across op kinds for the same operands")
	}
}
