package vr

import (
	"encoding/binary"
	"math"

	"golang.org/x/crypto/blake2b"
)

// hashKey derives the 64-bit reseed key used by the *_DET and *_COMDET
// rounding modes: a call at the same (op, type, operand bits) always
// produces the same key and therefore the same rounding decision, which is
// the whole point of the deterministic-hash family (spec.md §4.3).
//
// original_source/vr_op.hxx mixes op/type into a small integer hash and
// lets the operand bytes dominate the entropy via tinymt64's own seeding;
// this port instead hashes op/type and the operand bytes together with
// BLAKE2b, the same "hash the serialized call into a reseed key" shape
// opd-ai-go-randomx's blake2Generator uses to turn a byte buffer into fresh
// keystream. Using a cryptographic hash here is overkill for avalanche
// alone, but it is already an imported dependency and removes any risk of
// the home-grown mixing function described in vr_op.hxx producing visible
// correlations across nearby operand values.
func hashKey(combined uint64, bits []float64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], combined)
	h, _ := blake2b.New512(nil)
	h.Write(buf[:])
	for _, f := range bits {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	sum := h.Sum(nil)
	return binary.LittleEndian.Uint64(sum[:8])
}

// hashKey2 and hashKey3 are the Pack2/Pack3 conveniences used by the
// rounding dispatcher.
func hashKey2[T Float](op OpKind, p Pack2[T]) uint64 {
	ser := p.SerializeDouble()
	return hashKey(CombinedHash(op, TypeOf[T]()), ser[:])
}

func hashKey3[T Float](op OpKind, p Pack3[T]) uint64 {
	ser := p.SerializeDouble()
	return hashKey(CombinedHash(op, TypeOf[T]()), ser[:])
}
