package backend

import "github.com/edf-hpc/verrou-go/vr"

// VectorTable implements spec.md §6's vector vtable as one entry each for
// add/sub/mul/div over binary32 slices of any length. The entries are not
// keyed by lane count: Add/Sub/Mul pass the whole slice to vr's batched
// lane emulation, and Div to vr.SimdDiv, which is a plain scalar loop, so
// no division is vectorized.
type VectorTable struct {
	Ctx *vr.Context
}

func NewVectorTable(ctx *vr.Context) *VectorTable { return &VectorTable{Ctx: ctx} }

func (v *VectorTable) Add(a, b, res []float32) { vr.SimdAdd(v.Ctx, a, b, res) }
func (v *VectorTable) Sub(a, b, res []float32) { vr.SimdSub(v.Ctx, a, b, res) }
func (v *VectorTable) Mul(a, b, res []float32) { vr.SimdMul(v.Ctx, a, b, res) }
func (v *VectorTable) Div(a, b, res []float32) { vr.SimdDiv(v.Ctx, a, b, res) }
