// Package backend adapts the vr stochastic-rounding core to the host
// vtable contract of spec.md §6: a fixed set of named entry points a host
// program looks up by symbol and calls directly, rather than a Go-idiomatic
// exported API the caller imports and calls by name. Backend exists
// because that vtable shape is itself part of the spec under test; ordinary
// Go code wanting stochastic rounding should just call the vr package.
package backend

import "github.com/edf-hpc/verrou-go/vr"

// Backend holds the context every vtable entry point closes over. A host
// creates one Backend per instrumented program (or per thread group
// sharing a rounding configuration) via New.
type Backend struct {
	Ctx *vr.Context
}

// New returns a Backend configured with package defaults (DOWNWARD, seed 0).
func New() *Backend {
	return &Backend{Ctx: vr.NewContext()}
}

func (b *Backend) AddF32(a, bb float32) float32 { return vr.Add(b.Ctx, a, bb) }
func (b *Backend) SubF32(a, bb float32) float32 { return vr.Sub(b.Ctx, a, bb) }
func (b *Backend) MulF32(a, bb float32) float32 { return vr.Mul(b.Ctx, a, bb) }
func (b *Backend) DivF32(a, bb float32) float32 { return vr.Div(b.Ctx, a, bb) }

func (b *Backend) AddF64(a, bb float64) float64 { return vr.Add(b.Ctx, a, bb) }
func (b *Backend) SubF64(a, bb float64) float64 { return vr.Sub(b.Ctx, a, bb) }
func (b *Backend) MulF64(a, bb float64) float64 { return vr.Mul(b.Ctx, a, bb) }
func (b *Backend) DivF64(a, bb float64) float64 { return vr.Div(b.Ctx, a, bb) }

func (b *Backend) FmaF32(a, bb, c float32) float32 { return vr.Fma(b.Ctx, a, bb, c) }
func (b *Backend) FmaF64(a, bb, c float64) float64 { return vr.Fma(b.Ctx, a, bb, c) }

func (b *Backend) CastF64ToF32(a float64) float32 { return vr.CastF64ToF32(b.Ctx, a) }

// BeginInstr/EndInstr bracket one instrumented host instruction, matching
// verrou_begin_instr/verrou_end_instr.
func (b *Backend) BeginInstr() { b.Ctx.BeginInstr() }
func (b *Backend) EndInstr()   { b.Ctx.EndInstr() }

// Finalize releases nothing (the core allocates no host-visible resources
// past configure-time) but exists to match get_backend_name/finalize's
// vtable shape (spec.md §6).
func (b *Backend) Finalize() {}

// Name matches get_backend_name.
func (b *Backend) Name() string { return "verrou" }

// Version matches get_backend_version.
func (b *Backend) Version() string { return "1.0.0" }
