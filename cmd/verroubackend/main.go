// Command verroubackend demonstrates the verrou backend standalone: it
// parses the CLI surface spec.md §6 defines, configures a Backend, runs one
// sample each of binary64 add, mul, div and fma plus one f64->f32 cast, and
// prints the results with the profiling counters — exercising the backend
// the way a host program would, without actually being one. It does not
// check the results.
//
// Usage:
//
//	verroubackend -rounding-mode=upward -seed=1
package main

import (
	"fmt"
	"os"

	"github.com/edf-hpc/verrou-go/backend"
)

func main() {
	cfg := backend.ParseCLI(os.Args[1:])
	b := backend.Configure(cfg)

	b.BeginInstr()
	sum := b.AddF64(1.0, 0x1p-53)
	prod := b.MulF64(0.1, 0.1)
	quot := b.DivF64(1.0, 3.0)
	fused := b.FmaF64(1e16, 1e-16, 1.0)
	narrow := b.CastF64ToF32(1.0 + 0x1p-40)
	b.EndInstr()

	numOp, numExact := b.Ctx.ProfilingExact()

	fmt.Printf("backend: %s %s\n", b.Name(), b.Version())
	fmt.Printf("add(1.0, 2^-53)       = %v\n", sum)
	fmt.Printf("mul(0.1, 0.1)         = %v\n", prod)
	fmt.Printf("div(1.0, 3.0)         = %v\n", quot)
	fmt.Printf("fma(1e16, 1e-16, 1.0) = %v\n", fused)
	fmt.Printf("cast_f64_to_f32(...)  = %v\n", narrow)
	fmt.Printf("profiling_exact: %d/%d exact\n", numExact, numOp)

	b.Finalize()
}
