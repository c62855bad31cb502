package backend

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/edf-hpc/verrou-go/vr"
)

// Config is the parsed form of spec.md §6's CLI surface: --rounding-mode,
// --seed, --static-backend, plus the VFC_BACKENDS_SILENT_LOAD environment
// variable. ParseCLI fills one in from a flag.FlagSet the way
// cmd/hwygen's main.go parses its own small, single-purpose CLI.
type Config struct {
	RoundingMode  vr.RoundingMode
	Seed          uint64
	ChooseSeed    bool
	StaticBackend bool
	SilentLoad    bool
}

// DefaultConfig matches spec.md §6's defaults table.
func DefaultConfig() Config {
	return Config{
		RoundingMode: vr.DefaultRoundingMode,
		Seed:         0,
		ChooseSeed:   false,
	}
}

// ParseCLI parses args (typically os.Args[1:]) into a Config. An unknown
// rounding mode or a non-integer seed prints a diagnostic to stderr and
// calls os.Exit(42), matching spec.md §7a exactly — this is a process
// exit by design, not a recoverable error.
func ParseCLI(args []string) Config {
	cfg := DefaultConfig()

	fs := flag.NewFlagSet("verroubackend", flag.ExitOnError)
	modeFlag := fs.String("rounding-mode", cfg.RoundingMode.String(), "rounding mode: nearest, upward, downward, toward_zero, random[_det|_comdet], average[_det|_comdet], prandom[_det|_comdet], farthest, float, native, ftz")
	seedFlag := fs.String("seed", "", "u64 seed (decimal); unset derives one from the clock and thread id")
	staticFlag := fs.Bool("static-backend", cfg.StaticBackend, "record static-backend in the context; rounding dispatch is the same either way")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "verrou: %v\n", err)
		os.Exit(42)
	}

	mode, err := vr.ParseRoundingMode(*modeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verrou: %v\n", err)
		os.Exit(42)
	}
	cfg.RoundingMode = mode

	if *seedFlag != "" {
		seed, err := strconv.ParseUint(*seedFlag, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "verrou: invalid --seed %q: %v\n", *seedFlag, err)
			os.Exit(42)
		}
		cfg.Seed = seed
		cfg.ChooseSeed = true
	}

	cfg.StaticBackend = *staticFlag
	cfg.SilentLoad = silentLoadFromEnv()
	return cfg
}

// silentLoadFromEnv implements VFC_BACKENDS_SILENT_LOAD: a case-insensitive
// "true" suppresses the startup banner Configure prints.
func silentLoadFromEnv() bool {
	return strings.EqualFold(os.Getenv("VFC_BACKENDS_SILENT_LOAD"), "true")
}

// Configure builds a Backend from cfg, deriving a seed from the clock and
// thread id when the caller never set --seed, matching spec.md §6's
// default: tv_sec XOR tv_usec XOR gettid(). It also prints the startup
// banner interflop_verrou.cxx prints on load, unless SilentLoad is set.
func Configure(cfg Config) *Backend {
	b := New()
	b.Ctx.DefaultRoundingMode = cfg.RoundingMode
	b.Ctx.RoundingMode = cfg.RoundingMode
	b.Ctx.StaticBackend = cfg.StaticBackend

	seed := cfg.Seed
	if !cfg.ChooseSeed {
		seed = deriveSeed()
	}
	b.Ctx.SetSeed(seed)

	if !cfg.SilentLoad {
		fmt.Fprintf(os.Stderr, "VERROU ROUNDING MODE : %s\n", b.Ctx.ModeName())
	}
	return b
}

// deriveSeed computes tv_sec XOR tv_usec XOR gettid(), exactly as
// interflop_verrou.cxx's init() does when choose_seed is false.
func deriveSeed() uint64 {
	now := time.Now()
	sec := uint64(now.Unix())
	usec := uint64(now.Nanosecond() / 1000)
	return sec ^ usec ^ uint64(uint32(vr.Gettid()))
}
