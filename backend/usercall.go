package backend

import (
	"errors"

	"github.com/edf-hpc/verrou-go/vr"
)

// CallID identifies a user_call request; INEXACT is the only one
// currently defined (spec.md §6).
type CallID int

const (
	InexactID CallID = iota
)

// UserCall implements the host vtable's user_call entry. INEXACT always
// perturbs its argument by one ulp with a 50/50 direction draw, regardless
// of the Backend's currently selected rounding mode — an open question in
// spec.md §9 that is preserved verbatim rather than resolved toward
// mode-consistency. An unrecognized id returns an error the caller is
// expected to log and ignore (spec.md §7c), not a panic.
func (b *Backend) UserCall(id CallID, target any) error {
	switch id {
	case InexactID:
		bit := rngBitForInexact(b.Ctx)
		switch p := target.(type) {
		case *float32:
			if bit {
				*p = vr.NextAfter(*p)
			} else {
				*p = vr.NextPrev(*p)
			}
			return nil
		case *float64:
			if bit {
				*p = vr.NextAfter(*p)
			} else {
				*p = vr.NextPrev(*p)
			}
			return nil
		default:
			return errors.New("backend: user_call INEXACT target must be *float32 or *float64")
		}
	default:
		return errors.New("backend: unknown user_call id")
	}
}

// rngBitForInexact draws the ulp-direction bit from the thread-local
// generator the same way the non-deterministic rounding modes do,
// deliberately bypassing Ctx.RoundingMode entirely.
func rngBitForInexact(ctx *vr.Context) bool {
	return vr.RandomBitForUserCall(ctx)
}
