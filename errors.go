package formulary

import (
	"errors"

	"github.com/sky-flux/formulary/particles"
)

// Sentinel errors for the formulary package.
// Use errors.Is to check: errors.Is(err, formulary.ErrUnitMismatch)
var (
	ErrUnitMismatch  = errors.New("formulary: unit mismatch")
	ErrShapeMismatch = errors.New("formulary: operands cannot be broadcast together")

	// Particle resolution errors are shared with the particles package.
	ErrUnknownParticle = particles.ErrUnknownParticle
	ErrInvalidCharge   = particles.ErrInvalidCharge
)
