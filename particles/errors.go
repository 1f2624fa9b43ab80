package particles

import "errors"

// Sentinel errors for the particles package.
// Use errors.Is to check: errors.Is(err, particles.ErrUnknownParticle)
var (
	ErrUnknownParticle = errors.New("particles: particle not recognized")
	ErrInvalidCharge   = errors.New("particles: invalid charge number")
	ErrInvalidCategory = errors.New("particles: invalid category")
	ErrInvalidTable    = errors.New("particles: invalid species table")
)
