package formulary

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"

	"github.com/sky-flux/formulary/particles"
)

var (
	elementaryCharge   = float64(constant.ElementaryCharge)
	vacuumPermittivity = float64(constant.ElectricConstant)
)

// ChargeStates overrides the charge numbers of the two species of a
// Buchsbaum frequency calculation. Each field is either a unit.Dimless
// charge number or a unit.Charge; nil uses the species' own charge number.
type ChargeStates struct {
	Z1 unit.Uniter // nil → charge number of particle1
	Z2 unit.Uniter // nil → charge number of particle2
}

// Aliases for discoverability under the usual plasma-physics symbols.
var (
	OmegaBB = BuchsbaumFrequency
	OmegaII = BuchsbaumFrequency
	OmegaBI = BuchsbaumFrequency

	OmegaC  = Gyrofrequency
	OmegaP  = PlasmaFrequency
	OmegaUH = UpperHybridFrequency
	OmegaLH = LowerHybridFrequency
)

// gyro computes ω_c = Z·e·B/m.
func gyro(b, z, m float64) float64 {
	return z * elementaryCharge * b / m
}

// plasma computes ω_p = |Z|·e·sqrt(n/(ε₀·m)).
func plasma(n, z, m float64) float64 {
	return math.Abs(z) * elementaryCharge * math.Sqrt(n/(vacuumPermittivity*m))
}

// buchsbaum computes ω_BB = sqrt((ω_p1²·ω_c2² + ω_p2²·ω_c1²) / (ω_p1² + ω_p2²)).
// Both plasma frequencies zero gives 0/0 = NaN.
func buchsbaum(wp1, wp2, wc1, wc2 float64) float64 {
	wp1sq, wp2sq := wp1*wp1, wp2*wp2
	return math.Sqrt((wp1sq*wc2*wc2 + wp2sq*wc1*wc1) / (wp1sq + wp2sq))
}

// resolve parses a species symbol. Species without charge information
// ("He", "D") are taken as singly charged.
func resolve(symbol string) (particles.Particle, error) {
	p, err := particles.Parse(symbol)
	if err != nil {
		return particles.Particle{}, err
	}
	if !p.ChargeKnown() {
		return p.Ion(1)
	}
	return p, nil
}

// chargeOf returns the charge number of p, or the override z when non-nil.
func chargeOf(p particles.Particle, z unit.Uniter) (float64, error) {
	if z == nil {
		return float64(p.ChargeNumber), nil
	}
	return chargeNumber(z)
}

// Gyrofrequency returns the cyclotron frequency of particle in the magnetic
// field b, ω_c = Z·e·B/m. With signed false the magnitude is returned;
// with signed true negatively charged particles give a negative frequency.
// z optionally overrides the particle's charge number (see ChargeStates).
func Gyrofrequency(b unit.Uniter, particle string, signed bool, z unit.Uniter) (AngularFrequency, error) {
	tesla, err := fieldStrength(b)
	if err != nil {
		return 0, err
	}
	p, err := resolve(particle)
	if err != nil {
		return 0, err
	}
	zn, err := chargeOf(p, z)
	if err != nil {
		return 0, err
	}
	w := gyro(tesla, zn, float64(p.Mass))
	if !signed {
		w = math.Abs(w)
	}
	return AngularFrequency(w), nil
}

// PlasmaFrequency returns the plasma frequency of particle at number
// density n, ω_p = |Z|·e·sqrt(n/(ε₀·m)). zMean optionally overrides the
// particle's charge number.
func PlasmaFrequency(n unit.Uniter, particle string, zMean unit.Uniter) (AngularFrequency, error) {
	density, err := numberDensity(n)
	if err != nil {
		return 0, err
	}
	p, err := resolve(particle)
	if err != nil {
		return 0, err
	}
	zn, err := chargeOf(p, zMean)
	if err != nil {
		return 0, err
	}
	return AngularFrequency(plasma(density, zn, float64(p.Mass))), nil
}

// BuchsbaumFrequency returns the Buchsbaum frequency, also called the bi-ion
// or ion-ion hybrid frequency, of a magnetized plasma with two ion species:
//
//	ω_BB² = (ω_p1²·ω_c2² + ω_p2²·ω_c1²) / (ω_p1² + ω_p2²)
//
// At this frequency the perpendicular cold-plasma dielectric coefficient
// vanishes. ω_c are the unsigned gyrofrequencies in the field b, using the
// charge states z when given; ω_p are the plasma frequencies at densities
// n1 and n2 with the species' own charge numbers.
//
// Species without charge information are assumed singly charged. When both
// densities are zero the result is NaN.
//
// Aliases: OmegaBB, OmegaII, OmegaBI.
func BuchsbaumFrequency(b, n1, n2 unit.Uniter, particle1, particle2 string, z ChargeStates) (AngularFrequency, error) {
	if _, err := fieldStrength(b); err != nil {
		return 0, err
	}
	if _, err := numberDensity(n1); err != nil {
		return 0, fmt.Errorf("n1: %w", err)
	}
	if _, err := numberDensity(n2); err != nil {
		return 0, fmt.Errorf("n2: %w", err)
	}
	wc1, err := Gyrofrequency(b, particle1, false, z.Z1)
	if err != nil {
		return 0, fmt.Errorf("species 1: %w", err)
	}
	wc2, err := Gyrofrequency(b, particle2, false, z.Z2)
	if err != nil {
		return 0, fmt.Errorf("species 2: %w", err)
	}
	wp1, err := PlasmaFrequency(n1, particle1, nil)
	if err != nil {
		return 0, fmt.Errorf("species 1: %w", err)
	}
	wp2, err := PlasmaFrequency(n2, particle2, nil)
	if err != nil {
		return 0, fmt.Errorf("species 2: %w", err)
	}
	return AngularFrequency(buchsbaum(float64(wp1), float64(wp2), float64(wc1), float64(wc2))), nil
}

// UpperHybridFrequency returns sqrt(ω_pe² + ω_ce²) for electron density ne
// in the field b.
func UpperHybridFrequency(b, ne unit.Uniter) (AngularFrequency, error) {
	wce, err := Gyrofrequency(b, "e-", false, nil)
	if err != nil {
		return 0, err
	}
	wpe, err := PlasmaFrequency(ne, "e-", nil)
	if err != nil {
		return 0, err
	}
	return AngularFrequency(math.Hypot(float64(wpe), float64(wce))), nil
}

// LowerHybridFrequency returns (1/(ω_ci·ω_ce) + 1/ω_pi²)^(-1/2) for ion
// density ni of species ion in the field b.
func LowerHybridFrequency(b, ni unit.Uniter, ion string) (AngularFrequency, error) {
	wci, err := Gyrofrequency(b, ion, false, nil)
	if err != nil {
		return 0, err
	}
	wpi, err := PlasmaFrequency(ni, ion, nil)
	if err != nil {
		return 0, err
	}
	wce, err := Gyrofrequency(b, "e-", false, nil)
	if err != nil {
		return 0, err
	}
	ci, ce, pi := float64(wci), float64(wce), float64(wpi)
	return AngularFrequency(1 / math.Sqrt(1/(ci*ce)+1/(pi*pi))), nil
}
