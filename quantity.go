package formulary

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/unit"
)

// AngularFrequency represents an angular frequency in radians per second.
type AngularFrequency float64

// RadianPerSecond is the SI unit of angular frequency.
const RadianPerSecond AngularFrequency = 1

// Gauss is the CGS unit of magnetic flux density, 1e-4 T.
const Gauss unit.MagneticFluxDensity = 1e-4 * unit.Tesla

// NumberDensity represents a particle number density in m^-3.
type NumberDensity float64

// Number density units.
const (
	PerCubicMetre      NumberDensity = 1   // m^-3
	PerCubicCentimetre NumberDensity = 1e6 // cm^-3
)

// Compile-time interface checks.
var (
	_ unit.Uniter   = AngularFrequency(0)
	_ fmt.Formatter = AngularFrequency(0)
	_ unit.Uniter   = NumberDensity(0)
)

// Unit converts the AngularFrequency to a *unit.Unit with dimensions rad s^-1.
func (w AngularFrequency) Unit() *unit.Unit {
	return unit.New(float64(w), unit.Dimensions{
		unit.AngleDim: 1,
		unit.TimeDim:  -1,
	})
}

// From converts u into the receiver. From returns an error if u does not
// have dimensions of rad s^-1.
func (w *AngularFrequency) From(u unit.Uniter) error {
	if !unit.DimensionsMatch(u, RadianPerSecond) {
		*w = AngularFrequency(math.NaN())
		return fmt.Errorf("%w: %v is not convertible to rad s^-1", ErrUnitMismatch, u.Unit())
	}
	*w = AngularFrequency(u.Unit().Value())
	return nil
}

// Hertz returns the ordinary frequency w/2π.
func (w AngularFrequency) Hertz() unit.Frequency {
	return unit.Frequency(float64(w) / (2 * math.Pi))
}

// Format implements fmt.Formatter, printing the value followed by rad s^-1.
func (w AngularFrequency) Format(fs fmt.State, c rune) {
	switch c {
	case 'v':
		if fs.Flag('#') {
			fmt.Fprintf(fs, "%T(%v)", w, float64(w))
			return
		}
		fallthrough
	case 'e', 'E', 'f', 'F', 'g', 'G':
		p, pOk := fs.Precision()
		wd, wOk := fs.Width()
		switch {
		case pOk && wOk:
			fmt.Fprintf(fs, "%*.*"+string(c), wd, p, w.Unit())
		case pOk:
			fmt.Fprintf(fs, "%.*"+string(c), p, w.Unit())
		case wOk:
			fmt.Fprintf(fs, "%*"+string(c), wd, w.Unit())
		default:
			fmt.Fprintf(fs, "%"+string(c), w.Unit())
		}
	default:
		fmt.Fprintf(fs, "%%!%c(%T=%g rad s^-1)", c, w, float64(w))
	}
}

// Unit converts the NumberDensity to a *unit.Unit with dimensions m^-3.
func (n NumberDensity) Unit() *unit.Unit {
	return unit.New(float64(n), unit.Dimensions{
		unit.LengthDim: -3,
	})
}

// From converts u into the receiver. From returns an error if u does not
// have dimensions of m^-3.
func (n *NumberDensity) From(u unit.Uniter) error {
	if !unit.DimensionsMatch(u, PerCubicMetre) {
		*n = NumberDensity(math.NaN())
		return fmt.Errorf("%w: %v is not convertible to m^-3", ErrUnitMismatch, u.Unit())
	}
	*n = NumberDensity(u.Unit().Value())
	return nil
}

// fieldStrength returns b in tesla.
func fieldStrength(b unit.Uniter) (float64, error) {
	if b == nil {
		return 0, fmt.Errorf("%w: magnetic field is missing", ErrUnitMismatch)
	}
	var t unit.MagneticFluxDensity
	if err := t.From(b); err != nil {
		return 0, fmt.Errorf("%w: magnetic field %v is not convertible to T", ErrUnitMismatch, b.Unit())
	}
	return float64(t), nil
}

// numberDensity returns n in m^-3.
func numberDensity(n unit.Uniter) (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("%w: number density is missing", ErrUnitMismatch)
	}
	var d NumberDensity
	if err := d.From(n); err != nil {
		return 0, fmt.Errorf("number density: %w", err)
	}
	return float64(d), nil
}

// chargeNumber reads a charge state given either as a plain number
// (unit.Dimless) or as a charge in coulombs.
func chargeNumber(z unit.Uniter) (float64, error) {
	u := z.Unit()
	switch {
	case unit.DimensionsMatch(u, unit.Dimless(0)):
		return u.Value(), nil
	case unit.DimensionsMatch(u, unit.Coulomb):
		return u.Value() / elementaryCharge, nil
	}
	return 0, fmt.Errorf("%w: charge state %v is neither dimensionless nor a charge", ErrInvalidCharge, u)
}
