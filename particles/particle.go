package particles

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/unit"
	"gonum.org/v1/gonum/unit/constant"
)

// Particle is a resolved particle species.
type Particle struct {
	Symbol       string    `json:"symbol"`
	Category     Category  `json:"category"`
	Mass         unit.Mass `json:"mass"` // kg
	ChargeNumber int       `json:"charge_number"`
	AtomicNumber int       `json:"atomic_number,omitempty"`
	MassNumber   int       `json:"mass_number,omitempty"` // zero for elements at natural abundance

	chargeKnown bool
	neutral     unit.Mass // mass of the neutral atom; zero for special particles
	base        string    // element or isotope symbol
	nucleus     string    // special particle for the fully stripped state
}

// symbolPattern splits "He-4 +1" into base "He-4" and charge "+1".
var symbolPattern = regexp.MustCompile(`^([A-Za-z]+(?:-[0-9]+)?)\s*([+-]+|[0-9]+[+-]|[+-][0-9]+)?$`)

// Parse resolves a particle symbol. It returns an error wrapping
// ErrUnknownParticle if the symbol is not recognized, or ErrInvalidCharge if
// the charge suffix is impossible for the species (e.g. "H 2+").
func Parse(symbol string) (Particle, error) {
	t, err := loadTable()
	if err != nil {
		return Particle{}, err
	}
	s := strings.TrimSpace(symbol)

	if sp, _, _, ok := t.lookup(s); ok && sp != nil {
		return fromSpecial(sp), nil
	}

	m := symbolPattern.FindStringSubmatch(s)
	if m == nil {
		return Particle{}, fmt.Errorf("%w: %q", ErrUnknownParticle, symbol)
	}
	base, suffix := m[1], m[2]

	sp, elem, iso, ok := t.lookup(base)
	if !ok {
		return Particle{}, fmt.Errorf("%w: %q", ErrUnknownParticle, symbol)
	}

	var p Particle
	switch {
	case sp != nil:
		p = fromSpecial(sp)
	case iso != nil:
		p = Particle{
			Symbol:       iso.Symbol,
			Category:     Atom,
			Mass:         unit.Mass(iso.Mass) * constant.AtomicMass,
			AtomicNumber: iso.element.AtomicNumber,
			MassNumber:   iso.MassNumber,
			base:         iso.Symbol,
			nucleus:      iso.Nucleus,
		}
		p.neutral = p.Mass
	default:
		p = Particle{
			Symbol:       elem.Symbol,
			Category:     Atom,
			Mass:         unit.Mass(elem.Weight) * constant.AtomicMass,
			AtomicNumber: elem.AtomicNumber,
			base:         elem.Symbol,
		}
		p.neutral = p.Mass
	}

	if suffix == "" {
		return p, nil
	}
	z, err := parseCharge(suffix)
	if err != nil {
		return Particle{}, fmt.Errorf("%w: %q", err, symbol)
	}
	return p.Ion(z)
}

// MustParse is like Parse but panics on error.
// Intended for package-level variables and tests.
func MustParse(symbol string) Particle {
	p, err := Parse(symbol)
	if err != nil {
		panic(err)
	}
	return p
}

func fromSpecial(sp *specialEntry) Particle {
	return Particle{
		Symbol:       sp.Symbol,
		Category:     sp.Category,
		Mass:         unit.Mass(sp.Mass),
		ChargeNumber: sp.Charge,
		AtomicNumber: sp.AtomicNumber,
		MassNumber:   sp.MassNumber,
		chargeKnown:  true,
	}
}

// parseCharge reads "+", "++", "-", "2+", "+2" and "-1" style suffixes.
func parseCharge(s string) (int, error) {
	if strings.Trim(s, "+") == "" {
		return len(s), nil
	}
	if strings.Trim(s, "-") == "" {
		return -len(s), nil
	}
	var digits string
	var sign int
	switch {
	case strings.HasSuffix(s, "+"):
		digits, sign = s[:len(s)-1], 1
	case strings.HasSuffix(s, "-"):
		digits, sign = s[:len(s)-1], -1
	case strings.HasPrefix(s, "+"):
		digits, sign = s[1:], 1
	default:
		digits, sign = s[1:], -1
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, ErrInvalidCharge
	}
	return sign * n, nil
}

// ChargeKnown reports whether the symbol carried charge information.
// Elements and isotopes given without a charge suffix ("He", "D") report false.
func (p Particle) ChargeKnown() bool {
	return p.chargeKnown
}

// Charge returns the particle charge, ChargeNumber times the elementary charge.
func (p Particle) Charge() unit.Charge {
	return unit.Charge(p.ChargeNumber) * constant.ElementaryCharge
}

// String returns the particle symbol.
func (p Particle) String() string {
	return p.Symbol
}

// Ion returns the species with charge number z. The mass of the removed
// (or added) electrons is subtracted from the neutral mass; the fully
// stripped states of hydrogen and helium isotopes are the CODATA nuclei.
//
// Particles without an atomic structure (electrons, free nucleons, nuclei
// given directly) only accept their own charge number.
func (p Particle) Ion(z int) (Particle, error) {
	if p.neutral == 0 {
		if z == p.ChargeNumber {
			return p, nil
		}
		return Particle{}, fmt.Errorf("%w: %s cannot carry charge number %d", ErrInvalidCharge, p.Symbol, z)
	}
	if z > p.AtomicNumber {
		return Particle{}, fmt.Errorf("%w: %s has only %d electrons to remove, got charge number %d",
			ErrInvalidCharge, p.base, p.AtomicNumber, z)
	}

	t, err := loadTable()
	if err != nil {
		return Particle{}, err
	}
	if z == p.AtomicNumber && p.nucleus != "" {
		return fromSpecial(t.special[p.nucleus]), nil
	}

	out := p
	out.ChargeNumber = z
	out.chargeKnown = true
	out.Mass = p.neutral - unit.Mass(float64(z)*t.electronMass)
	out.Symbol = ionSymbol(p.base, z)
	switch {
	case z == 0:
		out.Category = Atom
	case z == p.AtomicNumber:
		out.Category = Nucleus
	default:
		out.Category = Ion
	}
	return out, nil
}

func ionSymbol(base string, z int) string {
	switch {
	case z > 0:
		return fmt.Sprintf("%s %d+", base, z)
	case z < 0:
		return fmt.Sprintf("%s %d-", base, -z)
	default:
		return base + " 0+"
	}
}
