package particles

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Category classifies a particle species. It is the category: field of the
// special-particle entries in species.yaml, decoded through UnmarshalText,
// and the category of every Particle returned by Parse and Ion.
type Category int

const (
	Lepton  Category = iota + 1 // Electrons, positrons, muons.
	Baryon                      // Free protons and neutrons.
	Nucleus                     // Fully stripped nucleus of an isotope.
	Ion                         // Partially ionized atom, or negative ion.
	Atom                        // Neutral atom, or atom with no charge information.
)

var (
	categoryNames  = [...]string{Lepton: "lepton", Baryon: "baryon", Nucleus: "nucleus", Ion: "ion", Atom: "atom"}
	categoryByName = map[string]Category{
		"lepton":  Lepton,
		"baryon":  Baryon,
		"nucleus": Nucleus,
		"ion":     Ion,
		"atom":    Atom,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = Category(0)
	_ json.Marshaler           = Category(0)
	_ json.Unmarshaler         = (*Category)(nil)
	_ encoding.TextMarshaler   = Category(0)
	_ encoding.TextUnmarshaler = (*Category)(nil)
)

// IsValid reports whether c is one of the defined categories.
func (c Category) IsValid() bool {
	return c >= Lepton && c <= Atom
}

// String returns the lower-case name of the category.
// For invalid values it returns "Category(n)".
func (c Category) String() string {
	if c.IsValid() {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCategory, int(c))
	}
	return []byte(categoryNames[c]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	v, ok := categoryByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, text)
	}
	*c = v
	return nil
}

// MarshalJSON implements json.Marshaler. Category serializes as a JSON string.
func (c Category) MarshalJSON() ([]byte, error) {
	text, err := c.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidCategory, data)
	}
	return c.UnmarshalText([]byte(s))
}
