package particles

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed species.yaml
var speciesYAML []byte

// specialEntry is a particle with fixed mass and charge.
type specialEntry struct {
	Symbol       string   `yaml:"symbol"`
	Aliases      []string `yaml:"aliases"`
	Mass         float64  `yaml:"mass"` // kg
	Charge       int      `yaml:"charge"`
	Category     Category `yaml:"category"`
	AtomicNumber int      `yaml:"atomic_number"`
	MassNumber   int      `yaml:"mass_number"`
}

type elementEntry struct {
	Symbol       string  `yaml:"symbol"`
	Name         string  `yaml:"name"`
	AtomicNumber int     `yaml:"atomic_number"`
	Weight       float64 `yaml:"weight"` // u
}

type isotopeEntry struct {
	Symbol     string   `yaml:"symbol"`
	MassNumber int      `yaml:"mass_number"`
	Mass       float64  `yaml:"mass"` // u
	Aliases    []string `yaml:"aliases"`
	Nucleus    string   `yaml:"nucleus"`

	element *elementEntry
}

type speciesFile struct {
	Particles []specialEntry `yaml:"particles"`
	Elements  []elementEntry `yaml:"elements"`
	Isotopes  []isotopeEntry `yaml:"isotopes"`
}

// table indexes a speciesFile by every accepted spelling.
// Symbols are case-sensitive ("n" is the neutron, "N" nitrogen); names and
// word aliases are stored lower-case.
type table struct {
	special  map[string]*specialEntry
	elements map[string]*elementEntry
	isotopes map[string]*isotopeEntry

	electronMass float64
}

var loadTable = sync.OnceValues(func() (*table, error) {
	return parseTable(speciesYAML)
})

// parseTable decodes, validates and indexes a species document.
func parseTable(data []byte) (*table, error) {
	var f speciesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if err := validateTable(&f); err != nil {
		return nil, err
	}
	return indexTable(&f)
}

// validateTable checks every entry for physically meaningful values.
func validateTable(f *speciesFile) error {
	for i, p := range f.Particles {
		if p.Symbol == "" {
			return fmt.Errorf("%w: particles[%d] has no symbol", ErrInvalidTable, i)
		}
		if p.Mass <= 0 {
			return fmt.Errorf("%w: %s mass = %g, must be positive", ErrInvalidTable, p.Symbol, p.Mass)
		}
		if !p.Category.IsValid() {
			return fmt.Errorf("%w: %s has no category", ErrInvalidTable, p.Symbol)
		}
	}
	for i, e := range f.Elements {
		if e.Symbol == "" {
			return fmt.Errorf("%w: elements[%d] has no symbol", ErrInvalidTable, i)
		}
		if e.AtomicNumber < 1 || e.AtomicNumber > 118 {
			return fmt.Errorf("%w: %s atomic number = %d, bounds [1, 118]",
				ErrInvalidTable, e.Symbol, e.AtomicNumber)
		}
		if e.Weight <= 0 {
			return fmt.Errorf("%w: %s weight = %g, must be positive", ErrInvalidTable, e.Symbol, e.Weight)
		}
	}
	for i, iso := range f.Isotopes {
		if iso.Symbol == "" {
			return fmt.Errorf("%w: isotopes[%d] has no symbol", ErrInvalidTable, i)
		}
		if iso.Mass <= 0 {
			return fmt.Errorf("%w: %s mass = %g, must be positive", ErrInvalidTable, iso.Symbol, iso.Mass)
		}
		if iso.MassNumber < 1 {
			return fmt.Errorf("%w: %s mass number = %d, must be positive",
				ErrInvalidTable, iso.Symbol, iso.MassNumber)
		}
	}
	return nil
}

func indexTable(f *speciesFile) (*table, error) {
	t := &table{
		special:  make(map[string]*specialEntry),
		elements: make(map[string]*elementEntry),
		isotopes: make(map[string]*isotopeEntry),
	}

	// Every spelling must be unique across all three sections.
	seen := make(map[string]string)
	claim := func(key, owner string) error {
		if prev, ok := seen[key]; ok {
			return fmt.Errorf("%w: %q used by both %s and %s", ErrInvalidTable, key, prev, owner)
		}
		seen[key] = owner
		return nil
	}

	for i := range f.Particles {
		p := &f.Particles[i]
		for _, key := range append([]string{p.Symbol}, p.Aliases...) {
			if err := claim(key, p.Symbol); err != nil {
				return nil, err
			}
			t.special[key] = p
		}
		if p.Symbol == "e-" {
			t.electronMass = p.Mass
		}
	}
	if t.electronMass == 0 {
		return nil, fmt.Errorf("%w: no electron entry", ErrInvalidTable)
	}

	for i := range f.Elements {
		e := &f.Elements[i]
		keys := []string{e.Symbol}
		if e.Name != "" {
			keys = append(keys, strings.ToLower(e.Name))
		}
		for _, key := range keys {
			if err := claim(key, e.Symbol); err != nil {
				return nil, err
			}
			t.elements[key] = e
		}
	}

	for i := range f.Isotopes {
		iso := &f.Isotopes[i]
		elem, _, _ := strings.Cut(iso.Symbol, "-")
		e, ok := t.elements[elem]
		if !ok || e.Symbol != elem {
			return nil, fmt.Errorf("%w: isotope %s has no element %q", ErrInvalidTable, iso.Symbol, elem)
		}
		if iso.MassNumber < e.AtomicNumber {
			return nil, fmt.Errorf("%w: %s mass number %d below atomic number %d",
				ErrInvalidTable, iso.Symbol, iso.MassNumber, e.AtomicNumber)
		}
		if iso.Nucleus != "" {
			if _, ok := t.special[iso.Nucleus]; !ok {
				return nil, fmt.Errorf("%w: %s nucleus %q not in particles", ErrInvalidTable, iso.Symbol, iso.Nucleus)
			}
		}
		iso.element = e
		for _, key := range append([]string{iso.Symbol}, iso.Aliases...) {
			if err := claim(key, iso.Symbol); err != nil {
				return nil, err
			}
			t.isotopes[key] = iso
		}
	}
	return t, nil
}

// lookup finds the entry for a base symbol. Exactly one of the returned
// pointers is non-nil when ok is true.
func (t *table) lookup(symbol string) (s *specialEntry, e *elementEntry, iso *isotopeEntry, ok bool) {
	keys := []string{symbol}
	if lower := strings.ToLower(symbol); lower != symbol && len(symbol) > 2 {
		keys = append(keys, lower)
	}
	for _, key := range keys {
		if s, ok := t.special[key]; ok {
			return s, nil, nil, true
		}
		if iso, ok := t.isotopes[key]; ok {
			return nil, nil, iso, true
		}
		if e, ok := t.elements[key]; ok {
			return nil, e, nil, true
		}
	}
	return nil, nil, nil, false
}
