package formulary

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/unit"
)

func TestBroadcastLen(t *testing.T) {
	tests := []struct {
		lengths []int
		want    int
	}{
		{[]int{1, 1, 1}, 1},
		{[]int{4, 1, 1}, 4},
		{[]int{1, 4, 4}, 4},
		{[]int{3, 3, 3}, 3},
	}
	for _, tt := range tests {
		got, err := broadcastLen(tt.lengths...)
		if err != nil {
			t.Fatalf("broadcastLen(%v): %v", tt.lengths, err)
		}
		if got != tt.want {
			t.Errorf("broadcastLen(%v) = %d, want %d", tt.lengths, got, tt.want)
		}
	}
}

func TestBroadcastLenMismatch(t *testing.T) {
	for _, lengths := range [][]int{{2, 3, 1}, {0, 1, 1}, {1, 1, 0}, {4, 4, 2}} {
		if _, err := broadcastLen(lengths...); !errors.Is(err, ErrShapeMismatch) {
			t.Errorf("broadcastLen(%v): err = %v, want ErrShapeMismatch", lengths, err)
		}
	}
}

func TestBuchsbaumFrequenciesMatchesScalar(t *testing.T) {
	b := []float64{0.5, 1, 2}
	n1 := []float64{1e18}
	n2 := []float64{1e17, 1e18, 1e19}

	got, err := BuchsbaumFrequencies(b, n1, n2, "p+", "D+", ChargeStates{})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i := range got {
		want, err := BuchsbaumFrequency(
			unit.MagneticFluxDensity(b[i]),
			NumberDensity(n1[0]),
			NumberDensity(n2[i]),
			"p+", "D+", ChargeStates{},
		)
		if err != nil {
			t.Fatal(err)
		}
		assertRel(t, "ω_BB[i]", got[i], float64(want))
	}
}

func TestBuchsbaumFrequenciesChargeStates(t *testing.T) {
	z := ChargeStates{Z1: unit.Dimless(2)}
	got, err := BuchsbaumFrequencies([]float64{1}, []float64{1e18}, []float64{5e17}, "He-4 1+", "p+", z)
	if err != nil {
		t.Fatal(err)
	}
	want, err := BuchsbaumFrequency(unit.Tesla, 1e18*PerCubicMetre, 5e17*PerCubicMetre, "He-4 1+", "p+", z)
	if err != nil {
		t.Fatal(err)
	}
	assertRel(t, "ω_BB(Z1=2)", got[0], float64(want))
}

func TestBuchsbaumFrequenciesZeroDensities(t *testing.T) {
	got, err := BuchsbaumFrequencies([]float64{1}, []float64{0, 1e18}, []float64{0, 1e18}, "p+", "D+", ChargeStates{})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got[0]) {
		t.Errorf("ω_BB[0] = %v, want NaN", got[0])
	}
	if !(got[1] > 0) {
		t.Errorf("ω_BB[1] = %v, want positive", got[1])
	}
}

func TestBuchsbaumFrequenciesErrors(t *testing.T) {
	_, err := BuchsbaumFrequencies([]float64{1, 2}, []float64{1, 2, 3}, []float64{1}, "p+", "D+", ChargeStates{})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("err = %v, want ErrShapeMismatch", err)
	}
	_, err = BuchsbaumFrequencies([]float64{1}, []float64{1}, []float64{1}, "p+", "not-a-particle", ChargeStates{})
	if !errors.Is(err, ErrUnknownParticle) {
		t.Errorf("err = %v, want ErrUnknownParticle", err)
	}
	_, err = BuchsbaumFrequencies([]float64{1}, []float64{1}, []float64{1}, "p+", "D+", ChargeStates{Z2: unit.Tesla})
	if !errors.Is(err, ErrInvalidCharge) {
		t.Errorf("err = %v, want ErrInvalidCharge", err)
	}
}

func TestHertzSlice(t *testing.T) {
	ws := []float64{2 * math.Pi, 4 * math.Pi, 0}
	got := Hertz(ws)
	want := []float64{1, 2, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-15 {
			t.Errorf("Hertz[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if &got[0] != &ws[0] {
		t.Error("Hertz should convert in place")
	}
}
