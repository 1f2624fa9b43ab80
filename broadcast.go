package formulary

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// broadcastLen returns the common length of the operands. Operands of
// length 1 stretch to any length; all others must agree.
func broadcastLen(lengths ...int) (int, error) {
	n := 1
	for _, l := range lengths {
		switch {
		case l == 0:
			return 0, fmt.Errorf("%w: empty operand", ErrShapeMismatch)
		case l == 1:
		case n == 1:
			n = l
		case l != n:
			return 0, fmt.Errorf("%w: lengths %v", ErrShapeMismatch, lengths)
		}
	}
	return n, nil
}

// at returns xs[i], or xs[0] for a broadcast operand.
func at(xs []float64, i int) float64 {
	if len(xs) == 1 {
		return xs[0]
	}
	return xs[i]
}

// BuchsbaumFrequencies evaluates BuchsbaumFrequency element-wise.
// b is in tesla and n1, n2 are in m^-3; operands of length 1 are
// broadcast against the others. The result is in rad/s.
func BuchsbaumFrequencies(b, n1, n2 []float64, particle1, particle2 string, z ChargeStates) ([]float64, error) {
	size, err := broadcastLen(len(b), len(n1), len(n2))
	if err != nil {
		return nil, err
	}

	p1, err := resolve(particle1)
	if err != nil {
		return nil, fmt.Errorf("species 1: %w", err)
	}
	p2, err := resolve(particle2)
	if err != nil {
		return nil, fmt.Errorf("species 2: %w", err)
	}
	z1, err := chargeOf(p1, z.Z1)
	if err != nil {
		return nil, fmt.Errorf("species 1: %w", err)
	}
	z2, err := chargeOf(p2, z.Z2)
	if err != nil {
		return nil, fmt.Errorf("species 2: %w", err)
	}
	m1, m2 := float64(p1.Mass), float64(p2.Mass)
	q1, q2 := float64(p1.ChargeNumber), float64(p2.ChargeNumber)

	out := make([]float64, size)
	for i := range out {
		bi := at(b, i)
		wc1 := math.Abs(gyro(bi, z1, m1))
		wc2 := math.Abs(gyro(bi, z2, m2))
		wp1 := plasma(at(n1, i), q1, m1)
		wp2 := plasma(at(n2, i), q2, m2)
		out[i] = buchsbaum(wp1, wp2, wc1, wc2)
	}
	return out, nil
}

// Hertz converts angular frequencies in rad/s to ordinary frequencies in
// Hz in place and returns ws.
func Hertz(ws []float64) []float64 {
	floats.Scale(1/(2*math.Pi), ws)
	return ws
}
