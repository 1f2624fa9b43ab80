// Package formulary computes characteristic frequencies of magnetized plasmas.
//
// formulary provides unit-aware functions built on gonum's unit package:
// the gyrofrequency and plasma frequency of a particle species, the upper and
// lower hybrid frequencies, and the Buchsbaum (ion-ion hybrid) frequency of a
// plasma with two ion species. Particle species are given as symbols and
// resolved by the formulary/particles subpackage.
//
// Basic usage:
//
//	w, err := formulary.BuchsbaumFrequency(
//	    unit.Tesla,
//	    1e18*formulary.PerCubicMetre, 1e18*formulary.PerCubicMetre,
//	    "p+", "D+",
//	    formulary.ChargeStates{},
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(w, w.Hertz())
//
// All functions are pure and safe for concurrent use.
package formulary
