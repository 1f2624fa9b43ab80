// Package particles resolves particle species symbols to their physical
// properties: rest mass, charge number and category.
//
// Symbols follow the usual plasma-physics conventions:
//
//   - special particles: "e-", "electron", "e+", "p+", "proton", "n",
//     "alpha", "mu-", "D+", "T+"
//   - elements and isotopes: "He", "helium", "He-4", "D", "T", "Ar-40"
//   - charge suffixes: "He+", "He 2+", "He-4 +1", "Fe 13+", "Cl-"
//
// # Usage
//
//	p, err := particles.Parse("He-4 +1")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(p.Mass, p.ChargeNumber)
//
// Masses of ions are the neutral atomic mass less the mass of the removed
// electrons. Fully stripped hydrogen and helium isotopes use the CODATA
// nucleus masses (proton, deuteron, triton, helion, alpha).
//
// The species table is embedded in the binary and loaded on first use.
package particles
