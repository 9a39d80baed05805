// SPDX-License-Identifier: MIT

// Package catalog loads custom unit definitions from YAML into a
// unit.Registry.
//
//	units:
//	  - name: angstrom
//	    symbol: Å
//	    base: metre          # any unit expression known to the registry
//	    scale: -10           # power of ten relative to base
//	  - name: jerk
//	    symbol: jk
//	    dims: {length: 1, time: -3}
//	    display: true        # best-unit candidate
//	    prefixes: [m, k]     # also register mjk and kjk
//
// Entries are registered in order, so a later entry may use an earlier one as
// its base. Units registered before a failing entry stay registered.
package catalog
