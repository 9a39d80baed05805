// SPDX-License-Identifier: MIT

// Package format renders quantities for humans.
//
// InUnit writes a quantity in a caller-chosen unit; InBestUnit picks the
// display unit of the quantity's dimension in which the magnitude reads
// between 1 and 1000:
//
//	format.InBestUnit(unit.Volt.Of(3))      // "3. V"
//	format.InBestUnit(unit.Volt.Of(0.003))  // "3. mV"
//	format.InBestUnit(unit.Kilogram.Of(70)) // "70. kg"
//
// Numbers follow numpy's repr: integral floats keep a trailing dot and
// arrays nest as "[a b]". Deferred payloads are described by their node and
// never evaluated by InBestUnit.
package format
