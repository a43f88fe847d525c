/*
 * formula.go, part of gostoich.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gostoich is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package stoich

import "gonum.org/v1/gonum/floats"

// Formula is one term of a chemical equation: a chemical species (its atoms and its net
// charge) plus the coefficient that scales it in the equation. The coefficient
// is not part of the chemical identity, so it doesn't affect the molar mass.
type Formula struct {
	atoms       []*Element //one entry per atom, so "H_2O" has 3 entries.
	charge      int
	coefficient int
	molarMass   float64
	display     string //the formula text, without coefficient
}

// Atoms returns the atoms of one formula unit, one entry per atom, in the order in which they
// appear in the formula. The returned slice must not be modified.
func (F *Formula) Atoms() []*Element { return F.atoms }

// Len returns the number of atoms in one formula unit.
func (F *Formula) Len() int { return len(F.atoms) }

// Charge returns the net charge of one formula unit.
func (F *Formula) Charge() int { return F.charge }

// Coefficient returns the current coefficient of the formula.
func (F *Formula) Coefficient() int { return F.coefficient }

// SetCoefficient sets the coefficient of the formula to k, which must be positive.
func (F *Formula) SetCoefficient(k int) error {
	if k < 1 {
		return newError(ErrInvalidState, "Formula.SetCoefficient", "coefficient must be positive, got %d", k)
	}
	F.coefficient = k
	return nil
}

// MolarMass returns the molar mass of one formula unit in g/mol.
func (F *Formula) MolarMass() float64 { return F.molarMass }

// String returns the formula text without its coefficient, i.e. "SO_4^2-"
func (F *Formula) String() string { return F.display }

// Count returns how many atoms of the element with the given symbol there are in
// one formula unit.
func (F *Formula) Count(symbol string) int {
	n := 0
	for _, a := range F.atoms {
		if a.symbol == symbol {
			n++
		}
	}
	return n
}

// ElementCount is the number of atoms of one element in a formula unit.
type ElementCount struct {
	Element *Element
	Count   int
}

// Composition returns the number of atoms of each element in the formula, in order of
// first appearance.
func (F *Formula) Composition() []ElementCount {
	ret := make([]ElementCount, 0, 4)
	pos := make(map[int]int)
	for _, a := range F.atoms {
		i, ok := pos[a.number]
		if !ok {
			pos[a.number] = len(ret)
			ret = append(ret, ElementCount{Element: a, Count: 1})
			continue
		}
		ret[i].Count++
	}
	return ret
}

// MassFractions returns, for each element in Composition order, the fraction of the molar mass
// contributed by that element. The fractions add up to 1. It returns nil for a formula without mass.
func (F *Formula) MassFractions() []float64 {
	if F.molarMass == 0 {
		return nil
	}
	comp := F.Composition()
	fr := make([]float64, len(comp))
	for i, c := range comp {
		fr[i] = float64(c.Count) * c.Element.mass
	}
	floats.Scale(1/F.molarMass, fr)
	return fr
}

// MassFraction returns the fraction of the molar mass due to the element with the
// given symbol, or 0 if the element is not in the formula.
func (F *Formula) MassFraction(symbol string) float64 {
	if F.molarMass == 0 {
		return 0
	}
	var m float64
	for _, a := range F.atoms {
		if a.symbol == symbol {
			m += a.mass
		}
	}
	return m / F.molarMass
}

// ValenceElectrons returns the number of valence electrons of one formula unit, that is,
// the valence electrons of all its atoms minus the net charge.
func (F *Formula) ValenceElectrons() int {
	v := 0
	for _, a := range F.atoms {
		v += a.valence
	}
	return v - F.charge
}

// computeMass sets the molar mass from the atoms.
func (F *Formula) computeMass() {
	F.molarMass = 0
	for _, a := range F.atoms {
		F.molarMass += a.mass
	}
}
