/*
 * element.go, part of gostoich.
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

import "fmt"

// MaxAtomicNumber is the largest atomic number a Table accepts.
const MaxAtomicNumber = 118

// Element contains the reference data for one chemical element. Elements are
// read-only after the table that holds them is built, so they are shared by pointer
// among all the formulas that contain them.
type Element struct {
	symbol  string
	name    string
	number  int
	mass    float64
	valence int
}

func newElement(number int, name, symbol string, mass float64) *Element {
	return &Element{
		symbol:  symbol,
		name:    name,
		number:  number,
		mass:    mass,
		valence: valenceElectrons(number),
	}
}

// valenceElectrons uses the simplified octet rule: the first shell holds up to 2
// electrons, every other shell is assumed to hold 8.
func valenceElectrons(number int) int {
	if number <= 2 {
		return number
	}
	v := (number - 2) % 8
	if v == 0 {
		v = 8
	}
	return v
}

// Symbol returns the atomic symbol, i.e. "Na"
func (E *Element) Symbol() string { return E.symbol }

// Name returns the element name, i.e. "Sodium"
func (E *Element) Name() string { return E.name }

// Number returns the atomic number.
func (E *Element) Number() int { return E.number }

// Mass returns the atomic mass in g/mol (or amu).
func (E *Element) Mass() float64 { return E.mass }

// Valence returns the number of valence electrons.
func (E *Element) Valence() int { return E.valence }

func (E *Element) String() string {
	return fmt.Sprintf("%s (%s, Z=%d, %.4f g/mol)", E.symbol, E.name, E.number, E.mass)
}
