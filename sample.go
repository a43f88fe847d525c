/*
 * sample.go, part of gostoich.
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

// Sample is an amount of a compound: a formula plus a mass and a number of moles
// kept consistent through the molar mass of the formula. Whichever of the two was
// set last determines the other.
type Sample struct {
	formula *Formula
	mass    float64 //grams
	moles   float64
}

// NewSample returns an empty sample of the compound F.
func NewSample(F *Formula) (*Sample, error) {
	if F == nil {
		return nil, newError(ErrInvalidState, "NewSample", "nil formula")
	}
	return &Sample{formula: F}, nil
}

// ParseSample parses text with Parse and returns an empty sample of the resulting formula.
func ParseSample(text string) (*Sample, error) {
	F, err := Parse(text)
	if err != nil {
		return nil, errDecorate(err, "ParseSample")
	}
	return NewSample(F)
}

// Formula returns the formula of the compound in the sample.
func (S *Sample) Formula() *Formula { return S.formula }

// MolarMass returns the molar mass of the compound, in g/mol.
func (S *Sample) MolarMass() float64 { return S.formula.molarMass }

// Mass returns the mass of the sample in grams.
func (S *Sample) Mass() float64 { return S.mass }

// Moles returns the amount of compound in the sample, in moles.
func (S *Sample) Moles() float64 { return S.moles }

// SetMass sets the mass of the sample, in grams, and derives the moles from it.
// It returns ErrDivisionByZero, without changing the sample, if the molar mass is 0.
func (S *Sample) SetMass(m float64) error {
	mm := S.MolarMass()
	if mm == 0 {
		return newError(ErrDivisionByZero, "Sample.SetMass", "compound %s has no molar mass", S.formula)
	}
	S.mass = m
	S.moles = m / mm
	return nil
}

// SetMoles sets the amount of compound in the sample, and derives the mass from it.
func (S *Sample) SetMoles(n float64) {
	S.moles = n
	S.mass = n * S.MolarMass()
}

// Clear sets mass and moles to 0.
func (S *Sample) Clear() {
	S.mass = 0
	S.moles = 0
}

// IsEmpty returns true if the mass of the sample is 0.
func (S *Sample) IsEmpty() bool { return S.mass == 0 }
