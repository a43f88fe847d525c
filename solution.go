/*
 * solution.go, part of gostoich.
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

// Solution is a sample dissolved in some volume. Volume, molarity and the moles of the
// sample are kept consistent (moles = volume × molarity) by whichever of volume and
// molarity was set last. The solution owns its sample.
type Solution struct {
	sample   *Sample
	volume   float64 //liters
	molarity float64 //mol/L
}

// NewSolution returns a solution of the sample S with no volume or molarity set.
func NewSolution(S *Sample) (*Solution, error) {
	if S == nil {
		return nil, newError(ErrInvalidState, "NewSolution", "nil sample")
	}
	return &Solution{sample: S}, nil
}

// Sample returns the solute.
func (L *Solution) Sample() *Sample { return L.sample }

// Volume returns the volume of the solution in liters.
func (L *Solution) Volume() float64 { return L.volume }

// Molarity returns the concentration of the solution in mol/L.
func (L *Solution) Molarity() float64 { return L.molarity }

// SetVolume sets the volume, in liters. If the sample is empty and a molarity is known,
// the moles of the sample are derived from the volume and the molarity. If the sample is
// not empty, the molarity is derived from the moles and the volume instead, and a zero
// volume returns ErrDivisionByZero without changing the solution.
func (L *Solution) SetVolume(v float64) error {
	if L.sample.IsEmpty() {
		L.volume = v
		if L.molarity > 0 {
			L.sample.SetMoles(v * L.molarity)
		}
		return nil
	}
	if v == 0 {
		return newError(ErrDivisionByZero, "Solution.SetVolume", "can't get the molarity of %s in 0 L", L.sample.formula)
	}
	L.volume = v
	L.molarity = L.sample.moles / v
	return nil
}

// SetMolarity sets the concentration, in mol/L. If the sample is empty and a volume is
// known, the moles of the sample are derived from the volume and the molarity. If the
// sample is not empty, the volume is derived from the moles and the molarity instead,
// and a zero molarity returns ErrDivisionByZero without changing the solution.
func (L *Solution) SetMolarity(c float64) error {
	if L.sample.IsEmpty() {
		L.molarity = c
		if L.volume > 0 {
			L.sample.SetMoles(L.volume * c)
		}
		return nil
	}
	if c == 0 {
		return newError(ErrDivisionByZero, "Solution.SetMolarity", "can't get the volume of a 0 M %s solution", L.sample.formula)
	}
	L.molarity = c
	L.volume = L.sample.moles / c
	return nil
}

// Clear sets volume and molarity to 0. The sample is not changed.
func (L *Solution) Clear() {
	L.volume = 0
	L.molarity = 0
}
