/*
 * interfaces.go, part of gostoich.
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

// Masser is anything that can report the molar mass of one formula unit,
// in g/mol.
type Masser interface {
	MolarMass() float64
}

// Charger is anything with a net charge, in units of the elementary charge.
type Charger interface {
	Charge() int
}

// Term is one side-term of an equation: a chemical species that can be
// scaled by an integer coefficient.
type Term interface {
	Masser
	Charger
	Coefficient() int
	SetCoefficient(k int) error
	String() string
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	//Decorate adds the name of the calling function (plus, optionally, some information, in the format "FunctionName: Extra info")
	//to the error and returns the resulting trail. An empty string just returns the current trail.
	Decorate(string) []string
}
