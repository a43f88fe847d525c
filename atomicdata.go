/*
 * atomicdata.go, part of gostoich.
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

import (
	_ "embed"
	"strings"
	"sync"
)

// The reference dataset: atomic number, name, symbol and standard atomic mass
// for the 118 known elements. For elements without stable isotopes the mass
// number of the longest-lived isotope is used.
//
//go:embed data/elements.csv
var elementsCSV string

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// DefaultTable returns the built-in periodic table. It is parsed the first time
// it is requested and never modified afterwards.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		T, err := ReadTable(strings.NewReader(elementsCSV))
		if err != nil {
			//the embedded data is broken, so the program is wrong.
			panic("stoich: corrupted built-in element table: " + err.Error())
		}
		defaultTable = T
	})
	return defaultTable
}

// Lookup returns the element with the given symbol from the built-in table.
func Lookup(symbol string) (*Element, error) {
	return DefaultTable().Lookup(symbol)
}
