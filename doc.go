/*
 * doc.go, part of gostoich.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*Package stoich is the main package of the goStoich library. It parses chemical formulas,
resolves them against a periodic table, balances chemical equations and derives
stoichiometric quantities for a compound sample.



	**goStoich Capabilities**


    Built-in periodic table with the 118 elements, or tables read from CSV files,
	plain or compressed with gzip or zstandard.

    Parses formulas in the notation [coefficient]Symbol[_count]...[^charge], i.e.
	"H_2O", "2Na", "SO_4^2-", "Fe^3+".

    Balances equations, either with an exhaustive search over integer coefficients
	(which, for equations with more than one solution, returns the first one in
	lexicographic order) or with a null-space solver for equations with a unique
	solution.

    Keeps mass and moles of a sample, and volume, molarity and moles of a
	solution, consistent with each other.

    chemjson: JSON views of equations and samples, for external programs.

    chemplot: plots the mass composition of a formula.

    balancer: runs balance searches in a worker pool, with timeouts.


goStoich is a pure-computation library. Nothing in this package blocks or does I/O,
except for reading element tables. None of its types are safe for concurrent
modification; the Table returned by DefaultTable can be shared.

*/
package stoich
