/*
 * equation.go, part of gostoich.
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

package stoich

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxCoefficient is the largest coefficient Balance tries for each formula, unless
// changed with SetMaxCoefficient.
const DefaultMaxCoefficient = 20

// ctxCheckEvery is the number of coefficient tuples BalanceContext tests between
// checks of its context.
const ctxCheckEvery = 1024

// Equation is a chemical equation: two ordered lists of formulas, the reactants
// and the products. The equation owns its formulas, and it is not safe to use
// one Equation from several goroutines at the same time.
type Equation struct {
	reactants []*Formula
	products  []*Formula
	max       int
}

// NewEquation returns an empty equation.
func NewEquation() *Equation {
	return &Equation{max: DefaultMaxCoefficient}
}

// AddReactant appends F to the left side of the equation.
func (E *Equation) AddReactant(F *Formula) { E.reactants = append(E.reactants, F) }

// AddProduct appends F to the right side of the equation.
func (E *Equation) AddProduct(F *Formula) { E.products = append(E.products, F) }

// Reactants returns the formulas on the left side.
func (E *Equation) Reactants() []*Formula { return E.reactants }

// Products returns the formulas on the right side.
func (E *Equation) Products() []*Formula { return E.products }

// Len returns the total number of formulas in the equation.
func (E *Equation) Len() int { return len(E.reactants) + len(E.products) }

// Clear removes all the formulas from the equation.
func (E *Equation) Clear() {
	E.reactants = nil
	E.products = nil
}

// MaxCoefficient returns the largest coefficient Balance will try.
func (E *Equation) MaxCoefficient() int {
	if E.max < 1 {
		return DefaultMaxCoefficient
	}
	return E.max
}

// SetMaxCoefficient sets the largest coefficient Balance will try. The search
// tests up to n^N coefficient tuples for N formulas, so this is the knob that bounds
// the worst-case time of Balance.
func (E *Equation) SetMaxCoefficient(n int) error {
	if n < 1 {
		return newError(ErrInvalidState, "Equation.SetMaxCoefficient", "max coefficient must be positive, got %d", n)
	}
	E.max = n
	return nil
}

// formulas returns both sides in a single slice, reactants first.
func (E *Equation) formulas() []*Formula {
	all := make([]*Formula, 0, E.Len())
	all = append(all, E.reactants...)
	return append(all, E.products...)
}

// sideTotals adds, for each formula, coefficient*atoms to the total of each element (indexed by atomic number)
// and returns the coefficient-weighted total charge.
func sideTotals(formulas []*Formula, totals *[MaxAtomicNumber + 1]int) int {
	charge := 0
	for _, F := range formulas {
		for _, a := range F.atoms {
			totals[a.number] += F.coefficient
		}
		charge += F.coefficient * F.charge
	}
	return charge
}

// IsBalanced returns true if, with the current coefficients, each element has the same
// number of atoms on both sides and the total charges of both sides are equal.
// The check is done from scratch on each call. An empty equation is balanced.
func (E *Equation) IsBalanced() bool {
	var left, right [MaxAtomicNumber + 1]int
	lcharge := sideTotals(E.reactants, &left)
	rcharge := sideTotals(E.products, &right)
	if lcharge != rcharge {
		return false
	}
	return left == right
}

// Balance looks for coefficients that balance the equation. See BalanceContext.
func (E *Equation) Balance() error {
	return E.BalanceContext(context.Background())
}

// BalanceContext looks for coefficients that balance the equation. If the equation is
// already balanced, it does nothing. Otherwise, every coefficient is set to 1, and all the
// tuples of coefficients in 1..MaxCoefficient() are tried, in lexicographic order (the first reactant
// is the most significant, the last product changes fastest). The first tuple that balances the
// equation is kept. This is not necessarily the smallest solution.
//
// This is a brute-force search: it tests up to MaxCoefficient()^N tuples, N being the number of
// formulas, each test costing O(atoms). It is fine for the 4 or 5 terms of a typical textbook
// equation. For larger ones, see BalanceLinear, or lower the max coefficient.
//
// If no tuple balances the equation, the coefficients are left at the last tuple tested and
// ErrUnbalanceable is returned. If ctx is done before the search ends, the coefficients are left
// at the last tuple tested and ctx.Err() is returned. Either way, IsBalanced will return false.
func (E *Equation) BalanceContext(ctx context.Context) error {
	if E.IsBalanced() {
		return nil
	}
	all := E.formulas()
	for _, F := range all {
		F.coefficient = 1
	}
	given := E.String()
	maxc := E.MaxCoefficient()
	for tested := 1; ; tested++ {
		if E.IsBalanced() {
			return nil
		}
		if tested%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if !nextTuple(all, maxc) {
			break
		}
	}
	return newError(ErrUnbalanceable, "Equation.Balance", "no coefficients up to %d balance %s", maxc, given)
}

// nextTuple advances the coefficients of formulas as an odometer with digits 1..maxc,
// the last formula being the fastest digit. It returns false, leaving the coefficients
// untouched, if they are already at the last tuple.
func nextTuple(formulas []*Formula, maxc int) bool {
	i := len(formulas) - 1
	for i >= 0 && formulas[i].coefficient >= maxc {
		i--
	}
	if i < 0 {
		return false
	}
	formulas[i].coefficient++
	for j := i + 1; j < len(formulas); j++ {
		formulas[j].coefficient = 1
	}
	return true
}

func writeSide(sb *strings.Builder, side []*Formula) {
	for i, F := range side {
		if i > 0 {
			sb.WriteString(" + ")
		}
		if F.coefficient != 1 {
			sb.WriteString(strconv.Itoa(F.coefficient))
		}
		sb.WriteString(F.display)
	}
}

// String renders the equation with its current coefficients, as in
// "2H_2 + O_2 = 2H_2O". Coefficients equal to 1 are omitted.
func (E *Equation) String() string {
	var sb strings.Builder
	writeSide(&sb, E.reactants)
	sb.WriteString(" = ")
	writeSide(&sb, E.products)
	return sb.String()
}

// Report returns whether the equation is balanced, followed by the equation in a new line.
func (E *Equation) Report() string {
	verdict := "not balanced"
	if E.IsBalanced() {
		verdict = "balanced"
	}
	return fmt.Sprintf("Equation is %s\n%s", verdict, E.String())
}
