/*
 * linear.go, part of gostoich.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	rankCond   = 1e-10 //relative cutoff for singular values
	intTol     = 1e-6  //how far from an integer a scaled coefficient can be
	scaleLimit = 10000 //largest multiplier tried to turn the null vector into integers
)

// CompositionMatrix returns the composition matrix of the equation. It has one column per
// formula (reactants first) and one row per element present, in order of first appearance,
// plus a last row for the charge if any formula is charged. Reactant entries are
// positive and product entries negative, so that the coefficient vector x balances the equation
// iff A·x = 0. It returns nil for an equation without atoms or charges.
func (E *Equation) CompositionMatrix() *mat.Dense {
	all := E.formulas()
	nreact := len(E.reactants)
	rowOf := make(map[int]int)
	var order []int
	charged := false
	for _, F := range all {
		for _, a := range F.atoms {
			if _, ok := rowOf[a.number]; !ok {
				rowOf[a.number] = len(order)
				order = append(order, a.number)
			}
		}
		if F.charge != 0 {
			charged = true
		}
	}
	rows := len(order)
	if charged {
		rows++
	}
	if rows == 0 || len(all) == 0 {
		return nil
	}
	A := mat.NewDense(rows, len(all), nil)
	for j, F := range all {
		sign := 1.0
		if j >= nreact {
			sign = -1.0
		}
		for _, a := range F.atoms {
			i := rowOf[a.number]
			A.Set(i, j, A.At(i, j)+sign)
		}
		if charged {
			A.Set(rows-1, j, sign*float64(F.charge))
		}
	}
	return A
}

// BalanceLinear balances the equation by solving A·x = 0 where A is the composition matrix
// (see CompositionMatrix). It works when the null space of A is one-dimensional,
// meaning that the equation has a unique solution up to scaling, and it then sets the
// coefficients to the smallest positive integer solution. Unlike Balance, its cost is
// polynomial in the number of formulas, and it is not bound by MaxCoefficient.
//
// If the null space has dimension 0 (no solution) or larger than 1 (several independent
// solutions), or if the solution needs a zero or negative coefficient, the coefficients are
// not changed and ErrUnbalanceable is returned. Balance can still find a solution in the
// latter case.
func (E *Equation) BalanceLinear() error {
	if E.IsBalanced() {
		return nil
	}
	A := E.CompositionMatrix()
	if A == nil {
		return newError(ErrUnbalanceable, "Equation.BalanceLinear", "nothing to balance in %s", E.String())
	}
	_, n := A.Dims()
	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDFull); !ok {
		return newError(ErrUnbalanceable, "Equation.BalanceLinear", "SVD failed for %s", E.String())
	}
	if nullity := n - svd.Rank(rankCond); nullity != 1 {
		return newError(ErrUnbalanceable, "Equation.BalanceLinear", "%s has %d independent solutions", E.String(), nullity)
	}
	var V mat.Dense
	svd.VTo(&V)
	x := mat.Col(nil, n-1, &V)
	coefs, ok := integerVector(x)
	if !ok {
		return newError(ErrUnbalanceable, "Equation.BalanceLinear", "%s has no all-positive solution", E.String())
	}
	all := E.formulas()
	prev := make([]int, len(all))
	for i, F := range all {
		prev[i] = F.coefficient
		F.coefficient = coefs[i]
	}
	if !E.IsBalanced() {
		//numerical trouble, shouldn't happen with small integer matrices.
		for i, F := range all {
			F.coefficient = prev[i]
		}
		return newError(ErrUnbalanceable, "Equation.BalanceLinear", "solution for %s didn't check", E.String())
	}
	return nil
}

// integerVector scales x, a null vector, to the smallest vector of positive integers
// parallel to it. It returns false if x has zero or mixed-sign components, or if no
// such vector is found with a multiplier up to scaleLimit.
func integerVector(x []float64) ([]int, bool) {
	minabs := math.Inf(1)
	for _, v := range x {
		if math.Abs(v) < minabs {
			minabs = math.Abs(v)
		}
	}
	if minabs < intTol {
		return nil, false
	}
	if x[0] < 0 {
		minabs = -minabs
	}
	y := make([]float64, len(x))
	copy(y, x)
	floats.Scale(1/minabs, y)
	if floats.Min(y) < 0 {
		return nil, false
	}
	ret := make([]int, len(y))
	for k := 1; k <= scaleLimit; k++ {
		good := true
		for i, v := range y {
			kv := float64(k) * v
			r := math.Round(kv)
			if math.Abs(kv-r) > intTol*float64(k) {
				good = false
				break
			}
			ret[i] = int(r)
		}
		if good {
			return ret, true
		}
	}
	return nil, false
}
