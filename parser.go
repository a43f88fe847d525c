/*
 * parser.go, part of gostoich.
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
	"regexp"
	"strconv"
	"strings"
)

// maxSubscript bounds the atom count after a "_", so a typo can't make us expand
// millions of atoms.
const maxSubscript = 10000

var (
	//optional coefficient, then symbol/subscript pairs, then optional charge.
	formulaRe = regexp.MustCompile(`^(\d+)?((?:[A-Z][a-z]?(?:_\d+)?)+)(?:\^([+-]|[+-]?\d+|\d+[+-]))?$`)
	symbolRe  = regexp.MustCompile(`([A-Z][a-z]?)(?:_(\d+))?`)
)

// Parse parses text into a Formula, using the built-in periodic table.
func Parse(text string) (*Formula, error) {
	return DefaultTable().Parse(text)
}

// Parse parses text into a Formula, resolving the atomic symbols against T.
// The syntax is [coefficient]Symbol[_count]...[^charge], where the charge can be
// "+", "-", or a number with its sign before or after it, so
// "H_2O", "2Na", "SO_4^2-", "Fe^3+" and "Fe^+3" are all valid. The whole text must match.
// It fails with ErrInvalidFormula if the text doesn't follow that syntax, and
// ErrUnknownElement if a symbol is not in T.
func (T *Table) Parse(text string) (*Formula, error) {
	text = strings.TrimSpace(text)
	m := formulaRe.FindStringSubmatch(text)
	if m == nil {
		return nil, newError(ErrInvalidFormula, "Parse", "%q", text)
	}
	F := &Formula{coefficient: 1}
	if m[1] != "" {
		k, err := strconv.Atoi(m[1])
		if err != nil || k < 1 {
			return nil, newError(ErrInvalidFormula, "Parse", "%q: bad coefficient %s", text, m[1])
		}
		F.coefficient = k
	}
	charge, err := parseCharge(m[3])
	if err != nil {
		return nil, newError(ErrInvalidFormula, "Parse", "%q: bad charge %s", text, m[3])
	}
	F.charge = charge
	for _, pair := range symbolRe.FindAllStringSubmatch(m[2], -1) {
		e, err := T.Lookup(pair[1])
		if err != nil {
			return nil, errDecorate(err, "Parse: "+text)
		}
		count := 1
		if pair[2] != "" {
			count, err = strconv.Atoi(pair[2])
			if err != nil || count > maxSubscript {
				return nil, newError(ErrInvalidFormula, "Parse", "%q: bad subscript %s", text, pair[2])
			}
		}
		for i := 0; i < count; i++ {
			F.atoms = append(F.atoms, e)
		}
	}
	F.display = strings.TrimPrefix(text, m[1])
	F.computeMass()
	return F, nil
}

// parseCharge turns the text after the "^" into a charge. A trailing sign is moved
// to the front, so "2-" and "-2" are the same.
func parseCharge(s string) (int, error) {
	switch s {
	case "":
		return 0, nil
	case "+":
		return 1, nil
	case "-":
		return -1, nil
	}
	if last := s[len(s)-1]; last == '+' || last == '-' {
		s = string(last) + s[:len(s)-1]
	}
	return strconv.Atoi(s)
}

// ParseEquation parses an equation of the form "A + B = C + D" with the built-in table.
func ParseEquation(text string) (*Equation, error) {
	return DefaultTable().ParseEquation(text)
}

// ParseEquation parses an equation of the form "A + B = C + D", where each term is a
// formula as accepted by Parse. Terms are separated by " + " (with the spaces, so a charge
// like "Fe^3+" is not taken as a separator), and the sides by a single "=".
// Coefficients in the text are kept as the initial coefficients of the formulas.
func (T *Table) ParseEquation(text string) (*Equation, error) {
	sides := strings.Split(text, "=")
	if len(sides) != 2 {
		return nil, newError(ErrInvalidFormula, "ParseEquation", "%q: an equation needs exactly one '='", text)
	}
	E := NewEquation()
	for i, side := range sides {
		side = strings.TrimSpace(side)
		if side == "" {
			return nil, newError(ErrInvalidFormula, "ParseEquation", "%q: empty side", text)
		}
		for _, term := range strings.Split(side, " + ") {
			F, err := T.Parse(term)
			if err != nil {
				return nil, errDecorate(err, "ParseEquation")
			}
			if i == 0 {
				E.AddReactant(F)
			} else {
				E.AddProduct(F)
			}
		}
	}
	return E, nil
}
