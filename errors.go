/*
 * errors.go, part of gostoich.
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
	"errors"
	"fmt"
	"strings"
)

// ErrorKind identifies the class of a failure. The kinds are constants, so they can be
// compared directly or used as targets for errors.Is.
type ErrorKind string

func (k ErrorKind) Error() string { return string(k) }

const (
	ErrInvalidFormula ErrorKind = "invalid formula"
	ErrUnknownElement ErrorKind = "unknown element"
	ErrUnbalanceable  ErrorKind = "equation can't be balanced"
	ErrDivisionByZero ErrorKind = "division by zero"
	ErrInvalidState   ErrorKind = "invalid state"
)

// CError is the error type returned by the stoich package. It fulfills Error, and
// unwraps to its ErrorKind.
type CError struct {
	msg  string
	kind ErrorKind
	deco []string
}

func newError(kind ErrorKind, caller, format string, args ...interface{}) *CError {
	return &CError{msg: fmt.Sprintf(format, args...), kind: kind, deco: []string{caller}}
}

// Error returns the error message, prefixed by its kind.
func (err *CError) Error() string {
	if err.msg == "" {
		return string(err.kind)
	}
	return fmt.Sprintf("%s: %s", err.kind, err.msg)
}

// Decorate will add the dec string to the decoration slice of strings of the error,
// and return the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Trail returns the decoration slice joined in calling order, innermost first.
func (err *CError) Trail() string {
	return strings.Join(err.deco, " <- ")
}

// Kind returns the class of the error.
func (err *CError) Kind() ErrorKind { return err.kind }

func (err *CError) Unwrap() error { return err.kind }

// errDecorate adds caller to the trail of err if err implements Error, and returns err
// unchanged otherwise.
func errDecorate(err error, caller string) error {
	var e Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}
