/*
 * json.go, part of gostoich.
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

package chemjson

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"

	stoich "github.com/rmera/gostoich"
)

//An easily JSON-serializable error type,
type Error struct {
	deco          []string
	IsError       bool   //If this is false (no error) all the other fields will be at their zero-values.
	InRequest     bool   //If error, was it in parsing the request?
	InFormula     bool   //Was it in parsing a formula?
	InProcess     bool   //balancing or deriving quantities
	InPostProcess bool   //was it in preparing the output?
	Kind          string //the stoich.ErrorKind, if any
	Function      string //which go function gave the error
	Message       string //the error itself
}

//Error implements the error interface
func (J *Error) Error() string {
	return J.Message
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (J *Error) Decorate(dec string) []string {
	if dec == "" {
		return J.deco
	}
	J.deco = append(J.deco, dec)
	return J.deco
}

//Serializes the error. Panics on failure.
func (J *Error) Marshal() []byte {
	ret, err2 := json.Marshal(J)
	if err2 != nil {
		panic(strings.Join([]string{J.Error(), err2.Error()}, " - "))
	}
	return ret
}

//Takes an error and some additional info to create a json-marshal-ble error
func NewError(where, function string, err error) *Error {
	jerr := new(Error)
	jerr.IsError = true
	switch where {
	case "request":
		jerr.InRequest = true
	case "formula":
		jerr.InFormula = true
	case "postprocess":
		jerr.InPostProcess = true
	default:
		jerr.InProcess = true
	}
	var kind stoich.ErrorKind
	if errors.As(err, &kind) {
		jerr.Kind = string(kind)
	}
	jerr.Function = function
	jerr.Message = err.Error()
	return jerr
}

//Request is what the calling program asks for. If Equation is not empty, the equation is balanced.
//If Formula is not empty, the quantities are derived for a sample of it. Zero quantities are
//taken as not given.
type Request struct {
	Equation       string
	Solver         string //"search" (default) or "linear"
	MaxCoefficient int    //0 means stoich.DefaultMaxCoefficient
	Formula        string
	Mass           float64
	Moles          float64
	Volume         float64
	Molarity       float64
}

//A ready-to-serialize container for one term of an equation
type Term struct {
	Formula     string
	Coefficient int
	Charge      int
	MolarMass   float64
}

//EquationInfo is the result of balancing an equation.
type EquationInfo struct {
	Reactants      []Term
	Products       []Term
	Balanced       bool
	MaxCoefficient int
	Text           string
}

//SampleInfo contains the quantities derived for a compound sample, and
//its solution, if volume or molarity were given.
type SampleInfo struct {
	Formula          string
	MolarMass        float64
	Mass             float64
	Moles            float64
	Volume           float64
	Molarity         float64
	ValenceElectrons int
	Composition      map[string]int
}

//Response is sent back to the calling program, one per request.
type Response struct {
	Equation *EquationInfo `json:",omitempty"`
	Sample   *SampleInfo   `json:",omitempty"`
	Error    *Error        `json:",omitempty"`
}

func terms(side []*stoich.Formula) []Term {
	ret := make([]Term, 0, len(side))
	for _, F := range side {
		ret = append(ret, Term{Formula: F.String(), Coefficient: F.Coefficient(), Charge: F.Charge(), MolarMass: F.MolarMass()})
	}
	return ret
}

//NewEquationInfo collects the current state of E.
func NewEquationInfo(E *stoich.Equation) *EquationInfo {
	return &EquationInfo{
		Reactants:      terms(E.Reactants()),
		Products:       terms(E.Products()),
		Balanced:       E.IsBalanced(),
		MaxCoefficient: E.MaxCoefficient(),
		Text:           E.String(),
	}
}

//NewSampleInfo collects the current state of S and, if not nil, of the solution L.
func NewSampleInfo(S *stoich.Sample, L *stoich.Solution) *SampleInfo {
	F := S.Formula()
	info := &SampleInfo{
		Formula:          F.String(),
		MolarMass:        S.MolarMass(),
		Mass:             S.Mass(),
		Moles:            S.Moles(),
		ValenceElectrons: F.ValenceElectrons(),
		Composition:      make(map[string]int),
	}
	for _, c := range F.Composition() {
		info.Composition[c.Element.Symbol()] = c.Count
	}
	if L != nil {
		info.Volume = L.Volume()
		info.Molarity = L.Molarity()
	}
	return info
}

//Send Marshals the response and writes it to out, as a single line.
func (J *Response) Send(out io.Writer) *Error {
	enc := json.NewEncoder(out)
	if err := enc.Encode(J); err != nil {
		return NewError("postprocess", "Response.Send", err)
	}
	return nil
}

//DecodeRequest Decodes or unmarshals one line with a json request into a Request structure.
//It returns io.EOF, as is, when there are no more requests.
func DecodeRequest(stdin *bufio.Reader) (*Request, error) {
	line, err := stdin.ReadBytes('\n')
	if err == io.EOF && len(strings.TrimSpace(string(line))) == 0 {
		return nil, io.EOF
	}
	if err != nil && err != io.EOF {
		return nil, NewError("request", "DecodeRequest", err)
	}
	ret := new(Request)
	if err := json.Unmarshal(line, ret); err != nil {
		return nil, NewError("request", "DecodeRequest", err)
	}
	return ret, nil
}
