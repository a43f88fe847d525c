/*
 * json_test.go, part of gostoich.
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

package chemjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	stoich "github.com/rmera/gostoich"
)

func searchBalance(E *stoich.Equation, req *Request) error {
	if req.Solver == "linear" {
		return E.BalanceLinear()
	}
	return E.Balance()
}

func TestServe(Te *testing.T) {
	in := strings.Join([]string{
		`{"Equation":"H_2 + O_2 = H_2O"}`,
		`{"Formula":"NaCl","Mass":58.44,"Volume":2}`,
		`{"Equation":"H_2 = O_2","MaxCoefficient":3}`,
		`{"Formula":"h_2o"}`,
		`this is not json`,
		`{"Equation":"CH_4 + O_2 = CO_2 + H_2O","Solver":"linear"}`,
	}, "\n")
	var out bytes.Buffer
	if err := Serve(strings.NewReader(in), &out, stoich.DefaultTable(), searchBalance); err != nil {
		Te.Fatal(err)
	}
	dec := json.NewDecoder(&out)
	var resps []Response
	for dec.More() {
		var r Response
		if err := dec.Decode(&r); err != nil {
			Te.Fatal(err)
		}
		resps = append(resps, r)
	}
	if len(resps) != 6 {
		Te.Fatalf("Expected 6 responses, got %d", len(resps))
	}
	if r := resps[0]; r.Error != nil || !r.Equation.Balanced || r.Equation.Text != "2H_2 + O_2 = 2H_2O" {
		Te.Errorf("Unexpected response %+v", r)
	}
	if r := resps[1]; r.Error != nil || r.Sample == nil || r.Sample.Composition["Na"] != 1 || r.Sample.Molarity == 0 {
		Te.Errorf("Unexpected response %+v", r)
	} else if m := r.Sample.Moles / r.Sample.Volume; m != r.Sample.Molarity {
		Te.Errorf("Molarity %f, expected %f", r.Sample.Molarity, m)
	}
	if r := resps[2]; r.Error == nil || r.Error.Kind != string(stoich.ErrUnbalanceable) || r.Equation == nil || r.Equation.Balanced {
		Te.Errorf("Unexpected response %+v", r)
	} else if r.Equation.Reactants[0].Coefficient != 3 {
		Te.Errorf("Coefficients should be left at the last tuple, got %d", r.Equation.Reactants[0].Coefficient)
	}
	if r := resps[3]; r.Error == nil || !r.Error.InFormula || r.Error.Kind != string(stoich.ErrInvalidFormula) {
		Te.Errorf("Unexpected response %+v", r)
	}
	if r := resps[4]; r.Error == nil || !r.Error.InRequest {
		Te.Errorf("Unexpected response %+v", r)
	}
	if r := resps[5]; r.Error != nil || r.Equation.Text != "CH_4 + 2O_2 = CO_2 + 2H_2O" {
		Te.Errorf("Unexpected response %+v", r)
	}
}

func TestProcessBothErrors(Te *testing.T) {
	req := &Request{Equation: "H_2 = O_2", MaxCoefficient: 2, Formula: "NotAFormula"}
	resp := Process(req, stoich.DefaultTable(), searchBalance)
	if resp.Error == nil || resp.Error.Kind != string(stoich.ErrUnbalanceable) {
		Te.Errorf("The first error, from the equation, should be kept, got %+v", resp.Error)
	}
	if resp.Equation == nil || resp.Equation.Text != "2H_2 = 2O_2" {
		Te.Errorf("Equation state not reported: %+v", resp.Equation)
	}
	if resp.Sample != nil {
		Te.Errorf("A bad formula shouldn't give a sample, got %+v", resp.Sample)
	}
	//a good formula is still processed after a failed equation
	req = &Request{Equation: "H_2 = O_2", MaxCoefficient: 2, Formula: "H_2O", Moles: 2}
	resp = Process(req, stoich.DefaultTable(), searchBalance)
	if resp.Error == nil || resp.Sample == nil || resp.Sample.Moles != 2 {
		Te.Errorf("Unexpected response %+v", resp)
	}
}

func TestProcessBound(Te *testing.T) {
	var got []int
	record := func(E *stoich.Equation, req *Request) error {
		got = append(got, req.MaxCoefficient)
		return E.Balance()
	}
	for _, bound := range []int{0, stoich.DefaultMaxCoefficient, 7} {
		resp := Process(&Request{Equation: "H_2 + O_2 = H_2O", MaxCoefficient: bound}, stoich.DefaultTable(), record)
		if resp.Error != nil {
			Te.Fatal(resp.Error)
		}
		want := bound
		if want == 0 {
			want = stoich.DefaultMaxCoefficient
		}
		if resp.Equation.MaxCoefficient != want {
			Te.Errorf("Bound %d, expected %d", resp.Equation.MaxCoefficient, want)
		}
	}
	if len(got) != 3 || got[0] != 0 || got[1] != stoich.DefaultMaxCoefficient || got[2] != 7 {
		Te.Errorf("The balance function should see the bound as requested, got %v", got)
	}
}

func TestDecodeRequest(Te *testing.T) {
	r := bufio.NewReader(strings.NewReader(`{"Formula":"Fe^3+","Moles":2}`))
	req, err := DecodeRequest(r)
	if err != nil {
		Te.Fatal(err)
	}
	if req.Formula != "Fe^3+" || req.Moles != 2 {
		Te.Errorf("Bad request %+v", req)
	}
	jerr := NewError("process", "TestDecodeRequest", stoich.ErrDivisionByZero)
	if !jerr.InProcess || jerr.Kind != string(stoich.ErrDivisionByZero) {
		Te.Errorf("Bad error %+v", jerr)
	}
	if len(jerr.Marshal()) == 0 {
		Te.Error("Empty marshaled error")
	}
	if d := jerr.Decorate("caller"); len(d) != 1 || d[0] != "caller" {
		Te.Errorf("Bad decoration %v", d)
	}
}
