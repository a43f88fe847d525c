/*
 * process.go, part of gostoich.
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
	"io"

	stoich "github.com/rmera/gostoich"
)

//BalanceFunc balances an equation in place, as asked in req. If req.MaxCoefficient is 0 the
//bound is up to the function. Its error, if any, is reported in the response,
//but the state of the equation is reported anyway.
type BalanceFunc func(E *stoich.Equation, req *Request) error

//Process carries out the request req, parsing formulas with T. It never returns nil.
//If both an equation and a formula are given, both are processed, and the
//response carries the first error found.
func Process(req *Request, T *stoich.Table, balance BalanceFunc) *Response {
	resp := new(Response)
	if req.Equation != "" {
		resp.Equation = processEquation(req, T, balance, resp)
	}
	if req.Formula != "" {
		resp.Sample = processSample(req, T, resp)
	}
	return resp
}

func processEquation(req *Request, T *stoich.Table, balance BalanceFunc, resp *Response) *EquationInfo {
	E, err := T.ParseEquation(req.Equation)
	if err != nil {
		resp.setError(NewError("formula", "Process", err))
		return nil
	}
	if req.MaxCoefficient != 0 {
		if err := E.SetMaxCoefficient(req.MaxCoefficient); err != nil {
			resp.setError(NewError("request", "Process", err))
			return nil
		}
	}
	if err := balance(E, req); err != nil {
		resp.setError(NewError("process", "Process", err))
	}
	return NewEquationInfo(E)
}

func processSample(req *Request, T *stoich.Table, resp *Response) *SampleInfo {
	F, err := T.Parse(req.Formula)
	if err != nil {
		resp.setError(NewError("formula", "Process", err))
		return nil
	}
	S, err := stoich.NewSample(F)
	if err != nil {
		resp.setError(NewError("process", "Process", err))
		return nil
	}
	L, err := stoich.NewSolution(S)
	if err != nil {
		resp.setError(NewError("process", "Process", err))
		return nil
	}
	if err := quantities(req, S, L); err != nil {
		resp.setError(NewError("process", "Process", err))
	}
	if req.Volume == 0 && req.Molarity == 0 {
		return NewSampleInfo(S, nil)
	}
	return NewSampleInfo(S, L)
}

//setError keeps the first error of the request.
func (J *Response) setError(err *Error) {
	if J.Error == nil {
		J.Error = err
	}
}

//quantities applies the given quantities in the order a user would fill them:
//mass or moles first, then volume and molarity.
func quantities(req *Request, S *stoich.Sample, L *stoich.Solution) error {
	switch {
	case req.Mass != 0:
		if err := S.SetMass(req.Mass); err != nil {
			return err
		}
	case req.Moles != 0:
		S.SetMoles(req.Moles)
	}
	if req.Volume != 0 {
		if err := L.SetVolume(req.Volume); err != nil {
			return err
		}
	}
	if req.Molarity != 0 {
		if err := L.SetMolarity(req.Molarity); err != nil {
			return err
		}
	}
	return nil
}

//Serve reads requests from in, one JSON object per line, and writes one response per
//request to out, until in is exhausted. Malformed requests get an error response.
func Serve(in io.Reader, out io.Writer, T *stoich.Table, balance BalanceFunc) error {
	stdin := bufio.NewReader(in)
	for {
		req, err := DecodeRequest(stdin)
		if err == io.EOF {
			return nil
		}
		var resp *Response
		if err != nil {
			resp = &Response{Error: err.(*Error)}
		} else {
			resp = Process(req, T, balance)
		}
		if jerr := resp.Send(out); jerr != nil {
			return jerr
		}
	}
}
