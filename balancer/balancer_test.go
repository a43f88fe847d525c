/*
 * balancer_test.go, part of gostoich.
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

package balancer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stoich "github.com/rmera/gostoich"
)

func parse(t *testing.T, text string) *stoich.Equation {
	E, err := stoich.ParseEquation(text)
	require.NoError(t, err)
	return E
}

func TestBalance(t *testing.T) {
	tests := []struct {
		name     string
		solver   string
		equation string
		expected string
		used     string
	}{
		{"search", Search, "H_2 + O_2 = H_2O", "2H_2 + O_2 = 2H_2O", Search},
		{"linear", Linear, "Fe + O_2 = Fe_2O_3", "4Fe + 3O_2 = 2Fe_2O_3", Linear},
		{"linear with charges", Linear, "Fe^3+ + Cu = Fe^2+ + Cu^2+", "2Fe^3+ + Cu = 2Fe^2+ + Cu^2+", Linear},
		{"linear falls back to search", Linear, "H_2 + O_2 = H_2O + H_2O_2", "3H_2 + 2O_2 = 2H_2O + H_2O_2", Search},
	}
	p := New(Config{Workers: 2, Timeout: 5 * time.Second})
	defer p.Stop()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := p.BalanceWith(context.Background(), parse(t, tt.equation), tt.solver)
			require.NoError(t, err)
			assert.True(t, res.Balanced)
			assert.Equal(t, tt.used, res.Solver)
			assert.Equal(t, tt.expected, res.Equation.String())
		})
	}
}

func TestBalanceErrors(t *testing.T) {
	p := New(Config{MaxCoefficient: 4})
	defer p.Stop()

	res, err := p.Balance(context.Background(), parse(t, "H_2 = O_2"))
	assert.ErrorIs(t, err, stoich.ErrUnbalanceable)
	require.NotNil(t, res)
	assert.False(t, res.Balanced)
	assert.Equal(t, "4H_2 = 4O_2", res.Equation.String())

	_, err = p.BalanceWith(context.Background(), parse(t, "H_2 = H_2"), "guess")
	assert.Error(t, err)
}

func TestTimeout(t *testing.T) {
	p := New(Config{Timeout: time.Millisecond, MaxCoefficient: 5000})
	defer p.Stop()
	res, err := p.Balance(context.Background(), parse(t, "H_2 = O_2"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	require.NotNil(t, res)
	assert.False(t, res.Balanced)
}

func TestBalanceAll(t *testing.T) {
	texts := []string{
		"H_2 + O_2 = H_2O",
		"CH_4 + O_2 = CO_2 + H_2O",
		"Na + Cl_2 = NaCl",
		"Fe + O_2 = Fe_2O_3",
	}
	expected := []string{
		"2H_2 + O_2 = 2H_2O",
		"CH_4 + 2O_2 = CO_2 + 2H_2O",
		"2Na + Cl_2 = 2NaCl",
		"4Fe + 3O_2 = 2Fe_2O_3",
	}
	var eqs []*stoich.Equation
	for _, text := range texts {
		eqs = append(eqs, parse(t, text))
	}
	p := New(Config{Workers: 3, Timeout: 5 * time.Second})
	defer p.Stop()
	results, err := p.BalanceAll(context.Background(), eqs)
	require.NoError(t, err)
	require.Len(t, results, len(eqs))
	for i, res := range results {
		assert.Same(t, eqs[i], res.Equation)
		assert.Equal(t, expected[i], res.Equation.String())
	}

	eqs = append(eqs, parse(t, "Cu^2+ = Cu"))
	results, err = p.BalanceAll(context.Background(), eqs)
	assert.ErrorIs(t, err, stoich.ErrUnbalanceable)
	require.Len(t, results, len(eqs))
	assert.True(t, results[0].Balanced)
	assert.False(t, results[len(results)-1].Balanced)
}
