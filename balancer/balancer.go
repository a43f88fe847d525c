/*
 * balancer.go, part of gostoich.
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

//Package balancer balances equations on a bounded worker pool, with a
//time limit for each equation.
package balancer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	stoich "github.com/rmera/gostoich"
	"github.com/rmera/gostoich/internal/logger"
)

// Solvers
const (
	Search = "search"
	Linear = "linear"
)

// Config holds what the pool needs to know
type Config struct {
	Workers        int           // Equations balanced at the same time. Less than 1 means 1
	Timeout        time.Duration // Time allowed per equation. 0 means no limit
	Solver         string        // Search (default) or Linear
	MaxCoefficient int           // If > 0, replaces the bound of every equation balanced
}

// Result is the outcome of balancing one equation. The Equation is
// the one given, with the coefficients it was left with.
type Result struct {
	Equation *stoich.Equation
	Solver   string // the solver that produced the coefficients
	Balanced bool
	Elapsed  time.Duration
	Err      error
}

// Pool balances equations concurrently
type Pool struct {
	cfg  Config
	pool pond.ResultPool[*Result]
}

// New returns a pool ready to take equations. Call Stop when done with it.
func New(cfg Config) *Pool {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Solver == "" {
		cfg.Solver = Search
	}
	logger.Debug("Balancer pool initialized",
		zap.Int("workers", cfg.Workers),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("solver", cfg.Solver),
	)
	return &Pool{cfg: cfg, pool: pond.NewResultPool[*Result](cfg.Workers)}
}

// Balance balances E with the pool's solver, blocking until done, ctx is done, or the
// pool's timeout expires. A Result is returned even on failure, so the state of E can
// be reported.
func (p *Pool) Balance(ctx context.Context, E *stoich.Equation) (*Result, error) {
	return p.BalanceWith(ctx, E, p.cfg.Solver)
}

// BalanceWith is like Balance, but uses the given solver. An empty solver means the pool's.
func (p *Pool) BalanceWith(ctx context.Context, E *stoich.Equation, solver string) (*Result, error) {
	job, err := p.job(ctx, E, solver)
	if err != nil {
		return nil, err
	}
	res, err := p.pool.Submit(job).Wait()
	if err != nil {
		//the task panicked or the pool was stopped
		logger.Error(err, zap.String("equation", E.String()))
		return &Result{Equation: E, Solver: solver, Err: err}, err
	}
	return res, res.Err
}

// BalanceAll balances all the equations concurrently, up to the pool's number of workers.
// results[i] corresponds to eqs[i]. The error returned is the first one found, if any,
// but every equation is attempted.
func (p *Pool) BalanceAll(ctx context.Context, eqs []*stoich.Equation) ([]*Result, error) {
	group := p.pool.NewGroup()
	for _, E := range eqs {
		job, err := p.job(ctx, E, p.cfg.Solver)
		if err != nil {
			return nil, err
		}
		group.Submit(job)
	}
	results, err := group.Wait()
	if err != nil {
		return results, err
	}
	for _, res := range results {
		if res.Err != nil {
			return results, res.Err
		}
	}
	return results, nil
}

// job prepares E and returns the task that balances it. The timeout
// starts when the task does.
func (p *Pool) job(ctx context.Context, E *stoich.Equation, solver string) (func() *Result, error) {
	if solver == "" {
		solver = p.cfg.Solver
	}
	if solver != Search && solver != Linear {
		return nil, fmt.Errorf("balancer: unknown solver %q", solver)
	}
	if p.cfg.MaxCoefficient > 0 {
		if err := E.SetMaxCoefficient(p.cfg.MaxCoefficient); err != nil {
			return nil, err
		}
	}
	ctx = logger.WithFields(ctx, zap.String("equation", E.String()))
	return func() *Result {
		ctx := ctx
		if p.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, p.cfg.Timeout)
			defer cancel()
		}
		start := time.Now()
		used, err := solve(ctx, E, solver)
		res := &Result{Equation: E, Solver: used, Balanced: E.IsBalanced(), Elapsed: time.Since(start), Err: err}
		if err != nil {
			logger.WarnCtx(ctx, "Equation not balanced", zap.Error(err), zap.Duration("elapsed", res.Elapsed))
		} else {
			logger.DebugCtx(ctx, "Equation balanced", zap.String("result", E.String()), zap.String("solver", used), zap.Duration("elapsed", res.Elapsed))
		}
		return res
	}, nil
}

// Stop waits for the pending equations and stops the pool.
func (p *Pool) Stop() {
	p.pool.StopAndWait()
}

// solve balances E with solver. The linear solver falls back to the search
// when the equation doesn't have a single solution.
func solve(ctx context.Context, E *stoich.Equation, solver string) (string, error) {
	if solver == Linear {
		err := E.BalanceLinear()
		if !errors.Is(err, stoich.ErrUnbalanceable) {
			return Linear, err
		}
		logger.DebugCtx(ctx, "Linear solver failed, searching", zap.Error(err))
	}
	return Search, E.BalanceContext(ctx)
}
