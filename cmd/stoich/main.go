/*
 * main.go, part of gostoich.
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

// Command stoich balances chemical equations and derives quantities for samples
// and solutions of compounds.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"go.uber.org/zap"

	stoich "github.com/rmera/gostoich"
	"github.com/rmera/gostoich/balancer"
	"github.com/rmera/gostoich/chemjson"
	"github.com/rmera/gostoich/chemplot"
	"github.com/rmera/gostoich/internal/config"
	"github.com/rmera/gostoich/internal/logger"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	jsonOut    = flag.Bool("json", false, "Print results as JSON")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `Usage: %s [flags] command [arguments]

Commands:
  balance "<equation>" ...        balance one or more equations, e.g. "H_2 + O_2 = H_2O"
  mass [quantities] "<formula>"   molar mass and derived quantities of a sample
  element <symbol>                data for one element
  plot "<formula>" <name>         composition charts, written to name.png and name_mass.png
  json                            serve JSON requests from stdin, one per line

Flags:
`, filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	command := flag.Arg(0)
	err = logger.Initialize(logger.Config{
		Debug:  cfg.Debug,
		Fields: map[string]string{"command": command},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := loadTable(cfg.ElementsFile)
	if err != nil {
		logger.Fatal("Failed to load the element table", zap.Error(err), zap.String("file", cfg.ElementsFile))
	}

	args := flag.Args()[1:]
	switch command {
	case "balance":
		err = balance(ctx, cfg, table, args)
	case "mass":
		err = mass(table, args)
	case "element":
		err = element(table, args)
	case "plot":
		err = plot(table, args)
	case "json":
		err = serve(ctx, cfg, table)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.ErrorCtx(ctx, err)
		logger.Sync()
		os.Exit(1)
	}
}

func loadTable(file string) (*stoich.Table, error) {
	if file == "" {
		return stoich.DefaultTable(), nil
	}
	return stoich.ReadTableFile(file, "")
}

func newPool(cfg *config.Config, maxCoefficient int) *balancer.Pool {
	return balancer.New(balancer.Config{
		Workers:        cfg.Balance.Workers,
		Timeout:        cfg.Balance.Timeout,
		Solver:         cfg.Balance.Solver,
		MaxCoefficient: maxCoefficient,
	})
}

func balance(ctx context.Context, cfg *config.Config, T *stoich.Table, args []string) error {
	if len(args) == 0 {
		return errors.New("balance: no equation given")
	}
	eqs := make([]*stoich.Equation, 0, len(args))
	for _, text := range args {
		E, err := T.ParseEquation(text)
		if err != nil {
			return err
		}
		eqs = append(eqs, E)
	}
	pool := newPool(cfg, cfg.Balance.MaxCoefficient)
	defer pool.Stop()
	results, err := pool.BalanceAll(ctx, eqs)
	if results == nil {
		return err
	}
	for _, res := range results {
		if *jsonOut {
			resp := &chemjson.Response{Equation: chemjson.NewEquationInfo(res.Equation)}
			if res.Err != nil {
				resp.Error = chemjson.NewError("process", "balance", res.Err)
			}
			if jerr := resp.Send(os.Stdout); jerr != nil {
				return jerr
			}
			continue
		}
		fmt.Printf("(Max Coefficient Checked: %d): %s\n", res.Equation.MaxCoefficient(), res.Equation.Report())
	}
	return err
}

func mass(T *stoich.Table, args []string) error {
	fs := flag.NewFlagSet("mass", flag.ContinueOnError)
	req := new(chemjson.Request)
	fs.Float64Var(&req.Mass, "grams", 0, "Mass of the sample, in grams")
	fs.Float64Var(&req.Moles, "moles", 0, "Amount of the sample, in moles")
	fs.Float64Var(&req.Volume, "liters", 0, "Volume of the solution, in liters")
	fs.Float64Var(&req.Molarity, "molarity", 0, "Concentration of the solution, in mol/L")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("mass: exactly one formula is needed")
	}
	if req.Mass != 0 && req.Moles != 0 {
		return errors.New("mass: give either -grams or -moles, not both")
	}
	req.Formula = fs.Arg(0)
	resp := chemjson.Process(req, T, nil)
	if *jsonOut {
		if jerr := resp.Send(os.Stdout); jerr != nil {
			return jerr
		}
		return nil
	}
	if resp.Error != nil {
		return resp.Error
	}
	S := resp.Sample
	fmt.Printf("%s\nMolar mass: %.3f g/mol\nValence electrons: %d\n", S.Formula, S.MolarMass, S.ValenceElectrons)
	if S.Mass != 0 || S.Moles != 0 {
		fmt.Printf("Mass: %g g\nMoles: %g mol\n", S.Mass, S.Moles)
	}
	if S.Volume != 0 || S.Molarity != 0 {
		fmt.Printf("Volume: %g L\nMolarity: %g mol/L\n", S.Volume, S.Molarity)
	}
	return nil
}

func element(T *stoich.Table, args []string) error {
	if len(args) != 1 {
		return errors.New("element: exactly one symbol is needed")
	}
	e, err := T.Lookup(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s)\nAtomic number: %d\nAtomic mass: %.3f\nValence electrons: %d\n", e.Name(), e.Symbol(), e.Number(), e.Mass(), e.Valence())
	return nil
}

func plot(T *stoich.Table, args []string) error {
	if len(args) != 2 {
		return errors.New("plot: a formula and a plot name are needed")
	}
	F, err := T.Parse(args[0])
	if err != nil {
		return err
	}
	if err := chemplot.CompositionPlot(F, F.String(), args[1]); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	if err := chemplot.MassFractionPlot(F, F.String(), args[1]+"_mass"); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	logger.Info("Plots written", zap.String("name", args[1]))
	return nil
}

func serve(ctx context.Context, cfg *config.Config, T *stoich.Table) error {
	pool := newPool(cfg, 0)
	defer pool.Stop()
	logger.InfoCtx(ctx, "Serving JSON requests from stdin")
	return chemjson.Serve(os.Stdin, os.Stdout, T, jsonBalance(ctx, pool, cfg.Balance.MaxCoefficient))
}

// jsonBalance balances requested equations on pool. Requests without their
// own bound get maxCoefficient.
func jsonBalance(ctx context.Context, pool *balancer.Pool, maxCoefficient int) chemjson.BalanceFunc {
	return func(E *stoich.Equation, req *chemjson.Request) error {
		if req.MaxCoefficient == 0 {
			if err := E.SetMaxCoefficient(maxCoefficient); err != nil {
				return err
			}
		}
		_, err := pool.BalanceWith(ctx, E, req.Solver)
		return err
	}
}
