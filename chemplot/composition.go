/*
 * composition.go, part of gostoich.
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

//Package chemplot draws simple charts for formulas, using gonum/plot.
package chemplot

import (
	"fmt"

	stoich "github.com/rmera/gostoich"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const barWidth = 20

func basicBarPlot(title, ylabel string, symbols []string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Element"
	p.Y.Label.Text = ylabel
	p.Y.Min = 0
	p.NominalX(symbols...)
	p.Add(plotter.NewGrid())
	return p
}

//barPlot draws one bar per value, each with its own color, and saves the
//plot as plotname.png
func barPlot(title, ylabel, plotname string, symbols []string, values []float64) error {
	if len(values) == 0 {
		return fmt.Errorf("chemplot: nothing to plot for %q", title)
	}
	p := basicBarPlot(title, ylabel, symbols)
	for i, v := range values {
		//one bar chart per element, so each gets its own color.
		vals := make(plotter.Values, len(values))
		vals[i] = v
		bar, err := plotter.NewBarChart(vals, vg.Points(barWidth))
		if err != nil {
			return err
		}
		bar.LineStyle.Width = vg.Length(0)
		bar.Color = colors(i, len(values))
		p.Add(bar)
	}
	return p.Save(4*vg.Inch, 4*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

func symbols(comp []stoich.ElementCount) []string {
	ret := make([]string, 0, len(comp))
	for _, c := range comp {
		ret = append(ret, c.Element.Symbol())
	}
	return ret
}

//CompositionPlot plots the number of atoms of each element in F, and saves
//the plot to plotname.png
func CompositionPlot(F *stoich.Formula, title, plotname string) error {
	comp := F.Composition()
	counts := make([]float64, 0, len(comp))
	for _, c := range comp {
		counts = append(counts, float64(c.Count))
	}
	return barPlot(title, "Atoms", plotname, symbols(comp), counts)
}

//MassFractionPlot plots the fraction of the molar mass of F
//contributed by each element, and saves the plot to plotname.png
func MassFractionPlot(F *stoich.Formula, title, plotname string) error {
	fractions := F.MassFractions()
	if fractions == nil {
		return fmt.Errorf("chemplot: %s has no mass", F)
	}
	return barPlot(title, "Mass fraction", plotname, symbols(F.Composition()), fractions)
}
