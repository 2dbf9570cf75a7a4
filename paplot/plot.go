/*
 * plot.go, part of poreana.
 *
 * Copyright 2023 Marc Hamilton <marc310896{at}gmxDOTde>
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

// Package paplot renders analysis profiles as line plots, using gonum/plot.
package paplot

import (
	"fmt"
	"image/color"
	"math"

	poreana "github.com/marc310896/PoreAna"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//Bins with no samples carry NaN, which would wreck the line. Instead each
//NaN splits the curve, so gaps in the profile stay visible in the figure.
func lineSegments(dist, val []float64) []plotter.XYs {
	var segs []plotter.XYs
	var cur plotter.XYs
	for i, v := range val {
		if math.IsNaN(v) {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: dist[i], Y: v})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}

func addSegments(p *plot.Plot, dist, val []float64, col color.RGBA) error {
	for _, seg := range lineSegments(dist, val) {
		l, err := plotter.NewLine(seg)
		if err != nil {
			return err
		}
		l.LineStyle.Color = col
		p.Add(l)
	}
	return nil
}

// Density plots a density profile, pore and reservoir side by side, and
// saves it as plotname.png.
func Density(prof *poreana.DensityProfile, title, plotname string) error {
	if prof == nil {
		return Error{"given nil profile", []string{"Density"}}
	}
	p := basicPlot(title, "Distance [nm]", "Density [mmol/l]")
	red := color.RGBA{R: 200, A: 255}
	blue := color.RGBA{B: 200, A: 255}
	if err := addSegments(p, prof.InDist, prof.In, red); err != nil {
		return Error{err.Error(), []string{"Density"}}
	}
	if err := addSegments(p, prof.ExDist, prof.Ex, blue); err != nil {
		return Error{err.Error(), []string{"Density"}}
	}
	if err := p.Save(14*vg.Centimeter, 10*vg.Centimeter, fmt.Sprintf("%s.png", plotname)); err != nil {
		return Error{err.Error(), []string{"Density"}}
	}
	return nil
}

// Profile plots a single binned observable profile and saves it as
// plotname.png.
func Profile(prof *poreana.Profile, title, xlabel, ylabel, plotname string) error {
	if prof == nil {
		return Error{"given nil profile", []string{"Profile"}}
	}
	p := basicPlot(title, xlabel, ylabel)
	if err := addSegments(p, prof.Dist, prof.Value, color.RGBA{R: 200, A: 255}); err != nil {
		return Error{err.Error(), []string{"Profile"}}
	}
	if err := p.Save(14*vg.Centimeter, 10*vg.Centimeter, fmt.Sprintf("%s.png", plotname)); err != nil {
		return Error{err.Error(), []string{"Profile"}}
	}
	return nil
}

// Error is the concrete error of this package. It fulfills poreana.Error.
type Error struct {
	message string
	deco    []string
}

func (err Error) Error() string {
	return fmt.Sprintf("paplot error: %s", err.message)
}

func (err Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}
