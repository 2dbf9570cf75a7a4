/*
 * plot_test.go, part of poreana.
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

package paplot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	poreana "github.com/marc310896/PoreAna"
)

func TestLineSegments(Te *testing.T) {
	nan := math.NaN()
	dist := []float64{0, 1, 2, 3, 4, 5}
	val := []float64{1, 2, nan, nan, 3, 4}
	segs := lineSegments(dist, val)
	if len(segs) != 2 {
		Te.Fatalf("want 2 segments, got %d", len(segs))
	}
	if len(segs[0]) != 2 || len(segs[1]) != 2 {
		Te.Errorf("wrong segment lengths: %d and %d", len(segs[0]), len(segs[1]))
	}
	if segs[1][0].X != 4 || segs[1][0].Y != 3 {
		Te.Errorf("second segment starts at (%v,%v), want (4,3)", segs[1][0].X, segs[1][0].Y)
	}
	//all undefined, nothing to draw
	if segs := lineSegments([]float64{0, 1}, []float64{nan, nan}); len(segs) != 0 {
		Te.Errorf("want no segments, got %d", len(segs))
	}
}

func TestProfilePlot(Te *testing.T) {
	prof := &poreana.Profile{
		Dist:  []float64{0, 0.5, 1, 1.5},
		Value: []float64{0.1, 0.12, math.NaN(), 0.11},
	}
	name := filepath.Join(Te.TempDir(), "gyration")
	if err := Profile(prof, "Radius of gyration", "Distance [nm]", "Rg [nm]", name); err != nil {
		Te.Fatal(err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		Te.Error("no figure was written")
	}
	if err := Profile(nil, "", "", "", name); err == nil {
		Te.Error("a nil profile should be refused")
	}
}
