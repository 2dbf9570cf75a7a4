/*
 * adsorption_test.go, part of poreana.
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

package poreana

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"
)

func TestUnits(Te *testing.T) {
	fmt.Println("Unit conversion test!")
	//10 molecules on 100 nm^2:
	//10/6.02214076e23 mol on 1e-16 m^2 is 1.66054e-7 mol/m^2
	got := MolsToMumolM2(10, 100)
	want := 10.0 / Avogadro / 1e-16 * 1e6
	if math.Abs(got-want) > 1e-12*want {
		Te.Errorf("surface concentration %v, want %v", got, want)
	}
	//pure water for scale: 33.37 molecules/nm^3 should come out near
	//55.5 mol/l
	got = MolsToMmolL(33.37, 1)
	if math.Abs(got-55420) > 100 {
		Te.Errorf("water density gives %v mmol/l, want about 55420", got)
	}
}

func TestCalcAdsorption(Te *testing.T) {
	s := testSystem()
	b, _ := NewBins(s, 10)
	d := NewDensity(s, b, 0.5, 18.015)
	const frames = 4
	const inMols = 6
	const exMols = 9
	for f := 0; f < frames; f++ {
		d.Frame()
		for m := 0; m < inMols; m++ {
			d.Add(RegionIn, 0.3, 0)
		}
		for m := 0; m < exMols; m++ {
			d.Add(RegionEx, 3.0, 1.0)
		}
	}
	path := filepath.Join(Te.TempDir(), "density.snp")
	if err := d.Snapshot().Save(path); err != nil {
		Te.Fatal(err)
	}
	t, err := CalcAdsorption(path)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Print(t)
	if len(t.Cols()) != 2 || t.Cols()[0] != ColConc || t.Cols()[1] != ColNum {
		Te.Errorf("wrong columns: %v", t.Cols())
	}
	if got := t.Get(RowIn, ColNum); got != inMols {
		Te.Errorf("pore occupancy %v, want %v", got, inMols)
	}
	if got := t.Get(RowEx, ColNum); got != exMols {
		Te.Errorf("reservoir occupancy %v, want %v", got, exMols)
	}
	//surface: pi * 4 nm * (20-10-2*0.5) nm wall over 6 molecules
	area := math.Pi * 4 * 9
	want := 6.0 / Avogadro / (area * 1e-18) * 1e6
	if got := t.Get(RowMumolM2, ColConc); math.Abs(got-want) > 1e-12*want {
		Te.Errorf("surface concentration %v, want %v", got, want)
	}
	//both reservoirs: 2 * 5 * 10 * 10 nm^3 over 9 molecules
	want = 9.0 / Avogadro / (1000 * 1e-24) * 1e3
	if got := t.Get(RowMmolL, ColConc); math.Abs(got-want) > 1e-12*want {
		Te.Errorf("volume concentration %v, want %v", got, want)
	}
	//a cell never set reads as undefined
	if !math.IsNaN(t.Get(RowMumolM2, ColNum)) {
		Te.Error("unset cell should be NaN")
	}
}

func TestCalcAdsorptionBox(Te *testing.T) {
	s := &System{Type: Box, Box: [3]float64{10, 10, 10}}
	if err := s.Check(); err != nil {
		Te.Fatal(err)
	}
	b, err := NewBins(s, 10)
	if err != nil {
		Te.Fatal(err)
	}
	//axial bins span the whole box length
	if b.ExWidth != 1 {
		Te.Errorf("axial width %v, want 1", b.ExWidth)
	}
	if b.InEdges() != nil {
		Te.Error("a plain box has no radial bins")
	}
	d := NewDensity(s, b, 0.5, 18.015)
	const frames = 4
	for f := 0; f < frames; f++ {
		d.Frame()
		d.Add(RegionEx, 0, 3.5)
	}
	path := filepath.Join(Te.TempDir(), "density.snp")
	if err := d.Snapshot().Save(path); err != nil {
		Te.Fatal(err)
	}
	p, err := CalcDensity(path)
	if err != nil {
		Te.Fatal(err)
	}
	if p.In != nil || p.NumIn != 0 {
		Te.Error("a plain box should have no pore partition")
	}
	//one molecule per frame in one slab of 10*10*1 nm^3
	if got := p.Ex[b.Ex(3.5)]; math.Abs(got-0.01) > 1e-12 {
		Te.Errorf("slab density %v, want 0.01", got)
	}
	t, err := CalcAdsorption(path)
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Print(t)
	//only the bulk concentration rows exist
	if !math.IsNaN(t.Get(RowMumolM2, ColConc)) || !math.IsNaN(t.Get(RowIn, ColNum)) {
		Te.Error("pore rows should be absent for a plain box")
	}
	if rows := t.Rows(); len(rows) != 2 {
		Te.Errorf("want 2 rows, got %v", rows)
	}
	want := 1.0 / Avogadro / (1000 * 1e-24) * 1e3
	if got := t.Get(RowMmolL, ColConc); math.Abs(got-want) > 1e-12*want {
		Te.Errorf("volume concentration %v, want %v", got, want)
	}
	if got := t.Get(RowEx, ColNum); got != 1 {
		Te.Errorf("mean occupancy %v, want 1", got)
	}
}
