/*
 * gyration_test.go, part of poreana.
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

	"gonum.org/v1/gonum/mat"
)

func TestGyrationRadius(Te *testing.T) {
	fmt.Println("Radius of gyration test!")
	//two equal masses a distance 1 apart: every atom sits 0.5 from the
	//centre of mass, so Rg is 0.5
	masses := []float64{2, 2}
	fn := GyrationRadius(masses)
	pos := mat.NewDense(2, 3, []float64{
		0, 0, 0,
		1, 0, 0,
	})
	com := [3]float64{0.5, 0, 0}
	if rg := fn(pos, com); math.Abs(rg-0.5) > 1e-12 {
		Te.Errorf("Rg %v, want 0.5", rg)
	}
	//a point particle has no extent
	single := GyrationRadius([]float64{1})
	pos1 := mat.NewDense(1, 3, []float64{3, 4, 5})
	if rg := single(pos1, [3]float64{3, 4, 5}); rg != 0 {
		Te.Errorf("single atom Rg %v, want 0", rg)
	}
}

func testWater() *Molecule {
	m := &Molecule{
		Name: "SOL",
		Atoms: []MolAtom{
			{Name: "OW", Mass: 15.999},
			{Name: "HW1", Mass: 1.008},
			{Name: "HW2", Mass: 1.008},
		},
	}
	if err := m.Check(); err != nil {
		panic(err.Error())
	}
	return m
}

func TestWeightedFinalize(Te *testing.T) {
	s := testSystem()
	b, _ := NewBins(s, 10)
	mol := testWater()
	d := NewDensity(s, b, 0.5, mol.Mass())
	w := NewGyration(s, b, 0.5, mol)
	pos := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0.1, 0, 0,
		0, 0.1, 0,
	})
	com := [3]float64{0.03, 0.03, 0}
	for f := 0; f < 3; f++ {
		d.Frame()
		w.Frame()
		d.Add(RegionIn, 0.3, 0)
		w.Add(RegionIn, 0.3, 0, pos, com)
	}
	if _, err := d.Finalize(); err != nil {
		Te.Fatal(err)
	}
	p, err := w.Finalize(d)
	if err != nil {
		Te.Fatal(err)
	}
	rg := GyrationRadius(mol.Masses())(pos, com)
	bin := b.In(0.3)
	if math.Abs(p.In.Value[bin]-rg) > 1e-12 {
		Te.Errorf("bin %d mean %v, want %v", bin, p.In.Value[bin], rg)
	}
	//bins nothing was observed in are undefined, not zero
	for i, v := range p.In.Value {
		if i == bin {
			continue
		}
		if !math.IsNaN(v) {
			Te.Errorf("empty bin %d holds %v, want NaN", i, v)
		}
	}
	if math.Abs(p.In.Mean()-rg) > 1e-12 {
		Te.Errorf("profile mean %v, want %v", p.In.Mean(), rg)
	}
}

func TestWeightedFinalizeEx(Te *testing.T) {
	s := testSystem()
	b, _ := NewBins(s, 10)
	mol := testWater()
	dir := Te.TempDir()
	densPath := filepath.Join(dir, "density.snp")
	gyrPath := filepath.Join(dir, "gyration.snp")
	d := NewDensity(s, b, 0.5, mol.Mass())
	w := NewGyration(s, b, 0.5, mol)
	pos := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0.1, 0, 0,
		0, 0.1, 0,
	})
	com := [3]float64{0.03, 0.03, 0}
	//reservoir observations, clear of the pore shadow, in two axial bins
	for f := 0; f < 3; f++ {
		d.Frame()
		w.Frame()
		d.Add(RegionEx, 3.0, 1.2)
		w.Add(RegionEx, 3.0, 1.2, pos, com)
		d.Add(RegionEx, 3.0, 4.7)
		w.Add(RegionEx, 3.0, 4.7, pos, com)
	}
	if err := d.Snapshot().Save(densPath); err != nil {
		Te.Fatal(err)
	}
	if err := w.Snapshot().Save(gyrPath); err != nil {
		Te.Fatal(err)
	}
	p, err := CalcGyration(gyrPath, densPath, RegionEx)
	if err != nil {
		Te.Fatal(err)
	}
	//the axial profile spans the reservoir length
	for _, dist := range p.Dist {
		if dist < 0 || dist > 5 {
			Te.Errorf("axial distance %v outside the reservoir", dist)
		}
	}
	rg := GyrationRadius(mol.Masses())(pos, com)
	for i, v := range p.Value {
		if i == b.Ex(1.2) || i == b.Ex(4.7) {
			if math.Abs(v-rg) > 1e-12 {
				Te.Errorf("bin %d mean %v, want %v", i, v, rg)
			}
			if v < 0 || v > 0.2 {
				Te.Errorf("bin %d mean %v out of range", i, v)
			}
			continue
		}
		if !math.IsNaN(v) {
			Te.Errorf("empty bin %d holds %v, want NaN", i, v)
		}
	}
	if mean := p.Mean(); math.Abs(mean-rg) > 1e-12 {
		Te.Errorf("profile mean %v, want %v", mean, rg)
	}
}

func TestWeightedFinalizeOrder(Te *testing.T) {
	s := testSystem()
	b, _ := NewBins(s, 10)
	mol := testWater()
	d := NewDensity(s, b, 0.5, mol.Mass())
	w := NewGyration(s, b, 0.5, mol)
	pos := mat.NewDense(3, 3, nil)
	d.Frame()
	w.Frame()
	w.Add(RegionIn, 0.3, 0, pos, [3]float64{})
	//the density was never finalized
	if _, err := w.Finalize(d); err == nil {
		Te.Error("finalizing against a non-finalized density should fail")
	}
}

func TestWeightedBinMismatch(Te *testing.T) {
	s := testSystem()
	b10, _ := NewBins(s, 10)
	b20, _ := NewBins(s, 20)
	mol := testWater()
	dir := Te.TempDir()
	densPath := filepath.Join(dir, "density.snp")
	gyrPath := filepath.Join(dir, "gyration.snp")

	d := NewDensity(s, b10, 0.5, mol.Mass())
	d.Frame()
	d.Add(RegionIn, 0.3, 0)
	if err := d.Snapshot().Save(densPath); err != nil {
		Te.Fatal(err)
	}
	w := NewGyration(s, b20, 0.5, mol)
	w.Frame()
	w.Add(RegionIn, 0.3, 0, mat.NewDense(3, 3, nil), [3]float64{})
	if err := w.Snapshot().Save(gyrPath); err != nil {
		Te.Fatal(err)
	}
	//differing discretizations must be a loud error
	if _, err := CalcGyration(gyrPath, densPath, RegionIn); err == nil {
		Te.Error("mismatched bin definitions should fail")
	}
}
