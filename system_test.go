/*
 * system_test.go, part of poreana.
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
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSystem(Te *testing.T) {
	y := `type: CYLINDER
box: [10, 10, 20]
reservoir: 5
diameter: 4
`
	path := filepath.Join(Te.TempDir(), "system.yaml")
	if err := os.WriteFile(path, []byte(y), 0644); err != nil {
		Te.Fatal(err)
	}
	s, err := LoadSystem(path)
	if err != nil {
		Te.Fatal(err)
	}
	if !s.Pore() || s.Diameter != 4 {
		Te.Errorf("wrong system: %+v", s)
	}
	//no focal point given, defaults to the box centre
	if s.Focal != [3]float64{5, 5, 10} {
		Te.Errorf("focal point %v, want the box centre", s.Focal)
	}
	//a reservoir longer than half the box leaves no pore
	bad := `type: CYLINDER
box: [10, 10, 20]
reservoir: 11
diameter: 4
`
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		Te.Fatal(err)
	}
	if _, err := LoadSystem(path); err == nil {
		Te.Error("inconsistent reservoir length should be refused")
	}
}

func TestAxialDist(Te *testing.T) {
	s := testSystem()
	//below the pore centre, distance to the z=0 box face
	if d := s.AxialDist(2); d != 2 {
		Te.Errorf("lower reservoir distance %v, want 2", d)
	}
	//above, to the other face, so both reservoirs fold onto one axis
	if d := s.AxialDist(18); d != 2 {
		Te.Errorf("upper reservoir distance %v, want 2", d)
	}
}

func TestGeometry(Te *testing.T) {
	s := testSystem()
	if l := s.PoreLength(0.5); l != 9 {
		Te.Errorf("pore length %v, want 9", l)
	}
	if a := s.Surface(0.5); math.Abs(a-math.Pi*4*9) > 1e-12 {
		Te.Errorf("wall area %v", a)
	}
	if v := s.ResVolume(); v != 1000 {
		Te.Errorf("reservoir volume %v, want 1000", v)
	}
	if d := s.RadialDist([3]float64{5, 5, 7}); d != 0 {
		Te.Errorf("axis distance %v, want 0", d)
	}
	if d := s.RadialDist([3]float64{8, 9, 7}); math.Abs(d-5) > 1e-12 {
		Te.Errorf("radial distance %v, want 5", d)
	}
}

func TestMoleculeSelection(Te *testing.T) {
	m := &Molecule{
		Name: "SOL",
		Atoms: []MolAtom{
			{Name: "OW", Mass: 15.999},
			{Name: "HW1", Mass: 1.008},
			{Name: "HW2", Mass: 1.008},
		},
		Select: []string{"OW"},
	}
	if err := m.Check(); err != nil {
		Te.Fatal(err)
	}
	if len(m.Selection()) != 1 || m.Selection()[0] != 0 {
		Te.Errorf("wrong selection: %v", m.Selection())
	}
	//a single selected atom is a point, its mass must not matter
	if m.Masses()[0] != 1 {
		Te.Errorf("single atom mass %v, want 1", m.Masses()[0])
	}
	//the whole molecule mass is untouched by the selection
	if math.Abs(m.Mass()-18.015) > 1e-12 {
		Te.Errorf("molecule mass %v, want 18.015", m.Mass())
	}
	m.Select = []string{"XX"}
	if err := m.Check(); err == nil {
		Te.Error("selecting an unknown atom should fail")
	}
	n, err := testWater().Residues(9)
	if err != nil || n != 3 {
		Te.Errorf("9 atoms hold %d molecules (%v), want 3", n, err)
	}
	if _, err := testWater().Residues(10); err == nil {
		Te.Error("10 atoms can't hold whole 3-atom molecules")
	}
}
