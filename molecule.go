/*
 * molecule.go, part of poreana.
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
	"os"

	"gopkg.in/yaml.v3"
)

// MolAtom is one atom of the molecule descriptor.
type MolAtom struct {
	Name string  `yaml:"name"`
	Mass float64 `yaml:"mass"`
}

// Molecule describes the sampled species: the atoms of one molecule, in
// trajectory order, and the subset of them used for the centre of mass. The
// trajectory is assumed to contain an integer number of copies of the
// molecule, one after another.
type Molecule struct {
	Name  string    `yaml:"name"`
	Atoms []MolAtom `yaml:"atoms"`
	//Select restricts the centre of mass to the named atoms. Empty means
	//the whole molecule.
	Select []string `yaml:"select"`

	sel    []int
	masses []float64
}

// LoadMolecule reads a molecule descriptor from a YAML file and validates it.
func LoadMolecule(path string) (*Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CError{err.Error(), []string{"LoadMolecule"}}
	}
	defer f.Close()
	m := new(Molecule)
	if err := yaml.NewDecoder(f).Decode(m); err != nil {
		return nil, NewCError("LoadMolecule", "can't decode molecule file %s: %v", path, err)
	}
	if err := m.Check(); err != nil {
		return nil, errDecorate(err, "LoadMolecule")
	}
	return m, nil
}

// Check validates the descriptor and resolves the atom selection. It must be
// called before the molecule is used if the struct was built by hand.
func (m *Molecule) Check() error {
	if len(m.Atoms) == 0 {
		return NewCError("Molecule.Check", "molecule %q has no atoms", m.Name)
	}
	for _, a := range m.Atoms {
		if a.Mass <= 0 {
			return NewCError("Molecule.Check", "atom %q of molecule %q has no mass", a.Name, m.Name)
		}
	}
	names := m.Select
	if len(names) == 0 {
		m.sel = make([]int, len(m.Atoms))
		m.masses = make([]float64, len(m.Atoms))
		for i, a := range m.Atoms {
			m.sel[i] = i
			m.masses[i] = a.Mass
		}
		return nil
	}
	m.sel = m.sel[:0]
	m.masses = m.masses[:0]
	for _, n := range names {
		found := false
		for i, a := range m.Atoms {
			if a.Name == n {
				m.sel = append(m.sel, i)
				m.masses = append(m.masses, a.Mass)
				found = true
				break
			}
		}
		if !found {
			return NewCError("Molecule.Check", "selected atom %q not in molecule %q", n, m.Name)
		}
	}
	//a single selected atom is treated as a point, its mass is irrelevant
	if len(m.sel) == 1 {
		m.masses[0] = 1
	}
	return nil
}

// Len returns the number of atoms in one molecule.
func (m *Molecule) Len() int {
	return len(m.Atoms)
}

// Selection returns the atom offsets, within one molecule, entering the
// centre of mass.
func (m *Molecule) Selection() []int {
	return m.sel
}

// Masses returns the masses matching Selection.
func (m *Molecule) Masses() []float64 {
	return m.masses
}

// Mass returns the total mass of the whole molecule.
func (m *Molecule) Mass() float64 {
	t := 0.0
	for _, a := range m.Atoms {
		t += a.Mass
	}
	return t
}

// Residues returns how many copies of the molecule a frame of natoms atoms
// holds, or an error if the frame doesn't divide evenly.
func (m *Molecule) Residues(natoms int) (int, error) {
	if natoms%len(m.Atoms) != 0 {
		return 0, NewCError("Molecule.Residues", "%d atoms per frame is inconsistent with a %d-atom molecule", natoms, len(m.Atoms))
	}
	return natoms / len(m.Atoms), nil
}
