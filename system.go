/*
 * system.go, part of poreana.
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

	"gopkg.in/yaml.v3"
)

// Region indicates where a molecule centre of mass sits relative to the pore.
type Region string

// The entry margins on both sides of the pore belong to neither region and
// are not sampled.
const (
	RegionIn   Region = "in" //inside the pore
	RegionEx   Region = "ex" //in a bulk reservoir
	RegionNone Region = ""
)

// System types.
const (
	Cylinder = "CYLINDER" //cylindrical pore with a reservoir on each side
	Box      = "BOX"      //plain simulation box, no pore
)

// System is the immutable description of the sampled pore system: a
// cylindrical pore drilled along z through a solid block, with a bulk
// reservoir of length Res on each side, or a plain simulation box. Box is
// the full box including both reservoirs. All lengths in nm.
type System struct {
	Type     string     `yaml:"type" json:"type"`
	Box      [3]float64 `yaml:"box" json:"box"`
	Res      float64    `yaml:"reservoir" json:"reservoir"`
	Diameter float64    `yaml:"diameter" json:"diameter"`
	Focal    [3]float64 `yaml:"focal" json:"focal"` //a point on the pore axis
}

// LoadSystem reads a system description from a YAML file and validates it.
func LoadSystem(path string) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CError{err.Error(), []string{"LoadSystem"}}
	}
	defer f.Close()
	s := new(System)
	if err := yaml.NewDecoder(f).Decode(s); err != nil {
		return nil, NewCError("LoadSystem", "can't decode system file %s: %v", path, err)
	}
	if err := s.Check(); err != nil {
		return nil, errDecorate(err, "LoadSystem")
	}
	return s, nil
}

// Check validates the system description. For cylinders with a zero focal
// point, the focal point defaults to the box centre.
func (s *System) Check() error {
	for i, v := range s.Box {
		if v <= 0 {
			return NewCError("System.Check", "box dimension %d not positive: %v", i, v)
		}
	}
	switch s.Type {
	case Cylinder:
		if s.Diameter <= 0 {
			return NewCError("System.Check", "pore diameter not positive: %v", s.Diameter)
		}
		if s.Res <= 0 || 2*s.Res >= s.Box[2] {
			return NewCError("System.Check", "reservoir length %v inconsistent with box length %v", s.Res, s.Box[2])
		}
		if s.Focal == ([3]float64{}) {
			s.Focal = [3]float64{s.Box[0] / 2, s.Box[1] / 2, s.Box[2] / 2}
		}
	case Box:
		if s.Diameter != 0 || s.Res != 0 {
			return NewCError("System.Check", "box systems take no pore diameter or reservoir length")
		}
	default:
		return NewCError("System.Check", "unknown system type %q", s.Type)
	}
	return nil
}

// Pore returns whether the system contains a pore.
func (s *System) Pore() bool {
	return s.Type == Cylinder
}

// RadialDist returns the distance of a point to the pore axis. It is zero
// for box systems.
func (s *System) RadialDist(com [3]float64) float64 {
	if !s.Pore() {
		return 0
	}
	dx := com[0] - s.Focal[0]
	dy := com[1] - s.Focal[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// AxialDist returns the distance of a z coordinate to the outer end of the
// reservoir it sits in. Both reservoirs fold onto the same axis, so the
// distance grows towards the pore mouth.
func (s *System) AxialDist(z float64) float64 {
	if s.Pore() && z >= s.Focal[2] {
		return math.Abs(z - s.Box[2])
	}
	return z
}

// ClassifyRegion places a (wrapped) centre of mass z coordinate inside the
// pore, in a reservoir, or in the unsampled entry margin. entry is the
// margin removed from both pore mouths. Box systems are all reservoir.
func (s *System) ClassifyRegion(z, entry float64) Region {
	if !s.Pore() {
		return RegionEx
	}
	switch {
	case z > s.Res+entry && z < s.Box[2]-s.Res-entry:
		return RegionIn
	case z <= s.Res || z > s.Box[2]-s.Res:
		return RegionEx
	}
	return RegionNone
}

// PoreLength returns the sampled pore length, with the entry margin removed
// from both sides.
func (s *System) PoreLength(entry float64) float64 {
	return s.Box[2] - 2*s.Res - 2*entry
}

// Surface returns the inner pore wall area over the sampled pore length.
func (s *System) Surface(entry float64) float64 {
	return math.Pi * s.Diameter * s.PoreLength(entry)
}

// ResVolume returns the total bulk volume: both reservoir slabs for pore
// systems, the whole box otherwise.
func (s *System) ResVolume() float64 {
	if !s.Pore() {
		return s.Box[0] * s.Box[1] * s.Box[2]
	}
	return 2 * s.Res * s.Box[0] * s.Box[1]
}
