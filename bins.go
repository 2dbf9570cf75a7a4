/*
 * bins.go, part of poreana.
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

import "math"

// Bins is the spatial discretization shared by all accumulators of one
// sampling run: Num+1 radial slices of width InWidth inside the pore and
// Num+1 axial slices of width ExWidth in the reservoirs. The definition is
// fixed at construction; accumulators built from different definitions can
// not be combined.
type Bins struct {
	Num     int     `json:"num"`
	InWidth float64 `json:"in_width"`
	ExWidth float64 `json:"ex_width"`
}

// NewBins derives the bin definition from the system geometry: radial bins
// span the pore radius, axial bins the reservoir length (the box length for
// plain boxes).
func NewBins(s *System, num int) (*Bins, error) {
	if num <= 0 {
		return nil, NewCError("NewBins", "bin number not positive: %d", num)
	}
	b := &Bins{Num: num}
	if s.Pore() {
		b.InWidth = s.Diameter / 2 / float64(num)
		b.ExWidth = s.Res / float64(num)
	} else {
		b.ExWidth = s.Box[2] / float64(num)
	}
	return b, nil
}

//index rounds toward the bin's lower edge, so a position exactly on a bin
//boundary always lands in the bin that starts there. Positions beyond the
//last edge are clipped into the extreme bin.
func (b *Bins) index(dist, width float64) int {
	i := int(math.Floor(dist / width))
	if i > b.Num {
		i = b.Num
	}
	if i < 0 { //dist is a distance, but don't trust the caller
		i = 0
	}
	return i
}

// In returns the radial bin index for a distance to the pore axis.
func (b *Bins) In(dist float64) int {
	return b.index(dist, b.InWidth)
}

// Ex returns the axial bin index for a distance to the reservoir end.
func (b *Bins) Ex(dist float64) int {
	return b.index(dist, b.ExWidth)
}

// InEdges returns the radial bin edges, starting at the pore centre.
func (b *Bins) InEdges() []float64 {
	if b.InWidth == 0 {
		return nil
	}
	e := make([]float64, b.Num+2)
	for i := range e {
		e[i] = b.InWidth * float64(i)
	}
	return e
}

// ExEdges returns the axial bin edges, starting at the reservoir end.
func (b *Bins) ExEdges() []float64 {
	e := make([]float64, b.Num+1)
	for i := range e {
		e[i] = b.ExWidth * float64(i)
	}
	return e
}

// Equal reports whether two bin definitions are interchangeable.
func (b *Bins) Equal(o *Bins) bool {
	return b.Num == o.Num && b.InWidth == o.InWidth && b.ExWidth == o.ExWidth
}
