/*
 * density.go, part of poreana.
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

//Accumulators are append-only-then-closed: observations are only legal
//before the first finalization, finalizing twice is legal and yields the
//same result, and there is no way back.
type accumState int

const (
	stateEmpty accumState = iota
	stateAccumulating
	stateFinalized
)

// Density accumulates the per-bin occupancy of molecule centres of mass,
// radially inside the pore and axially in the reservoirs, over one pass
// through a trajectory.
type Density struct {
	sys   *System
	bins  *Bins
	entry float64
	mass  float64
	in    []float64
	ex    []float64

	frames int
	state  accumState
}

// NewDensity returns an empty density accumulator over the given bin
// definition. entry is the unsampled margin at the pore mouths and mass the
// total molecule mass; both are carried into the snapshot.
func NewDensity(sys *System, bins *Bins, entry, mass float64) *Density {
	d := &Density{sys: sys, bins: bins, entry: entry, mass: mass}
	if sys.Pore() {
		d.in = make([]float64, bins.Num+1)
	}
	d.ex = make([]float64, bins.Num+1)
	return d
}

// Frame marks the begin of a new trajectory frame. It must be called exactly
// once per frame, whether or not any molecule is observed in it.
func (d *Density) Frame() error {
	if d.state == stateFinalized {
		return NewCError("Density.Frame", "accumulator is finalized")
	}
	d.state = stateAccumulating
	d.frames++
	return nil
}

// Add bins one molecule observation. radial is the centre of mass distance
// to the pore axis, axial its distance to the reservoir end. Observations in
// the entry margin (RegionNone) are dropped. Reservoir observations in the
// cylinder extended through the pore mouths are dropped too, that space
// belongs to the pore.
func (d *Density) Add(region Region, radial, axial float64) error {
	if d.state == stateFinalized {
		return NewCError("Density.Add", "accumulator is finalized")
	}
	d.state = stateAccumulating
	switch region {
	case RegionIn:
		if d.in == nil {
			return NewCError("Density.Add", "no pore in a %s system", d.sys.Type)
		}
		d.in[d.bins.In(radial)]++
	case RegionEx:
		if !d.sys.Pore() || radial > d.sys.Diameter/2 {
			d.ex[d.bins.Ex(axial)]++
		}
	}
	return nil
}

// Snapshot returns the persistable raw state.
func (d *Density) Snapshot() *Snapshot {
	return &Snapshot{
		Kind:   KindDensity,
		System: d.sys,
		Bins:   d.bins,
		Frames: d.frames,
		Entry:  d.entry,
		Mass:   d.mass,
		In:     d.in,
		Ex:     d.ex,
	}
}

// Finalize normalizes the raw counts into a density profile. It can be
// called more than once; the profile is derived from the raw counts each
// time, never from a previous normalization.
func (d *Density) Finalize() (*DensityProfile, error) {
	if d.state == stateEmpty {
		return nil, NewCError("Density.Finalize", "nothing was sampled")
	}
	d.state = stateFinalized
	p, err := densityProfile(d.Snapshot())
	if err != nil {
		return nil, errDecorate(err, "Density.Finalize")
	}
	return p, nil
}

// DensityProfile is a finalized density: molecules per nm³ per bin, over the
// bin lower edges, plus the mean molecule count per partition.
type DensityProfile struct {
	InDist []float64
	In     []float64
	ExDist []float64
	Ex     []float64
	NumIn  float64
	NumEx  float64
}

// CalcDensity reloads a density snapshot and normalizes it.
func CalcDensity(link string) (*DensityProfile, error) {
	s, err := LoadSnapshot(link)
	if err != nil {
		return nil, errDecorate(err, "CalcDensity")
	}
	p, err := densityProfile(s)
	if err != nil {
		return nil, errDecorate(err, "CalcDensity")
	}
	return p, nil
}

//densityProfile divides the raw counts by frames times bin volume. Radial
//bins are cylinder shells pi*(r2^2-r1^2)*l over the sampled pore length,
//axial bins are slabs of the full box cross section, counted once for each
//of the two reservoirs.
func densityProfile(s *Snapshot) (*DensityProfile, error) {
	if err := s.expectKind(KindDensity, "densityProfile"); err != nil {
		return nil, err
	}
	if s.Frames <= 0 {
		return nil, NewCError("densityProfile", "snapshot holds no frames")
	}
	p := new(DensityProfile)
	n := float64(s.Frames)
	sys := s.System
	if sys.Pore() {
		edges := s.Bins.InEdges()
		l := sys.PoreLength(s.Entry)
		p.InDist = edges[:len(edges)-1]
		p.In = make([]float64, len(s.In))
		for i, c := range s.In {
			vol := math.Pi * (edges[i+1]*edges[i+1] - edges[i]*edges[i]) * l
			p.In[i] = c / n / vol
			p.NumIn += c / n
		}
	}
	slab := 2 * sys.Box[0] * sys.Box[1] * s.Bins.ExWidth
	if !sys.Pore() {
		slab /= 2 //a plain box has no second reservoir
	}
	p.ExDist = s.Bins.ExEdges()
	p.Ex = make([]float64, len(s.Ex))
	for i, c := range s.Ex {
		p.Ex[i] = c / n / slab
		p.NumEx += c / n
	}
	return p, nil
}
