/*
 * gyration.go, part of poreana.
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

	"gonum.org/v1/gonum/mat"
)

// ScalarFunc computes a per-molecule scalar from the positions of one
// molecule (selection only, Nx3, nm) and its unwrapped centre of mass.
type ScalarFunc func(pos *mat.Dense, com [3]float64) float64

// GyrationRadius returns the radius of gyration as a ScalarFunc:
// Rg = sqrt(sum_i m_i*|r_i-com|^2 / sum_i m_i) with the given atom masses.
func GyrationRadius(masses []float64) ScalarFunc {
	var total float64
	for _, m := range masses {
		total += m
	}
	return func(pos *mat.Dense, com [3]float64) float64 {
		var sum float64
		for i, m := range masses {
			dx := pos.At(i, 0) - com[0]
			dy := pos.At(i, 1) - com[1]
			dz := pos.At(i, 2) - com[2]
			sum += (dx*dx + dy*dy + dz*dz) * m
		}
		return math.Sqrt(sum / total)
	}
}

// Weighted accumulates an arbitrary per-molecule scalar into the spatial
// bins, as a running sum plus a running sample count. The per-bin mean only
// becomes meaningful after division by a density sampled with the very same
// bin definition.
type Weighted struct {
	kind  string
	sys   *System
	bins  *Bins
	entry float64
	mass  float64
	fn    ScalarFunc

	in, ex   []float64
	inN, exN []float64
	frames   int
	state    accumState
}

// NewWeighted returns an empty weighted accumulator of the given snapshot
// kind over fn.
func NewWeighted(kind string, sys *System, bins *Bins, entry, mass float64, fn ScalarFunc) *Weighted {
	w := &Weighted{kind: kind, sys: sys, bins: bins, entry: entry, mass: mass, fn: fn}
	if sys.Pore() {
		w.in = make([]float64, bins.Num+1)
		w.inN = make([]float64, bins.Num+1)
	}
	w.ex = make([]float64, bins.Num+1)
	w.exN = make([]float64, bins.Num+1)
	return w
}

// NewGyration returns a weighted accumulator over the radius of gyration of
// the molecule's selected atoms.
func NewGyration(sys *System, bins *Bins, entry float64, mol *Molecule) *Weighted {
	return NewWeighted(KindGyration, sys, bins, entry, mol.Mass(), GyrationRadius(mol.Masses()))
}

// Frame marks the begin of a new trajectory frame.
func (w *Weighted) Frame() error {
	if w.state == stateFinalized {
		return NewCError("Weighted.Frame", "accumulator is finalized")
	}
	w.state = stateAccumulating
	w.frames++
	return nil
}

// Add evaluates the scalar for one molecule and bins it, following the same
// region rules as Density.Add. pos holds the selected atom positions without
// periodic wrapping, com their unwrapped centre of mass.
func (w *Weighted) Add(region Region, radial, axial float64, pos *mat.Dense, com [3]float64) error {
	if w.state == stateFinalized {
		return NewCError("Weighted.Add", "accumulator is finalized")
	}
	w.state = stateAccumulating
	switch region {
	case RegionIn:
		if w.in == nil {
			return NewCError("Weighted.Add", "no pore in a %s system", w.sys.Type)
		}
		i := w.bins.In(radial)
		w.in[i] += w.fn(pos, com)
		w.inN[i]++
	case RegionEx:
		if !w.sys.Pore() || radial > w.sys.Diameter/2 {
			i := w.bins.Ex(axial)
			w.ex[i] += w.fn(pos, com)
			w.exN[i]++
		}
	}
	return nil
}

// Snapshot returns the persistable raw state.
func (w *Weighted) Snapshot() *Snapshot {
	return &Snapshot{
		Kind:    w.kind,
		System:  w.sys,
		Bins:    w.bins,
		Frames:  w.frames,
		Entry:   w.entry,
		Mass:    w.mass,
		In:      w.in,
		Ex:      w.ex,
		InCount: w.inN,
		ExCount: w.exN,
	}
}

// Profile is a (distance, value) sequence over bin lower edges. Bins without
// samples hold NaN, so a renderer can gap them.
type Profile struct {
	Dist  []float64
	Value []float64
}

// Mean returns the mean over the defined (non-NaN) bins.
func (p *Profile) Mean() float64 {
	var sum float64
	var n int
	for _, v := range p.Value {
		if !math.IsNaN(v) {
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

// WeightedProfile holds the density-weighted per-bin means of both
// partitions. In is nil for box systems.
type WeightedProfile struct {
	In *Profile
	Ex *Profile
}

// Finalize divides the accumulated sums by the occupancy of a density
// accumulator that has already been finalized over the same bin definition.
// A differing bin definition is a configuration error.
func (w *Weighted) Finalize(d *Density) (*WeightedProfile, error) {
	if w.state == stateEmpty {
		return nil, NewCError("Weighted.Finalize", "nothing was sampled")
	}
	if d.state != stateFinalized {
		return nil, NewCError("Weighted.Finalize", "density accumulator is not finalized")
	}
	w.state = stateFinalized
	p, err := weightedProfile(w.Snapshot(), d.Snapshot())
	if err != nil {
		return nil, errDecorate(err, "Weighted.Finalize")
	}
	return p, nil
}

// CalcGyration reloads a gyration snapshot together with its density
// snapshot and returns the mean gyration radius profile for the partition
// selected by intent: RegionIn for the radial profile inside the pore,
// RegionEx for the axial profile in the reservoirs.
func CalcGyration(gyrLink, densLink string, intent Region) (*Profile, error) {
	gs, err := LoadSnapshot(gyrLink)
	if err != nil {
		return nil, errDecorate(err, "CalcGyration")
	}
	if err := gs.expectKind(KindGyration, "CalcGyration"); err != nil {
		return nil, err
	}
	ds, err := LoadSnapshot(densLink)
	if err != nil {
		return nil, errDecorate(err, "CalcGyration")
	}
	wp, err := weightedProfile(gs, ds)
	if err != nil {
		return nil, errDecorate(err, "CalcGyration")
	}
	switch intent {
	case RegionIn:
		if wp.In == nil {
			return nil, NewCError("CalcGyration", "no pore partition in a %s system", gs.System.Type)
		}
		return wp.In, nil
	case RegionEx:
		return wp.Ex, nil
	}
	return nil, NewCError("CalcGyration", "invalid intent %q", intent)
}

//weightedProfile is the shared finalization: per-bin sums divided by the
//matching density occupancy. Empty bins become NaN, never a division fault.
func weightedProfile(ws, ds *Snapshot) (*WeightedProfile, error) {
	if err := ds.expectKind(KindDensity, "weightedProfile"); err != nil {
		return nil, err
	}
	if err := ws.matchBins(ds, "weightedProfile"); err != nil {
		return nil, err
	}
	p := new(WeightedProfile)
	if ws.In != nil && ds.In != nil {
		edges := ws.Bins.InEdges()
		p.In = &Profile{Dist: edges[:len(edges)-1], Value: divideBins(ws.In, ds.In)}
	}
	p.Ex = &Profile{Dist: ws.Bins.ExEdges(), Value: divideBins(ws.Ex, ds.Ex)}
	return p, nil
}

func divideBins(sums, counts []float64) []float64 {
	out := make([]float64, len(sums))
	for i := range out {
		if counts[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		out[i] = sums[i] / counts[i]
	}
	return out
}
