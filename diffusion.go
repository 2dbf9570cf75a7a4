/*
 * diffusion.go, part of poreana.
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

// DiffusionParams configures the windowed MSD sampling.
type DiffusionParams struct {
	//Observation length of one window, in seconds.
	LenObs float64
	//Length of one trajectory frame, in seconds.
	FrameLen float64
	//Stride between the frames entering a window.
	Step int
	//Number of radial bins a molecule may drift from its starting bin
	//before the window stops counting as bin-resolved.
	BinStep int
}

// DefaultDiffusionParams returns the default windowed MSD parameters: 16 ps
// windows over 2 ps frames with a stride of 2.
func DefaultDiffusionParams() DiffusionParams {
	return DiffusionParams{LenObs: 16e-12, FrameLen: 2e-12, Step: 2, BinStep: 1}
}

// Diffusion samples the mean square displacement of the molecule centres of
// mass inside the pore, axially and radially, resolved by the radial bin a
// molecule starts its observation window in. A ring buffer keeps the last
// window-length centres of mass, so one pass over the trajectory suffices.
type Diffusion struct {
	sys     *System
	bins    *Bins
	entry   float64
	mass    float64
	window  int
	step    int
	binStep int
	fLen    float64

	//bin-resolved msd sums: only windows whose molecule stayed within
	//binStep bins of its starting bin
	axial  [][]float64
	radial [][]float64
	norm   [][]float64
	//total msd sums, regardless of bin drift
	axialTot  [][]float64
	radialTot [][]float64
	normTot   [][]float64

	comList []map[int][3]float64
	idxList []map[int]int
	frames  int
	state   accumState
}

// NewDiffusion returns an empty diffusion accumulator. The window length
// LenObs must be an integer number of strided frames; anything else is a
// configuration error reporting the two nearest admissible lengths.
func NewDiffusion(sys *System, bins *Bins, entry, mass float64, p DiffusionParams) (*Diffusion, error) {
	if !sys.Pore() {
		return nil, NewCError("NewDiffusion", "bin diffusion needs a pore system")
	}
	if p.Step <= 0 || p.FrameLen <= 0 || p.LenObs <= 0 {
		return nil, NewCError("NewDiffusion", "step, frame length and observation length must be positive")
	}
	if p.BinStep < 0 {
		return nil, NewCError("NewDiffusion", "bin step must not be negative")
	}
	w := p.LenObs/float64(p.Step)/p.FrameLen + 1
	if w != math.Trunc(w) {
		up := (math.Ceil(w) - 1) * float64(p.Step) * p.FrameLen
		down := (math.Floor(w) - 1) * float64(p.Step) * p.FrameLen
		return nil, NewCError("NewDiffusion", "observation length %.1e not possible with these inputs, use %.1e or %.1e", p.LenObs, up, down)
	}
	d := &Diffusion{
		sys: sys, bins: bins, entry: entry, mass: mass,
		window: int(w), step: p.Step, binStep: p.BinStep, fLen: p.FrameLen,
	}
	grid := func() [][]float64 {
		g := make([][]float64, bins.Num+1)
		for i := range g {
			g[i] = make([]float64, d.window)
		}
		return g
	}
	d.axial, d.radial, d.norm = grid(), grid(), grid()
	d.axialTot, d.radialTot, d.normTot = grid(), grid(), grid()
	return d, nil
}

// Frame marks the begin of a new trajectory frame and rotates the centre of
// mass ring buffer.
func (d *Diffusion) Frame() error {
	if d.state == stateFinalized {
		return NewCError("Diffusion.Frame", "accumulator is finalized")
	}
	d.state = stateAccumulating
	d.frames++
	fill := d.window * d.step
	if len(d.comList) >= fill {
		d.comList = d.comList[1:]
		d.idxList = d.idxList[1:]
	}
	d.comList = append(d.comList, map[int][3]float64{})
	d.idxList = append(d.idxList, map[int]int{})
	return nil
}

// Add records one molecule. Only molecules inside the pore enter the ring
// buffer; a molecule leaving the pore simply drops out of the windows that
// still cover it. When the buffer is full, the window starting at its
// oldest frame is sampled for every molecule present there.
func (d *Diffusion) Add(region Region, radial float64, res int, com [3]float64) error {
	if d.state == stateFinalized {
		return NewCError("Diffusion.Add", "accumulator is finalized")
	}
	d.state = stateAccumulating
	if region != RegionIn {
		return nil
	}
	last := len(d.comList) - 1
	index := d.bins.In(radial)
	d.comList[last][res] = com
	d.idxList[last][res] = index
	fill := d.window * d.step
	if len(d.comList) < fill {
		return nil
	}
	ref, ok := d.comList[0][res]
	if !ok {
		return nil
	}
	idxRef := d.idxList[0][res]
	msdZ := make([]float64, d.window)
	msdR := make([]float64, d.window)
	norm := make([]float64, d.window)
	lenMsd := 0
	for f := 0; f < fill; f += d.step {
		pos, ok := d.comList[f][res]
		if !ok { //the molecule left the pore
			break
		}
		win := f / d.step
		dz := ref[2] - pos[2]
		dx := ref[0] - pos[0]
		dy := ref[1] - pos[1]
		msdZ[win] += dz * dz
		msdR[win] += dx*dx + dy*dy
		norm[win]++
		if abs(d.idxList[f][res]-idxRef) > d.binStep { //left the radial bin
			break
		}
		lenMsd++
	}
	for i := 0; i < d.window; i++ {
		d.axialTot[idxRef][i] += msdZ[i]
		d.radialTot[idxRef][i] += msdR[i]
		d.normTot[idxRef][i] += norm[i]
		if lenMsd == d.window {
			d.axial[idxRef][i] += msdZ[i]
			d.radial[idxRef][i] += msdR[i]
			d.norm[idxRef][i] += norm[i]
		}
	}
	return nil
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}

// Snapshot returns the persistable raw state.
func (d *Diffusion) Snapshot() *Snapshot {
	return &Snapshot{
		Kind:      KindDiffusion,
		System:    d.sys,
		Bins:      d.bins,
		Frames:    d.frames,
		Entry:     d.entry,
		Mass:      d.mass,
		Window:    d.window,
		Step:      d.step,
		FrameLen:  d.fLen,
		Axial:     d.axial,
		Radial:    d.radial,
		Norm:      d.norm,
		AxialTot:  d.axialTot,
		RadialTot: d.radialTot,
		NormTot:   d.normTot,
	}
}

//defaultAxArea is the window fraction the msd slope is fitted over. The
//first and last part of a window deviate from the linear regime.
var defaultAxArea = [2]float64{0.2, 0.8}

// CalcDiffusionBins reloads a diffusion snapshot and returns the axial
// diffusion coefficient per radial bin, in 1e-9 m²/s, from the slope of the
// bin's mean square displacement over the axArea fraction of the window.
// Bins that never completed a window hold NaN.
func CalcDiffusionBins(link string, axArea ...[2]float64) (*Profile, error) {
	s, err := LoadSnapshot(link)
	if err != nil {
		return nil, errDecorate(err, "CalcDiffusionBins")
	}
	p, err := diffusionBins(s, axArea...)
	if err != nil {
		return nil, errDecorate(err, "CalcDiffusionBins")
	}
	return p, nil
}

func diffusionBins(s *Snapshot, axArea ...[2]float64) (*Profile, error) {
	if err := s.expectKind(KindDiffusion, "diffusionBins"); err != nil {
		return nil, err
	}
	area := defaultAxArea
	if len(axArea) > 0 {
		area = axArea[0]
	}
	if area[0] < 0 || area[1] <= area[0] || area[1] > 1 {
		return nil, NewCError("diffusionBins", "invalid slope area %v", area)
	}
	fStart := int(area[0] * float64(s.Window))
	fEnd := int(area[1] * float64(s.Window))
	if fEnd >= s.Window {
		fEnd = s.Window - 1
	}
	if fEnd <= fStart {
		return nil, NewCError("diffusionBins", "slope area %v too narrow for a %d frame window", area, s.Window)
	}
	dt := float64(fEnd-fStart) * float64(s.Step) * s.FrameLen
	edges := s.Bins.InEdges()
	p := &Profile{Dist: edges[:len(edges)-1], Value: make([]float64, len(s.Axial))}
	for i := range s.Axial {
		if s.Norm[i][fStart] == 0 || s.Norm[i][fEnd] == 0 {
			p.Value[i] = math.NaN()
			continue
		}
		slope := (s.Axial[i][fEnd]/s.Norm[i][fEnd] - s.Axial[i][fStart]/s.Norm[i][fStart]) / dt
		//nm²/s over 2t, reported in 1e-9 m²/s
		p.Value[i] = slope * 1e-18 / 2 * 1e9
	}
	return p, nil
}

// CalcDiffusionMean reloads a diffusion snapshot together with its density
// snapshot (matching bin definition required) and returns the
// density-weighted mean axial diffusion coefficient inside the pore, in
// 1e-9 m²/s. Each bin is weighted by its density times its annular area.
func CalcDiffusionMean(diffLink, densLink string, axArea ...[2]float64) (float64, error) {
	ds, err := LoadSnapshot(diffLink)
	if err != nil {
		return 0, errDecorate(err, "CalcDiffusionMean")
	}
	ns, err := LoadSnapshot(densLink)
	if err != nil {
		return 0, errDecorate(err, "CalcDiffusionMean")
	}
	if err := ds.matchBins(ns, "CalcDiffusionMean"); err != nil {
		return 0, err
	}
	diff, err := diffusionBins(ds, axArea...)
	if err != nil {
		return 0, errDecorate(err, "CalcDiffusionMean")
	}
	dens, err := densityProfile(ns)
	if err != nil {
		return 0, errDecorate(err, "CalcDiffusionMean")
	}
	edges := ds.Bins.InEdges()
	var num, den float64
	for i, d := range diff.Value {
		if math.IsNaN(d) {
			continue
		}
		w := dens.In[i] * (edges[i+1]*edges[i+1] - edges[i]*edges[i])
		num += w * d
		den += w
	}
	if den == 0 {
		return 0, NewCError("CalcDiffusionMean", "no populated bins to average over")
	}
	return num / den, nil
}
