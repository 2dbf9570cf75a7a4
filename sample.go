/*
 * sample.go, part of poreana.
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
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

// Options holds the sampling options.
type Options struct {
	entry    float64
	bins     int
	pbc      bool
	shift    [3]float64
	progress io.Writer
}

// DefaultOptions returns an Options with the default options: an entry
// margin of 0.5 nm, 150 bins, periodic boundary conditions applied, no
// shift, progress on standard output.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.entry = 0.5
	ret.bins = 150
	ret.pbc = true
	ret.progress = os.Stdout
	return ret
}

//Returns the entry margin removed from both pore mouths and sets it to the
//value given, if any.
func (r *Options) Entry(entry ...float64) float64 {
	ret := r.entry
	if len(entry) > 0 && entry[0] >= 0 {
		r.entry = entry[0]
	}
	return ret
}

//Returns the number of bins per partition and sets it, if a valid value is
//given.
func (r *Options) Bins(bins ...int) int {
	ret := r.bins
	if len(bins) > 0 && bins[0] > 0 {
		r.bins = bins[0]
	}
	return ret
}

//Returns whether periodic boundary conditions are applied to the centres of
//mass and sets the value to the one given, if any.
func (r *Options) PBC(pbc ...bool) bool {
	ret := r.pbc
	if len(pbc) > 0 {
		r.pbc = pbc[0]
	}
	return ret
}

//Returns the translation applied to all positions and sets it, if given.
func (r *Options) Shift(shift ...[3]float64) [3]float64 {
	ret := r.shift
	if len(shift) > 0 {
		r.shift = shift[0]
	}
	return ret
}

//Returns the writer progress is reported to and sets it, if given.
func (r *Options) Progress(w ...io.Writer) io.Writer {
	ret := r.progress
	if len(w) > 0 && w[0] != nil {
		r.progress = w[0]
	}
	return ret
}

// Sampler runs the enabled analysis routines in one sequential pass over a
// trajectory and persists each accumulator to its output handle. Analyses
// are enabled before the pass; density is always required, gyration and
// diffusion are optional.
type Sampler struct {
	sys  *System
	traj Traj
	mol  *Molecule
	opts *Options
	bins *Bins

	nframes int
	nres    int

	dens    *Density
	densOut string
	gyr     *Weighted
	gyrOut  string
	diff    *Diffusion
	diffOut string
}

// NewSampler validates all inputs and returns a Sampler with no analyses
// enabled yet. The trajectory's frame count, when it implements
// FrameCounter, is only used for progress reporting.
func NewSampler(sys *System, traj Traj, mol *Molecule, opts ...*Options) (*Sampler, error) {
	o := DefaultOptions()
	if len(opts) > 0 && opts[0] != nil {
		o = opts[0]
	}
	if err := sys.Check(); err != nil {
		return nil, errDecorate(err, "NewSampler")
	}
	if err := mol.Check(); err != nil {
		return nil, errDecorate(err, "NewSampler")
	}
	if !traj.Readable() {
		return nil, NewCError("NewSampler", "trajectory is not readable")
	}
	nres, err := mol.Residues(traj.Len())
	if err != nil {
		return nil, errDecorate(err, "NewSampler")
	}
	bins, err := NewBins(sys, o.bins)
	if err != nil {
		return nil, errDecorate(err, "NewSampler")
	}
	s := &Sampler{sys: sys, traj: traj, mol: mol, opts: o, bins: bins, nres: nres}
	if fc, ok := traj.(FrameCounter); ok {
		s.nframes = fc.Frames()
	}
	return s, nil
}

// EnableDensity enables the density routine, persisting to out.
func (s *Sampler) EnableDensity(out string) error {
	if out == "" {
		return NewCError("Sampler.EnableDensity", "no output handle given")
	}
	s.dens = NewDensity(s.sys, s.bins, s.opts.entry, s.mol.Mass())
	s.densOut = out
	return nil
}

// EnableGyration enables the gyration routine, persisting to out. It
// depends on the density routine, which must be enabled first so both are
// sampled over the same bins.
func (s *Sampler) EnableGyration(out string) error {
	if out == "" {
		return NewCError("Sampler.EnableGyration", "no output handle given")
	}
	if s.dens == nil {
		return NewCError("Sampler.EnableGyration", "gyration sampling depends on density sampling")
	}
	s.gyr = NewGyration(s.sys, s.bins, s.opts.entry, s.mol)
	s.gyrOut = out
	return nil
}

// EnableDiffusion enables the windowed MSD routine, persisting to out. Only
// pore systems can be sampled for bin diffusion.
func (s *Sampler) EnableDiffusion(out string, p DiffusionParams) error {
	if out == "" {
		return NewCError("Sampler.EnableDiffusion", "no output handle given")
	}
	if !s.sys.Pore() {
		return NewCError("Sampler.EnableDiffusion", "bin diffusion needs a pore system")
	}
	d, err := NewDiffusion(s.sys, s.bins, s.opts.entry, s.mol.Mass(), p)
	if err != nil {
		return errDecorate(err, "Sampler.EnableDiffusion")
	}
	s.diff = d
	s.diffOut = out
	return nil
}

// Sample runs the single pass over the trajectory and persists the enabled
// accumulators. A failure mid-pass aborts the run; accumulator state is not
// resumable from an arbitrary frame, so nothing is persisted in that case.
func (s *Sampler) Sample() error {
	if s.dens == nil {
		return NewCError("Sampler.Sample", "no density routine enabled")
	}
	coords := mat.NewDense(s.traj.Len(), 3, nil)
	nsel := len(s.mol.Selection())
	pos := mat.NewDense(nsel, 3, nil)
	width := len(fmt.Sprintf("%d", s.nframes))
	frames := 0
	for i := 0; ; i++ {
		err := s.traj.Next(coords)
		if err != nil {
			if _, ok := err.(LastFrameError); ok {
				break
			}
			if err, ok := err.(Error); ok {
				err.Decorate(fmt.Sprintf("Sampler.Sample: failed while reading the %d th frame", i))
				return err
			}
			return err
		}
		if err := s.observe(coords, pos); err != nil {
			return errDecorate(err, "Sampler.Sample")
		}
		frames++
		if (i+1)%10 == 0 || i == 0 || i+1 == s.nframes {
			if s.nframes > 0 {
				fmt.Fprintf(s.opts.progress, "Finished frame %*d/%*d...\r", width, i+1, width, s.nframes)
			} else {
				fmt.Fprintf(s.opts.progress, "Finished frame %d...\r", i+1)
			}
		}
	}
	fmt.Fprintln(s.opts.progress)
	if frames == 0 {
		return NewCError("Sampler.Sample", "trajectory holds no frames")
	}
	if err := s.dens.Snapshot().Save(s.densOut); err != nil {
		return errDecorate(err, "Sampler.Sample")
	}
	if s.gyr != nil {
		if err := s.gyr.Snapshot().Save(s.gyrOut); err != nil {
			return errDecorate(err, "Sampler.Sample")
		}
	}
	if s.diff != nil {
		if err := s.diff.Snapshot().Save(s.diffOut); err != nil {
			return errDecorate(err, "Sampler.Sample")
		}
	}
	return nil
}

//observe feeds one frame to every enabled accumulator.
func (s *Sampler) observe(coords, pos *mat.Dense) error {
	if err := s.dens.Frame(); err != nil {
		return err
	}
	if s.gyr != nil {
		if err := s.gyr.Frame(); err != nil {
			return err
		}
	}
	if s.diff != nil {
		if err := s.diff.Frame(); err != nil {
			return err
		}
	}
	sel := s.mol.Selection()
	masses := s.mol.Masses()
	box := s.sys.Box
	for res := 0; res < s.nres; res++ {
		base := res * s.mol.Len()
		var com [3]float64
		var total float64
		for k, off := range sel {
			m := masses[k]
			total += m
			for j := 0; j < 3; j++ {
				v := coords.At(base+off, j) + s.opts.shift[j]
				pos.Set(k, j, v)
				com[j] += v * m
			}
		}
		for j := 0; j < 3; j++ {
			com[j] /= total
		}
		//molecules broken across the periodic boundary would yield a
		//meaningless centre of mass
		broken := false
		for j := 0; j < 3; j++ {
			if math.Abs(com[j]-pos.At(0, j)) > box[j]/3 {
				broken = true
				break
			}
		}
		if broken {
			continue
		}
		wrapped := com
		if s.opts.pbc {
			for j := 0; j < 3; j++ {
				wrapped[j] -= math.Floor(wrapped[j]/box[j]) * box[j]
			}
		}
		radial := s.sys.RadialDist(wrapped)
		axial := s.sys.AxialDist(wrapped[2])
		region := s.sys.ClassifyRegion(wrapped[2], s.opts.entry)
		if err := s.dens.Add(region, radial, axial); err != nil {
			return err
		}
		if s.gyr != nil {
			if err := s.gyr.Add(region, radial, axial, pos, com); err != nil {
				return err
			}
		}
		if s.diff != nil {
			if err := s.diff.Add(region, radial, res, wrapped); err != nil {
				return err
			}
		}
	}
	return nil
}
