/*
 * snapshot.go, part of poreana.
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
	"encoding/json"
	"os"

	"github.com/klauspost/compress/zstd"
)

// Snapshot kinds.
const (
	KindDensity   = "density"
	KindGyration  = "gyration"
	KindDiffusion = "diffusion"
)

// Snapshot is the persisted state of one accumulator after a sampling run:
// the system, the bin definition, the raw per-bin data and the frame count.
// It is written once at the end of sampling and read-only afterwards; the
// calculators renormalize from the raw data on every load. The on-disk form
// is zstd-compressed JSON.
type Snapshot struct {
	Kind   string  `json:"kind"`
	System *System `json:"system"`
	Bins   *Bins   `json:"bins"`
	Frames int     `json:"frames"`
	Entry  float64 `json:"entry"`
	Mass   float64 `json:"mass"` //total molecule mass, kept for reference

	//density: occupancy counts; gyration: scalar sums
	In []float64 `json:"in,omitempty"`
	Ex []float64 `json:"ex,omitempty"`
	//gyration only: per-bin sample counts
	InCount []float64 `json:"in_count,omitempty"`
	ExCount []float64 `json:"ex_count,omitempty"`

	//diffusion only: per radial bin, per window position
	Window    int         `json:"window,omitempty"`
	Step      int         `json:"step,omitempty"`
	FrameLen  float64     `json:"frame_len,omitempty"` //seconds
	Axial     [][]float64 `json:"axial,omitempty"`
	Radial    [][]float64 `json:"radial,omitempty"`
	Norm      [][]float64 `json:"norm,omitempty"`
	AxialTot  [][]float64 `json:"axial_tot,omitempty"`
	RadialTot [][]float64 `json:"radial_tot,omitempty"`
	NormTot   [][]float64 `json:"norm_tot,omitempty"`
}

// Save writes the snapshot to path.
func (s *Snapshot) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return CError{err.Error(), []string{"Snapshot.Save"}}
	}
	defer f.Close()
	zw, err := zstd.NewWriter(f)
	if err != nil {
		return NewCError("Snapshot.Save", "can't open compressor for %s: %v", path, err)
	}
	if err := json.NewEncoder(zw).Encode(s); err != nil {
		zw.Close()
		return NewCError("Snapshot.Save", "can't encode %s: %v", path, err)
	}
	if err := zw.Close(); err != nil {
		return NewCError("Snapshot.Save", "can't finish %s: %v", path, err)
	}
	return nil
}

// LoadSnapshot reads a snapshot back from path.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, CError{err.Error(), []string{"LoadSnapshot"}}
	}
	defer f.Close()
	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, NewCError("LoadSnapshot", "can't open decompressor for %s: %v", path, err)
	}
	defer zr.Close()
	s := new(Snapshot)
	if err := json.NewDecoder(zr).Decode(s); err != nil {
		return nil, NewCError("LoadSnapshot", "can't decode %s: %v", path, err)
	}
	if s.System == nil || s.Bins == nil {
		return nil, NewCError("LoadSnapshot", "snapshot %s carries no system or bin definition", path)
	}
	if err := s.System.Check(); err != nil {
		return nil, errDecorate(err, "LoadSnapshot")
	}
	return s, nil
}

//expectKind fails when a snapshot of the wrong kind is handed to a
//calculator.
func (s *Snapshot) expectKind(kind, caller string) error {
	if s.Kind != kind {
		return NewCError(caller, "need a %s snapshot, got %q", kind, s.Kind)
	}
	return nil
}

//matchBins fails fast when two snapshots were sampled with different
//discretizations. Combining them would silently produce garbage.
func (s *Snapshot) matchBins(o *Snapshot, caller string) error {
	if s.Bins == nil || o.Bins == nil || !s.Bins.Equal(o.Bins) {
		return NewCError(caller, "bin definitions don't match: %+v vs %+v", s.Bins, o.Bins)
	}
	return nil
}
