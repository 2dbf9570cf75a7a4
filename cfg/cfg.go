/*
 * cfg.go, part of poreana.
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

// Package cfg reads the YAML run configuration that drives a sampling run.
package cfg

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Run is a structure containing the parameters of a sampling run. It can be
// instanced through the New function or by hand. If it is instanced by hand,
// use the Check method to verify it meets the requirements.
type Run struct {
	// System is the path to the YAML system definition (box, pore geometry)
	System string `yaml:"system"`

	// Traj is the trj trajectory file containing the frames
	Traj string `yaml:"traj"`

	// Mol is the path to the YAML molecule definition (atoms, masses,
	// selection)
	Mol string `yaml:"mol"`

	// Entry is the entry length in nm cut from both pore ends. Left out, it
	// defaults to 0.5 nm; an explicit 0 disables the margin
	Entry *float64 `yaml:"entry"`

	// Bins is the number of bins per region. Zero means the default of 150
	Bins int `yaml:"bins"`

	// NoPBC disables the periodic wrap of the centres of mass
	NoPBC bool `yaml:"no_pbc"`

	// Shift translates every frame by the given vector, in nm, before
	// sampling
	Shift [3]float64 `yaml:"shift"`

	// Density is the output file for the density sampling. It must be set,
	// as every other analysis is normalized through the density
	Density string `yaml:"density"`

	// Gyration is the output file for the radius of gyration sampling. Empty
	// means the sampling is skipped
	Gyration string `yaml:"gyration"`

	// Diffusion is the output file for the binned diffusion sampling. Empty
	// means the sampling is skipped
	Diffusion string `yaml:"diffusion"`

	// LenObs is the length of the diffusion observation window in s. Zero
	// means the default of 16e-12
	LenObs float64 `yaml:"len_obs"`

	// FrameLen is the time between two frames in s. Zero means the default
	// of 2e-12
	FrameLen float64 `yaml:"frame_len"`

	// Step is the gap between frames entering the diffusion window. Zero
	// means the default of 2
	Step int `yaml:"step"`

	// BinStep is the maximal allowed bin jump within a diffusion window.
	// Zero means the default of 1
	BinStep int `yaml:"bin_step"`
}

// New opens and decodes the specified configuration file. The file must be
// a YAML file. This function automatically calls the Check method to check
// the integrity of the Run.
func New(path string) (*Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r Run
	dec := yaml.NewDecoder(bufio.NewReader(f))
	err = dec.Decode(&r)
	if err != nil {
		return nil, err
	}

	err = r.Check()
	if err != nil {
		return nil, fmt.Errorf("Check: %w", err)
	}

	return &r, nil
}

// Check returns an error if a field doesn't meet the requirements, and fills
// in the defaults for the fields left at zero.
func (r *Run) Check() error {
	if r.System == "" {
		return fmt.Errorf("System file must be given")
	}
	if r.Traj == "" {
		return fmt.Errorf("Traj file must be given")
	}
	if r.Mol == "" {
		return fmt.Errorf("Mol file must be given")
	}
	if r.Density == "" {
		return fmt.Errorf("Density output must be given")
	}
	if r.Entry == nil {
		e := 0.5
		r.Entry = &e
	}
	if *r.Entry < 0 {
		return fmt.Errorf("Entry must be greater or equal to 0")
	}
	if r.Bins < 0 {
		return fmt.Errorf("Bins must be greater or equal to 0")
	}
	if r.Bins == 0 {
		r.Bins = 150
	}
	if r.LenObs < 0 || r.FrameLen < 0 || r.Step < 0 || r.BinStep < 0 {
		return fmt.Errorf("LenObs, FrameLen, Step and BinStep must be greater or equal to 0")
	}
	if r.LenObs == 0 {
		r.LenObs = 16e-12
	}
	if r.FrameLen == 0 {
		r.FrameLen = 2e-12
	}
	if r.Step == 0 {
		r.Step = 2
	}
	if r.BinStep == 0 {
		r.BinStep = 1
	}
	return nil
}
