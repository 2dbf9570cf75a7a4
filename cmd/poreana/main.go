/*
 * main.go, part of poreana.
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

// The poreana command samples trj trajectories over a pore system and turns
// the sampled snapshots into density, adsorption, radius of gyration and
// diffusion figures.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	poreana "github.com/marc310896/PoreAna"
	"github.com/marc310896/PoreAna/cfg"
	"github.com/marc310896/PoreAna/paplot"
	"github.com/marc310896/PoreAna/trj"
)

var rootCmd = &cobra.Command{
	Use:           "poreana",
	Short:         "Analysis of molecules in nanopores from MD trajectories",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var sampleCmd = &cobra.Command{
	Use:   "sample <config.yaml>",
	Short: "Sample a trajectory into analysis snapshots",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSample(args[0])
	},
}

var densityCmd = &cobra.Command{
	Use:   "density <density.snp>",
	Short: "Density profiles from a density snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prof, err := poreana.CalcDensity(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Pore occupancy:      %10.6f molecules\n", prof.NumIn)
		fmt.Printf("Reservoir occupancy: %10.6f molecules\n", prof.NumEx)
		if plotName != "" {
			return paplot.Density(prof, "Density profile", plotName)
		}
		return nil
	},
}

var adsorptionCmd = &cobra.Command{
	Use:   "adsorption <density.snp>",
	Short: "Surface and volume concentrations from a density snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := poreana.CalcAdsorption(args[0])
		if err != nil {
			return err
		}
		fmt.Print(t)
		return nil
	},
}

var gyrationCmd = &cobra.Command{
	Use:   "gyration <gyration.snp> <density.snp>",
	Short: "Density-weighted radius of gyration profile",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := poreana.RegionIn
		if region == "ex" {
			reg = poreana.RegionEx
		} else if region != "in" {
			return fmt.Errorf("unknown region %q, want in or ex", region)
		}
		prof, err := poreana.CalcGyration(args[0], args[1], reg)
		if err != nil {
			return err
		}
		fmt.Printf("Mean radius of gyration (%s): %.6f nm\n", region, prof.Mean())
		if plotName != "" {
			return paplot.Profile(prof, "Radius of gyration", "Distance [nm]", "Rg [nm]", plotName)
		}
		return nil
	},
}

var diffusionCmd = &cobra.Command{
	Use:   "diffusion <diffusion.snp>",
	Short: "Axial diffusion profile over the pore radius",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prof, err := poreana.CalcDiffusionBins(args[0])
		if err != nil {
			return err
		}
		if densityFile != "" {
			mean, err := poreana.CalcDiffusionMean(args[0], densityFile)
			if err != nil {
				return err
			}
			fmt.Printf("Density-weighted mean diffusion: %.6f 1e-9 m^2/s\n", mean)
		}
		if plotName != "" {
			return paplot.Profile(prof, "Diffusion profile", "Distance [nm]", "D [1e-9 m^2/s]", plotName)
		}
		for i, d := range prof.Dist {
			fmt.Printf("%10.6f %12.6f\n", d, prof.Value[i])
		}
		return nil
	},
}

var (
	plotName    string
	region      string
	densityFile string
)

func runSample(path string) error {
	run, err := cfg.New(path)
	if err != nil {
		return err
	}
	sys, err := poreana.LoadSystem(run.System)
	if err != nil {
		return err
	}
	mol, err := poreana.LoadMolecule(run.Mol)
	if err != nil {
		return err
	}
	traj, _, err := trj.New(run.Traj)
	if err != nil {
		return err
	}
	defer traj.Close()
	opts := poreana.DefaultOptions()
	opts.Entry(*run.Entry)
	opts.Bins(run.Bins)
	opts.PBC(!run.NoPBC)
	opts.Shift(run.Shift)
	s, err := poreana.NewSampler(sys, traj, mol, opts)
	if err != nil {
		return err
	}
	if err := s.EnableDensity(run.Density); err != nil {
		return err
	}
	if run.Gyration != "" {
		if err := s.EnableGyration(run.Gyration); err != nil {
			return err
		}
	}
	if run.Diffusion != "" {
		p := poreana.DiffusionParams{
			LenObs:   run.LenObs,
			FrameLen: run.FrameLen,
			Step:     run.Step,
			BinStep:  run.BinStep,
		}
		if err := s.EnableDiffusion(run.Diffusion, p); err != nil {
			return err
		}
	}
	return s.Sample()
}

func init() {
	densityCmd.Flags().StringVar(&plotName, "plot", "", "save the profile as <plot>.png")
	gyrationCmd.Flags().StringVar(&plotName, "plot", "", "save the profile as <plot>.png")
	gyrationCmd.Flags().StringVar(&region, "region", "in", "region to report, in or ex")
	diffusionCmd.Flags().StringVar(&plotName, "plot", "", "save the profile as <plot>.png")
	diffusionCmd.Flags().StringVar(&densityFile, "density", "", "density snapshot for the weighted mean")
	rootCmd.AddCommand(sampleCmd, densityCmd, adsorptionCmd, gyrationCmd, diffusionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "poreana:", err)
		os.Exit(1)
	}
}
