/*
 * interfaces.go, part of poreana.
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

import "gonum.org/v1/gonum/mat"

// Traj is the interface for any trajectory source. A frame is an Nx3 matrix
// of atomic positions in nm, in the order given by the topology the
// trajectory was produced with.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next frame into output, or discards it if output is nil.
	//It can also fill the (optional) box with the box vectors, if present in
	//the frame. A LastFrameError signals normal termination.
	Next(output *mat.Dense, box ...[]float64) error

	//Returns the number of atoms per frame
	Len() int
}

// FrameCounter is implemented by trajectory sources that know their total
// frame count up front. The count is only used for progress reporting.
type FrameCounter interface {
	Frames() int
}

//Errors

// Error is the interface for errors that all packages in this module
// implement. The Decorate method adds information to the error as it is
// passed up the calling stack, without wrapping it in another type. Passed
// an empty string, it just returns the current decoration slice.
type Error interface {
	Error() string
	Decorate(string) []string
}

// TrajError is the interface for errors in trajectories.
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless method to distinguish the harmless
// end-of-trajectory condition from real trajectory errors, so it can be
// filtered in a type switch.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
