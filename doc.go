/*
 * doc.go, part of poreana.
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

/*Package poreana post-processes molecular dynamics trajectories of molecules
confined in a modeled pore system. A single pass over the trajectory bins the
molecule centres of mass into radial slices inside the pore and axial slices
in the bulk reservoirs, accumulating a density histogram and, optionally,
further per-molecule quantities (radius of gyration, windowed mean square
displacements) weighted by that histogram. The accumulated state is persisted
to compressed snapshot files, from which the calculators in this package later
derive adsorption concentrations, gyration radius profiles and bin-wise
diffusion coefficients, without touching the trajectory again.

All distances are in nm. Trajectory decoding is kept behind the Traj
interface; the trj subpackage provides a simple compressed text format that
satisfies it. Plotting lives in the paplot subpackage, the core only produces
(distance, value) sequences.
*/
package poreana
