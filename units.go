/*
 * units.go, part of poreana.
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

// Avogadro constant, 1/mol.
const Avogadro = 6.02214076e23

// MolsToMumolM2 converts a molecule count on an area in nm² to µmol/m².
func MolsToMumolM2(n, area float64) float64 {
	return n / Avogadro / (area * 1e-18) * 1e6
}

// MolsToMmolL converts a molecule count in a volume in nm³ to mmol/l.
func MolsToMmolL(n, volume float64) float64 {
	return n / Avogadro / (volume * 1e-24) * 1e3
}
