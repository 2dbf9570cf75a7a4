/*
 * adsorption.go, part of poreana.
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

// Row and column names of the adsorption result table.
const (
	RowMumolM2 = "mumol_m2"
	RowMmolL   = "mmol_l"
	RowIn      = "in"
	RowEx      = "ex"
	ColConc    = "Conc"
	ColNum     = "Num"
)

// CalcAdsorption reloads a density snapshot and derives the adsorption
// concentrations: the mean molecule count inside the pore over the inner
// pore wall area as a surface concentration in µmol/m², and the mean count
// in the reservoirs over the bulk reservoir volume as a volumetric
// concentration in mmol/l. The raw mean counts of both partitions are
// reported alongside, under the Num column.
func CalcAdsorption(densLink string) (*Table, error) {
	s, err := LoadSnapshot(densLink)
	if err != nil {
		return nil, errDecorate(err, "CalcAdsorption")
	}
	p, err := densityProfile(s)
	if err != nil {
		return nil, errDecorate(err, "CalcAdsorption")
	}
	t := NewTable(ColConc, ColNum)
	sys := s.System
	if sys.Pore() {
		t.Set(RowMumolM2, ColConc, MolsToMumolM2(p.NumIn, sys.Surface(s.Entry)))
	}
	t.Set(RowMmolL, ColConc, MolsToMmolL(p.NumEx, sys.ResVolume()))
	if sys.Pore() {
		t.Set(RowIn, ColNum, p.NumIn)
	}
	t.Set(RowEx, ColNum, p.NumEx)
	return t, nil
}
