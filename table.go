/*
 * table.go, part of poreana.
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
	"math"
	"strings"
)

// Table is a small named-rows-by-named-columns collection of scalars, the
// terminal artifact the calculators report. Cells not set are NaN.
type Table struct {
	rows []string
	cols []string
	data map[string]map[string]float64
}

// NewTable returns an empty table with the given column names.
func NewTable(cols ...string) *Table {
	return &Table{cols: cols, data: make(map[string]map[string]float64)}
}

// Set stores a value, creating the row on first use. Row order is the order
// of first use.
func (t *Table) Set(row, col string, v float64) {
	if _, ok := t.data[row]; !ok {
		t.rows = append(t.rows, row)
		t.data[row] = make(map[string]float64)
	}
	t.data[row][col] = v
}

// Get returns a cell value, NaN if the cell was never set.
func (t *Table) Get(row, col string) float64 {
	r, ok := t.data[row]
	if !ok {
		return math.NaN()
	}
	v, ok := r[col]
	if !ok {
		return math.NaN()
	}
	return v
}

// Rows returns the row names in insertion order.
func (t *Table) Rows() []string {
	return t.rows
}

// Cols returns the column names.
func (t *Table) Cols() []string {
	return t.cols
}

func (t *Table) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s", "")
	for _, c := range t.cols {
		fmt.Fprintf(&b, "%14s", c)
	}
	b.WriteByte('\n')
	for _, r := range t.rows {
		fmt.Fprintf(&b, "%-10s", r)
		for _, c := range t.cols {
			v := t.Get(r, c)
			if math.IsNaN(v) {
				fmt.Fprintf(&b, "%14s", "-")
			} else {
				fmt.Fprintf(&b, "%14.6f", v)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
