/*
 * trj_test.go, part of poreana.
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

package trj

import (
	"fmt"
	"math"
	"path/filepath"
	"testing"

	poreana "github.com/marc310896/PoreAna"
	"gonum.org/v1/gonum/mat"
)

func writeTestTraj(Te *testing.T, name string, frames int) string {
	path := filepath.Join(Te.TempDir(), name)
	w, err := NewWriter(path, 2, frames, map[string]string{"prec": "3"})
	if err != nil {
		Te.Fatal(err)
	}
	c := mat.NewDense(2, 3, nil)
	for f := 0; f < frames; f++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				c.Set(i, j, float64(f)+0.001*float64(i*3+j))
			}
		}
		if err := w.WNext(c, []float64{10, 10, 20}); err != nil {
			Te.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		Te.Fatal(err)
	}
	return path
}

func TestTrjRoundTrip(Te *testing.T) {
	fmt.Println("trj round trip test!")
	//one name per compressor
	for _, name := range []string{"test.trj", "test.gz", "test.trr"} {
		path := writeTestTraj(Te, name, 5)
		r, header, err := New(path)
		if err != nil {
			Te.Fatal(err)
		}
		if header["prec"] != "3" {
			Te.Errorf("%s: header lost, got %v", name, header)
		}
		if r.Len() != 2 {
			Te.Errorf("%s: %d atoms, want 2", name, r.Len())
		}
		if r.Frames() != 5 {
			Te.Errorf("%s: %d frames declared, want 5", name, r.Frames())
		}
		c := mat.NewDense(2, 3, nil)
		box := []float64{0, 0, 0}
		frames := 0
		for {
			err := r.Next(c, box)
			if err != nil {
				if _, ok := err.(poreana.LastFrameError); ok {
					break
				}
				Te.Fatal(err)
			}
			for i := 0; i < 2; i++ {
				for j := 0; j < 3; j++ {
					want := float64(frames) + 0.001*float64(i*3+j)
					if math.Abs(c.At(i, j)-want) > 5e-4 {
						Te.Fatalf("%s: frame %d atom %d coord %d: %v, want %v", name, frames, i, j, c.At(i, j), want)
					}
				}
			}
			if box[2] != 20 {
				Te.Errorf("%s: box not carried through, got %v", name, box)
			}
			frames++
		}
		if frames != 5 {
			Te.Errorf("%s: read %d frames, want 5", name, frames)
		}
		if r.Readable() {
			Te.Errorf("%s: still readable after the last frame", name)
		}
	}
}

func TestTrjDiscard(Te *testing.T) {
	path := writeTestTraj(Te, "test.trj", 3)
	r, _, err := New(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	//nil output skips the frame but still checks it
	if err := r.Next(nil); err != nil {
		Te.Fatal(err)
	}
	c := mat.NewDense(2, 3, nil)
	if err := r.Next(c); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(c.At(0, 0)-1) > 5e-4 {
		Te.Errorf("discard read the wrong frame: %v", c.At(0, 0))
	}
}

func TestTrjErrors(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "test.trj")
	w, err := NewWriter(path, 3, 0)
	if err != nil {
		Te.Fatal(err)
	}
	//wrong shape
	if err := w.WNext(mat.NewDense(2, 3, nil)); err == nil {
		Te.Error("2 atoms into a 3 atom trajectory should fail")
	}
	if err := w.WNext(nil); err == nil {
		Te.Error("nil coordinates should fail")
	}
	w.Close()
	if err := w.WNext(mat.NewDense(3, 3, nil)); err == nil {
		Te.Error("writing after Close should fail")
	}
	//an empty trajectory ends immediately, but normally
	r, _, err := New(path)
	if err != nil {
		Te.Fatal(err)
	}
	err = r.Next(mat.NewDense(3, 3, nil))
	if _, ok := err.(poreana.LastFrameError); !ok {
		Te.Errorf("want a last frame error, got %v", err)
	}
}
