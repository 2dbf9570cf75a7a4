/*
 * trj.go, part of poreana.
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

//Write!

// Writer writes a trj trajectory.
type Writer struct {
	f         *os.File
	h         io.WriteCloser
	natoms    int
	filename  string
	writeable bool
	prec      int
}

// NewWriter creates a trj file with natoms atoms per frame. frames may be
// zero if the frame count is not known up front. Only the first header map
// is written.
func NewWriter(name string, natoms, frames int, header ...map[string]string) (*Writer, error) {
	w := new(Writer)
	var err error
	w.f, err = os.Create(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"NewWriter"}, true}
	}
	w.h, err = anyNewWriter(name, w.f)
	if err != nil {
		return nil, Error{"can't open compressor: " + err.Error(), name, []string{"NewWriter"}, true}
	}
	w.natoms = natoms
	w.filename = name
	w.writeable = true
	w.prec = 2
	if len(header) > 0 && header[0] != nil {
		if p, ok := header[0]["prec"]; ok {
			prec, err := strconv.Atoi(p)
			if err != nil || prec <= 0 {
				return nil, Error{"invalid precision " + p, name, []string{"NewWriter"}, true}
			}
			w.prec = prec
		}
		for k, v := range header[0] {
			fmt.Fprintf(w.h, "%s=%v\n", k, v)
		}
	}
	if frames > 0 {
		fmt.Fprintf(w.h, "** %d %d\n", natoms, frames)
	} else {
		fmt.Fprintf(w.h, "** %d\n", natoms)
	}
	return w, nil
}

// WNext writes the next frame and, if given, the three box lengths.
func (w *Writer) WNext(coord *mat.Dense, box ...[]float64) error {
	if !w.writeable {
		return Error{trajUnIniWrite, w.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{nilCoordinates, w.filename, []string{"WNext"}, true}
	}
	r, c := coord.Dims()
	if r != w.natoms || c != 3 {
		return Error{fmt.Sprintf("%dx%d coordinates given, but %dx3 expected", r, c, w.natoms), w.filename, []string{"WNext"}, true}
	}
	p := math.Pow(10, float64(w.prec))
	for i := 0; i < r; i++ {
		fmt.Fprintf(w.h, "%d %d %d\n",
			int(math.RoundToEven(coord.At(i, 0)*p)),
			int(math.RoundToEven(coord.At(i, 1)*p)),
			int(math.RoundToEven(coord.At(i, 2)*p)))
	}
	if len(box) > 0 && len(box[0]) >= 3 {
		fmt.Fprintf(w.h, "* %v %v %v\n", box[0][0], box[0][1], box[0][2])
	} else {
		fmt.Fprintln(w.h, "*")
	}
	return nil
}

// Close flushes and closes the file. The Writer can not be used afterwards.
func (w *Writer) Close() error {
	if w == nil || !w.writeable {
		return nil
	}
	w.writeable = false
	if err := w.h.Close(); err != nil {
		w.f.Close()
		return Error{err.Error(), w.filename, []string{"Close"}, true}
	}
	if err := w.f.Close(); err != nil {
		return Error{err.Error(), w.filename, []string{"Close"}, true}
	}
	return nil
}

//Read!

// Reader reads a trj trajectory. It fulfills poreana.Traj and, when the
// header carries a frame count, poreana.FrameCounter.
type Reader struct {
	f        *os.File
	z        io.ReadCloser
	h        *bufio.Reader
	natoms   int
	nframes  int
	filename string
	prec     int
	readable bool
}

//zstd.Decoder has a Close without an error, so it is not an io.ReadCloser
//by itself.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

func anyNewWriter(name string, f io.Writer) (io.WriteCloser, error) {
	switch lastLetter(name) {
	case 'z':
		return gzip.NewWriter(f), nil
	case 'r':
		return flate.NewWriter(f, flate.DefaultCompression)
	default:
		return zstd.NewWriter(f)
	}
}

func anyNewReader(name string, f io.Reader) (io.ReadCloser, error) {
	switch lastLetter(name) {
	case 'z':
		return gzip.NewReader(f)
	case 'r':
		return flate.NewReader(f), nil
	default:
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return zstdql{r.Close, r}, nil
	}
}

func lastLetter(name string) byte {
	s := strings.ToLower(name)
	return s[len(s)-1]
}

// New opens a trj trajectory for reading and returns the handle and a map
// with the header metadata, or nil if there is none.
func New(name string) (*Reader, map[string]string, error) {
	r := new(Reader)
	r.natoms = -1
	r.filename = name
	r.prec = 2
	var err error
	r.f, err = os.Open(name)
	if err != nil {
		return nil, nil, Error{err.Error(), name, []string{"New"}, true}
	}
	r.z, err = anyNewReader(name, bufio.NewReader(r.f))
	if err != nil {
		return nil, nil, Error{"can't open decompressor: " + err.Error(), name, []string{"New"}, true}
	}
	r.h = bufio.NewReader(r.z)
	var m map[string]string
	for {
		str, err := r.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"can't read header: " + err.Error(), name, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			fields := strings.Fields(str)
			if len(fields) < 2 {
				return nil, nil, Error{fmt.Sprintf("can't read atom number from %q", str), name, []string{"New"}, true}
			}
			r.natoms, err = strconv.Atoi(fields[1])
			if err != nil {
				return nil, nil, Error{fmt.Sprintf("can't read atom number from %q: %v", str, err), name, []string{"New"}, true}
			}
			if len(fields) > 2 {
				r.nframes, err = strconv.Atoi(fields[2])
				if err != nil {
					return nil, nil, Error{fmt.Sprintf("can't read frame number from %q: %v", str, err), name, []string{"New"}, true}
				}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{fmt.Sprintf("malformed header line %q", str), name, []string{"New"}, true}
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[kv[0]] = kv[1]
	}
	if p, ok := m["prec"]; ok {
		prec, err := strconv.Atoi(p)
		if err != nil || prec <= 0 {
			return nil, nil, Error{"invalid precision " + p, name, []string{"New"}, true}
		}
		r.prec = prec
	}
	r.readable = true
	return r, m, nil
}

// Readable returns true if the handle can still be read from.
func (r *Reader) Readable() bool {
	return r.readable
}

// Len returns the number of atoms per frame.
func (r *Reader) Len() int {
	return r.natoms
}

// Frames returns the number of frames declared in the header, or zero if
// the header didn't carry one.
func (r *Reader) Frames() int {
	return r.nframes
}

// Next puts the coordinates of the next frame in c, or discards the frame
// if c is nil (it is still checked for correctness). If given, and present
// in the frame terminator, box receives the three box lengths. The end of
// the trajectory is reported as a poreana.LastFrameError.
func (r *Reader) Next(c *mat.Dense, box ...[]float64) error {
	if !r.readable {
		return Error{trajUnIniRead, r.filename, []string{"Next"}, true}
	}
	p := math.Pow(10, float64(r.prec))
	for i := 0; i < r.natoms; i++ {
		line, err := r.h.ReadString('\n')
		if err != nil {
			//EOF can only happen while reading the first atom
			if err == io.EOF && i == 0 && line == "" {
				r.Close()
				return newLastFrameError(r.filename, "Next")
			}
			return Error{err.Error(), r.filename, []string{"Next"}, true}
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return Error{fmt.Sprintf("ill-formed coordinate line %q", strings.TrimSuffix(line, "\n")), r.filename, []string{"Next"}, true}
		}
		for j, v := range fields {
			n, err := strconv.Atoi(v)
			if err != nil {
				return Error{fmt.Sprintf("can't parse coordinate %q: %v", v, err), r.filename, []string{"Next"}, true}
			}
			if c != nil {
				c.Set(i, j, float64(n)/p)
			}
		}
	}
	term, err := r.h.ReadString('\n')
	if err != nil {
		return Error{"can't read the frame terminator: " + err.Error(), r.filename, []string{"Next"}, true}
	}
	if term[0] != '*' {
		return Error{fmt.Sprintf("wrong number of atoms in frame, got %q", strings.TrimSuffix(term, "\n")), r.filename, []string{"Next"}, true}
	}
	if len(box) > 0 && len(box[0]) >= 3 {
		fields := strings.Fields(strings.TrimSpace(term))
		if len(fields) >= 4 {
			for j, v := range fields[1:4] {
				box[0][j], err = strconv.ParseFloat(v, 64)
				if err != nil {
					return Error{fmt.Sprintf("can't parse box length %q: %v", v, err), r.filename, []string{"Next"}, true}
				}
			}
		}
	}
	return nil
}

// Close closes the handle and marks it unreadable.
func (r *Reader) Close() {
	if !r.readable {
		return
	}
	r.z.Close()
	r.f.Close()
	r.readable = false
}

//Errors

// Error is the concrete trajectory error of this package. It fulfills
// poreana.Error and poreana.TrajError.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("trj file %s error: %s", err.filename, err.message)
}

//Decorate adds new information to the error.
func (err Error) Decorate(deco string) []string {
	//err.deco is a slice, hence a pointer, so the value receiver works.
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

//FileName returns the file the failing trajectory was read from.
func (err Error) FileName() string { return err.filename }

//Format returns the format associated to the error (always "trj").
func (err Error) Format() string { return "trj" }

//Critical returns true if the error is critical, false otherwise.
func (err Error) Critical() bool { return err.critical }

const (
	trajUnIniRead  = "traj object uninitialized to read"
	trajUnIniWrite = "traj object uninitialized to write"
	nilCoordinates = "given nil coordinates"
)

//lastFrameError implements poreana.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

func (err lastFrameError) NormalLastFrameTermination() {}

func (err lastFrameError) FileName() string { return err.fileName }

func (err lastFrameError) Error() string { return "EOF" }

func (err lastFrameError) Critical() bool { return false }

func (err lastFrameError) Format() string { return "trj" }

func (err lastFrameError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func newLastFrameError(filename, caller string) lastFrameError {
	return lastFrameError{fileName: filename, deco: []string{caller}}
}
