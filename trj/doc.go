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

//Package trj implements a simple compressed text trajectory format, enough
//to feed the poreana sampler from disk and to produce fixtures for it. It is
//not meant to replace the established binary formats.
//
//A trj file may only contain ASCII. It starts with a header of key=value
//lines, terminated by a line "** natoms [nframes]" carrying the number of
//atoms per frame and, optionally, the number of frames. Each frame is natoms
//lines of three integers, the coordinates in nm scaled by 10^prec (prec=2
//unless the header says otherwise), followed by a terminator line starting
//with "*", optionally carrying the three box lengths in nm. The whole file
//is compressed; the compressor is chosen by the last letter of the file
//name: 'z' for gzip, 'r' for raw deflate, anything else for zstandard.
package trj
