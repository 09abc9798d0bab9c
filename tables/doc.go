// This file is part of Apumix.
//
// Apumix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Apumix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Apumix.  If not, see <https://www.gnu.org/licenses/>.

// Package tables generates the lookup tables used by the non-linear mixer of
// the NES APU (the audio processing unit of the Ricoh 2A03).
//
// The mixer is described by two formulas. The output of the two pulse channels
// is:
//
//	pulse_out = 95.52 / (8128.0 / (pulse1 + pulse2) + 100)
//
// and the output of the triangle, noise and DMC channels is approximated by:
//
//	tnd_out = 163.67 / (24329.0 / (3 * triangle + 2 * noise + dmc) + 100)
//
// Both are zero when the sum of channel levels is zero. Because the sum of the
// channel levels is a small integer the formulas can be evaluated once for
// every possible sum and stored. The Pulse table has 31 entries (two channels
// of 0 to 15) and the Tnd table has 203 entries (3*15 + 2*15 + 127).
//
// Values are quantised to 16 bits by scaling by 65535 and truncating. The
// Format() and Rows() functions produce hexadecimal literals suitable for
// pasting into source code:
//
//	0x0000, 0x02f8, 0x05df, 0x08b4, 0x0b78, 0x0e2b,
//	0x10cf, 0x1363, 0x15e9, 0x1860, 0x1ac9, 0x1d25,
//	...
package tables
