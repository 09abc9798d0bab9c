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

package tables

// Formula returns the mixer output level for the sum of channel levels n.
type Formula func(n int) float64

// Table describes one of the mixer lookup tables.
type Table struct {
	Name    string
	Count   int
	Formula Formula
}

// RowWidth is the number of literals in each row of a printed table.
const RowWidth = 6

// Pulse is the lookup table for the two pulse channels, indexed by
// pulse1 + pulse2.
var Pulse = Table{
	Name:  "pulse",
	Count: 31,
	Formula: func(n int) float64 {
		if n == 0 {
			return 0
		}
		return 95.52 / (8128.0/float64(n) + 100)
	},
}

// Tnd is the lookup table for the triangle, noise and DMC channels, indexed by
// 3*triangle + 2*noise + dmc.
var Tnd = Table{
	Name:  "tnd",
	Count: 203,
	Formula: func(n int) float64 {
		if n == 0 {
			return 0
		}
		return 163.67 / (24329.0/float64(n) + 100)
	},
}

// Compute evaluates formula for every n from 0 to count-1. Position i of the
// returned slice holds the value for n == i.
func Compute(formula Formula, count int) []float64 {
	values := make([]float64, count)
	for n := range values {
		values[n] = formula(n)
	}
	return values
}

// Compute the floating point values of the table.
func (tb Table) Compute() []float64 {
	return Compute(tb.Formula, tb.Count)
}

// the scaling value for quantisation. the largest value a uint16 can hold.
const maxQuantised = (1 << 16) - 1

// Quantise scales each value by 65535 and truncates to a uint16. Values must
// be in the range [0.0, 1.0).
func Quantise(values []float64) []uint16 {
	q := make([]uint16, len(values))
	for i, v := range values {
		q[i] = uint16(v * maxQuantised)
	}
	return q
}
