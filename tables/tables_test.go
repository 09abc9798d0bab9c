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

package tables_test

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/jetsetilly/apumix/curated"
	"github.com/jetsetilly/apumix/tables"
	"github.com/jetsetilly/apumix/test"
)

func TestTableLength(t *testing.T) {
	test.ExpectEquality(t, len(tables.Pulse.Compute()), 31)
	test.ExpectEquality(t, len(tables.Tnd.Compute()), 203)
}

func TestZeroEntry(t *testing.T) {
	test.ExpectEquality(t, tables.Pulse.Compute()[0], 0.0)
	test.ExpectEquality(t, tables.Tnd.Compute()[0], 0.0)
}

func TestFirstEntry(t *testing.T) {
	// a variable so that the expected values are calculated at run time and
	// not as exact constant expressions
	n := 1.0

	pulse := tables.Pulse.Compute()
	test.ExpectEquality(t, pulse[1], 95.52/(8128.0/n+100))
	test.ExpectApproximate(t, pulse[1], 0.011609, 0.000001)
	test.ExpectEquality(t, tables.Format(pulse)[1], "0x02f8")

	// the value given by rounding rather than truncating
	test.ExpectInequality(t, tables.Format(pulse)[1], "0x02f9")

	tnd := tables.Tnd.Compute()
	test.ExpectEquality(t, tnd[1], 163.67/(24329.0/n+100))
	test.ExpectApproximate(t, tnd[1], 0.0066998, 0.0000001)
	test.ExpectEquality(t, tables.Format(tnd)[1], "0x01b7")
}

func TestCompute(t *testing.T) {
	v := tables.Compute(func(n int) float64 { return float64(n) / 10 }, 4)
	test.DemandEquality(t, len(v), 4)
	for i := range v {
		test.ExpectEquality(t, v[i], float64(i)/10)
	}
}

func TestQuantise(t *testing.T) {
	q := tables.Quantise([]float64{0.0, 0.5, 0.99999, 1.0 / 65535, 0.9999999})
	test.ExpectEquality(t, q[0], uint16(0))

	// truncation and not rounding. 0.5 * 65535 is 32767.5
	test.ExpectEquality(t, q[1], uint16(32767))
	test.ExpectEquality(t, q[2], uint16(65534))
	test.ExpectEquality(t, q[3], uint16(1))
	test.ExpectEquality(t, q[4], uint16(65534))
}

func TestFormat(t *testing.T) {
	s := tables.Format([]float64{0.0, 0.5, 65535.0 / 65536})
	test.ExpectEquality(t, s[0], "0x0000")
	test.ExpectEquality(t, s[1], "0x7fff")
	test.ExpectEquality(t, s[2], "0xfffe")

	for _, tb := range []tables.Table{tables.Pulse, tables.Tnd} {
		for i, l := range tables.Format(tb.Compute()) {
			test.ExpectEquality(t, len(l), 6, tb.Name, i)
			test.ExpectSuccess(t, strings.HasPrefix(l, "0x"), tb.Name, i)
			test.ExpectEquality(t, l, strings.ToLower(l), tb.Name, i)
		}
	}
}

func TestReconstruction(t *testing.T) {
	for _, tb := range []tables.Table{tables.Pulse, tables.Tnd} {
		values := tb.Compute()
		for i, l := range tables.Format(values) {
			v, err := strconv.ParseUint(l[2:], 16, 16)
			test.DemandSuccess(t, err, tb.Name, i)
			test.ExpectApproximate(t, float64(v)/65535, values[i], 1.0/65535, tb.Name, i)
		}
	}
}

func TestRows(t *testing.T) {
	rows := func(n int) []string {
		s, err := tables.Rows(tables.Format(make([]float64, n)), 6)
		test.DemandSuccess(t, err)
		return strings.Split(s, "\n")
	}

	r := rows(31)
	test.DemandEquality(t, len(r), 6)
	for _, l := range r[:5] {
		test.ExpectEquality(t, l, "0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000,")
	}
	test.ExpectEquality(t, r[5], "0x0000")

	r = rows(203)
	test.DemandEquality(t, len(r), 34)
	test.ExpectEquality(t, r[33], "0x0000, 0x0000, 0x0000, 0x0000, 0x0000")

	r = rows(12)
	test.DemandEquality(t, len(r), 2)
	test.ExpectEquality(t, strings.HasSuffix(r[1], ","), false)
}

func TestRowsEdgeCases(t *testing.T) {
	s, err := tables.Rows([]string{}, 6)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")

	s, err = tables.Rows([]string{"a", "b", "c"}, 1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "a,\nb,\nc")

	_, err = tables.Rows([]string{"a"}, 0)
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, "rows: invalid row width (%d)"))
}

func TestRaw(t *testing.T) {
	test.ExpectEquality(t, tables.Raw([]float64{0, 0.5, 0.25}), "[0, 0.5, 0.25] 3")
	test.ExpectEquality(t, tables.Raw([]float64{}), "[] 0")
}

func TestRun(t *testing.T) {
	expected, err := os.ReadFile("testdata/tables.txt")
	test.DemandSuccess(t, err)

	tw := &test.Writer{}
	test.DemandSuccess(t, tables.Run(tw))
	test.ExpectEquality(t, tw.String(), string(expected))

	// running twice produces identical output
	tw2 := &test.Writer{}
	test.DemandSuccess(t, tables.Run(tw2))
	test.ExpectEquality(t, tw2.String(), tw.String())
}
