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

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/apumix/curated"
)

// Format quantises values and returns them as hexadecimal literals. Every
// literal is six characters long: "0x" followed by four lowercase hex digits.
func Format(values []float64) []string {
	q := Quantise(values)
	s := make([]string, len(q))
	for i, v := range q {
		s[i] = fmt.Sprintf("0x%04x", v)
	}
	return s
}

// Rows groups literals into rows of rowWidth entries. Entries in a row are
// separated by ", " and rows are separated by ",\n". The final row may be
// shorter than rowWidth. There is no separator after the final row.
func Rows(literals []string, rowWidth int) (string, error) {
	if rowWidth <= 0 {
		return "", curated.Errorf("rows: invalid row width (%d)", rowWidth)
	}

	rows := make([]string, 0, (len(literals)+rowWidth-1)/rowWidth)
	for i := 0; i < len(literals); i += rowWidth {
		j := i + rowWidth
		if j > len(literals) {
			j = len(literals)
		}
		rows = append(rows, strings.Join(literals[i:j], ", "))
	}

	return strings.Join(rows, ",\n"), nil
}

// Raw returns a printable representation of the floating point values followed
// by the number of values. Each value is printed with the fewest digits that
// represent it exactly.
func Raw(values []float64) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf("[%s] %d", strings.Join(s, ", "), len(values))
}

// Hex returns the quantised table as rows of hexadecimal literals.
func (tb Table) Hex() (string, error) {
	s, err := Rows(Format(tb.Compute()), RowWidth)
	if err != nil {
		return "", curated.Errorf("%s: %v", tb.Name, err)
	}
	return s, nil
}

// Run prints the raw Pulse and Tnd tables followed by the hexadecimal rows of
// both tables.
func Run(output io.Writer) error {
	pulse := Pulse.Compute()
	tnd := Tnd.Compute()

	if _, err := fmt.Fprintln(output, Raw(pulse)); err != nil {
		return curated.Errorf("tables: %v", err)
	}
	if _, err := fmt.Fprintln(output, Raw(tnd)); err != nil {
		return curated.Errorf("tables: %v", err)
	}

	for _, tb := range []Table{Pulse, Tnd} {
		s, err := tb.Hex()
		if err != nil {
			return curated.Errorf("tables: %v", err)
		}
		if _, err := fmt.Fprintln(output, s); err != nil {
			return curated.Errorf("tables: %v", err)
		}
	}

	return nil
}
