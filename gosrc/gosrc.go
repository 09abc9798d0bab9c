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

// Package gosrc writes the mixer lookup tables as a Go source file.
package gosrc

import (
	"fmt"
	"go/format"
	"go/token"
	"io"
	"strings"

	"github.com/jetsetilly/apumix/curated"
	"github.com/jetsetilly/apumix/logger"
	"github.com/jetsetilly/apumix/tables"
)

// the Go name and doc comment for each table.
var declarations = []struct {
	name  string
	doc   string
	table tables.Table
}{
	{name: "PulseTable", doc: "is indexed by pulse1 + pulse2.", table: tables.Pulse},
	{name: "TndTable", doc: "is indexed by 3*triangle + 2*noise + dmc.", table: tables.Tnd},
}

// Write Go source declaring the mixer lookup tables to output. The source
// belongs to the named package.
func Write(output io.Writer, pkg string) error {
	if !token.IsIdentifier(pkg) {
		return curated.Errorf("gosrc: invalid package name (%s)", pkg)
	}

	s := &strings.Builder{}
	s.WriteString("// Code generated by apumix. DO NOT EDIT.\n\n")
	s.WriteString(fmt.Sprintf("package %s\n", pkg))

	for _, d := range declarations {
		hex, err := d.table.Hex()
		if err != nil {
			return curated.Errorf("gosrc: %v", err)
		}
		s.WriteString(fmt.Sprintf("\n// %s %s\n", d.name, d.doc))
		s.WriteString(fmt.Sprintf("var %s = [%d]uint16{\n%s,\n}\n", d.name, d.table.Count, hex))
	}

	src, err := format.Source([]byte(s.String()))
	if err != nil {
		return curated.Errorf("gosrc: %v", err)
	}

	logger.Logf(logger.Allow, "gosrc", "%d bytes of source for package %s", len(src), pkg)

	_, err = output.Write(src)
	if err != nil {
		return curated.Errorf("gosrc: %v", err)
	}

	return nil
}
