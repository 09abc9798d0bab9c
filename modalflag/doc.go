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

// Package modalflag wraps the flag package from the standard library. It adds
// program modes (and sub-modes), each with its own set of flags, in the style
// of the go command (go build, go test, etc.)
//
// Arguments are given to NewArgs() and then Parse() is called without
// arguments. This is so that modes can be parsed one level at a time:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.NewMode()
//	md.AddSubModes("TABLES", "GOSRC")
//
//	p, err := md.Parse()
//	if p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "TABLES":
//		md.NewMode()
//		log := md.AddBool("log", false, "echo log")
//		md.Parse()
//		...
//	}
//
// The first sub-mode in the list is the default and is selected if the next
// argument is not a sub-mode. Sub-mode comparisons are case insensitive.
//
// Each call to NewMode() starts a new set of flags. Flags added with the Add
// functions return a pointer to the value, which is set by the next call to
// Parse(). Arguments that are not flags or a sub-mode are returned by
// RemainingArgs() and GetArg().
//
// Path() returns the list of modes selected so far, separated by a slash.
package modalflag
