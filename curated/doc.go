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

// Package curated wraps the plain Go error type. Errors created with Errorf()
// remember the pattern they were created with, so that a caller can ask
// whether an error is of a particular kind without string matching on the
// final message:
//
//	e := curated.Errorf("rows: invalid row width (%d)", 0)
//
//	if curated.Is(e, "rows: invalid row width (%d)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but looks through the whole chain of wrapped
// curated errors:
//
//	f := curated.Errorf("gosrc: %v", e)
//
//	if curated.Has(f, "rows: invalid row width (%d)") {
//		fmt.Println("true")
//	}
//
// Error() normalises the chain so that adjacent duplicate parts are removed. A
// chain is a series of parts separated by ": ". Wrapping an error with the
// same tag that it already starts with does not produce "tag: tag: detail".
//
// IsAny() answers whether an error was created by Errorf() at all. In practice
// that is the difference between an error we expected to happen and one that
// we didn't.
package curated
