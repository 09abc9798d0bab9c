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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions are the same but stop the test with
// t.Fatalf().
//
// How the success and failure functions treat nil is worth noting. A nil value
// is considered a success, which means ExpectFailure(t, nil) fails. This
// follows how errors work (nil meaning no error) and is what we want nearly all
// of the time.
//
// The Writer type implements io.Writer and is used to capture output. The
// Compare() function can then be used to test the captured output.
package test
