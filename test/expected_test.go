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

package test_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jetsetilly/apumix/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)

	// the hex literal form used by the tables package
	test.ExpectEquality(t, "0x02f8", fmt.Sprintf("0x%04x", 0x2f8))
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
	test.ExpectInequality(t, "0x02f8", fmt.Sprintf("%#06x", 0x2f8))
}

func TestDemandFailure(t *testing.T) {
	test.DemandFailure(t, false)
	test.DemandFailure(t, errors.New("test"))
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10, 11, 1)
	test.ExpectApproximate(t, 0.5, 0.5001, 0.001)
}

func TestWriter(t *testing.T) {
	tw := &test.Writer{}
	test.ExpectSuccess(t, tw.Compare(""))
	fmt.Fprint(tw, "foo")
	fmt.Fprint(tw, "bar")
	test.ExpectSuccess(t, tw.Compare("foobar"))
	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
