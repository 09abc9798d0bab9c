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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/apumix/curated"
	"github.com/jetsetilly/apumix/test"
)

const testPattern = "test: %d"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("wav: %v", curated.Errorf("wav: file not found"))
	test.ExpectEquality(t, e.Error(), "wav: file not found")

	// not adjacent so both parts remain
	e = curated.Errorf("wav: %v", curated.Errorf("gosrc: %v", curated.Errorf("wav: again")))
	test.ExpectEquality(t, e.Error(), "wav: gosrc: wav: again")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, "other: %d"))
	test.ExpectEquality(t, e.Error(), "test: 10")

	f := curated.Errorf("outer: %v", e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))

	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestIsAny(t *testing.T) {
	test.ExpectSuccess(t, curated.IsAny(curated.Errorf("curated")))
	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	plain := errors.New("plain")
	e := curated.Errorf("wrapped: %v", plain)
	test.ExpectSuccess(t, errors.Is(e, plain))
}
