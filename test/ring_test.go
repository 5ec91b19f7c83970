// This file is part of MyMig.
//
// MyMig is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MyMig is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MyMig.  If not, see <https://www.gnu.org/licenses/>.

package test_test

import (
	"testing"

	"github.com/mymig/mymig/test"
)

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)

	// ring writer starts off with the empty string
	test.ExpectEquality(t, r.String(), "")

	r.Write([]byte("abcde"))
	test.ExpectEquality(t, r.String(), "abcde")
	r.Write([]byte("fgh"))
	test.ExpectEquality(t, r.String(), "abcdefgh")

	// total written is the same size as the buffer
	r.Write([]byte("ij"))
	test.ExpectEquality(t, r.String(), "abcdefghij")

	// beyond the size of the buffer
	r.Write([]byte("kl"))
	test.ExpectEquality(t, r.String(), "cdefghijkl")
	r.Write([]byte("mn"))
	test.ExpectEquality(t, r.String(), "efghijklmn")

	// exactly the length of the buffer when there is already content
	r.Write([]byte("1234567890"))
	test.ExpectEquality(t, r.String(), "1234567890")

	// longer than the buffer
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")
}

func TestRingWriterSize(t *testing.T) {
	_, err := test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}

func TestCompareWriter(t *testing.T) {
	w := &test.CompareWriter{}
	w.Write([]byte("hello "))
	w.Write([]byte("world"))
	test.ExpectSuccess(t, w.Compare("hello world"))
	w.Clear()
	test.ExpectSuccess(t, w.Compare(""))
}
