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

package test

import (
	"fmt"
)

// RingWriter is an implementation of io.Writer that keeps only the most
// recent bytes written to it. Useful for capturing the tail of a long output.
type RingWriter struct {
	buffer []byte
	size   int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		size:   size,
		buffer: make([]byte, 0, size*2),
	}, nil
}

func (r *RingWriter) String() string {
	return string(r.buffer)
}

// Reset empties the ring writer's buffer
func (r *RingWriter) Reset() {
	r.buffer = r.buffer[:0]
}

// Write implements io.Writer
func (r *RingWriter) Write(p []byte) (n int, err error) {
	r.buffer = append(r.buffer, p...)
	if len(r.buffer) > r.size {
		r.buffer = append(r.buffer[:0], r.buffer[len(r.buffer)-r.size:]...)
	}
	return len(p), nil
}
