// Copyright Walled Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package ports provides port ranges, port sets, and the set arithmetic
// used to compute which ports of a range are in use and which are free.
package ports

import "sort"

const (
	// MinPort is the lowest valid port number.
	MinPort = 1
	// MaxPort is the highest valid port number.
	MaxPort = 65535
)

// Range is a fixed, inclusive interval of port numbers.
type Range struct {
	Lo uint16
	Hi uint16
}

var (
	// Privileged covers ports 1-1023, conventionally reserved for
	// elevated-privilege processes.
	Privileged = Range{Lo: 1, Hi: 1023}
	// Unprivileged covers ports 1024-65535.
	Unprivileged = Range{Lo: 1024, Hi: 65535}
)

// Contains reports whether port falls inside the range.
func (r Range) Contains(port uint16) bool {
	return port >= r.Lo && port <= r.Hi
}

// Size returns the number of ports in the range.
func (r Range) Size() int {
	return int(r.Hi) - int(r.Lo) + 1
}

// Intersect returns the subset of s that falls inside the range.
func (r Range) Intersect(s Set) Set {
	out := NewSet()
	for port := range s {
		if r.Contains(port) {
			out.Add(port)
		}
	}
	return out
}

// Free returns the ports of the range that are not in used, ascending.
// It walks the range once over a fixed-size presence table, so output
// order never depends on the order used was built in.
func (r Range) Free(used Set) []uint16 {
	var present [MaxPort + 1]bool
	inRange := 0
	for port := range used {
		present[port] = true
		if r.Contains(port) {
			inRange++
		}
	}

	free := make([]uint16, 0, r.Size()-inRange)
	for p := int(r.Lo); p <= int(r.Hi); p++ {
		if !present[p] {
			free = append(free, uint16(p))
		}
	}
	return free
}

// Set is an unordered collection of unique port numbers.
type Set map[uint16]struct{}

// NewSet creates a set containing the given ports.
func NewSet(ports ...uint16) Set {
	s := make(Set, len(ports))
	for _, p := range ports {
		s.Add(p)
	}
	return s
}

// Add inserts a port into the set. Port 0 is not a valid port number
// and is ignored.
func (s Set) Add(port uint16) {
	if port == 0 {
		return
	}
	s[port] = struct{}{}
}

// Contains reports whether the set holds the given port.
func (s Set) Contains(port uint16) bool {
	_, ok := s[port]
	return ok
}

// Len returns the number of ports in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the set's ports in ascending order.
func (s Set) Sorted() []uint16 {
	out := make([]uint16, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
