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

package ports

// List is the result of a port query: either absent, meaning the queried
// category holds no ports at all, or a non-empty ascending sequence of
// unique port numbers. Callers branch on Present, never on length; an
// empty category is always reported as absent rather than as a zero-length
// slice.
type List struct {
	ports []uint16
}

// NewList builds a List from ascending, de-duplicated ports. A nil or
// empty slice yields the absent List.
func NewList(ports []uint16) List {
	if len(ports) == 0 {
		return List{}
	}
	return List{ports: ports}
}

// Present reports whether the list holds any ports.
func (l List) Present() bool {
	return len(l.ports) > 0
}

// Ports returns the list's port numbers in ascending order, or nil when
// the list is absent.
func (l List) Ports() []uint16 {
	return l.ports
}

// Len returns the number of ports in the list.
func (l List) Len() int {
	return len(l.ports)
}
