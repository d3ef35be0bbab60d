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

// Package report answers point-in-time queries about which TCP and UDP
// ports of a Linux host are listening and which are free, split into the
// privileged (1-1023) and unprivileged (1024-65535) ranges.
//
// Every query is one synchronous pass: acquire a fresh socket-table
// snapshot from the provider, parse it, extract listening ports, and run
// the set arithmetic for the requested range. Nothing is cached and no
// state is shared between calls, so two sibling queries see two
// independent snapshots and concurrent callers need no coordination.
package report

import (
	"github.com/viniciusmorgado/walled/pkg/ports"
	"github.com/viniciusmorgado/walled/pkg/socktab"
)

// Reporter runs port queries against a socket-table provider.
type Reporter struct {
	provider Provider
}

// New creates a Reporter backed by the given provider. A nil provider
// selects the default ss-backed SSProvider.
func New(provider Provider) *Reporter {
	if provider == nil {
		provider = SSProvider{}
	}
	return &Reporter{provider: provider}
}

// snapshot fetches one socket table and reduces it to the set of
// listening ports. Zero data rows is not an error: it means nothing is
// listening. Only provider failures propagate.
func (r *Reporter) snapshot(proto socktab.Protocol) (ports.Set, error) {
	text, err := r.provider.SocketTable(proto)
	if err != nil {
		return nil, err
	}
	return socktab.Listening(socktab.Parse(proto, text)), nil
}

func (r *Reporter) used(proto socktab.Protocol, rng ports.Range) (ports.List, error) {
	listening, err := r.snapshot(proto)
	if err != nil {
		return ports.List{}, err
	}
	return ports.NewList(rng.Intersect(listening).Sorted()), nil
}

func (r *Reporter) free(proto socktab.Protocol, rng ports.Range) (ports.List, error) {
	listening, err := r.snapshot(proto)
	if err != nil {
		return ports.List{}, err
	}
	return ports.NewList(rng.Free(listening)), nil
}

// PrivilegedTCPUsed returns the privileged TCP ports currently listening.
func (r *Reporter) PrivilegedTCPUsed() (ports.List, error) {
	return r.used(socktab.TCP, ports.Privileged)
}

// PrivilegedTCPFree returns the privileged TCP ports not currently listening.
func (r *Reporter) PrivilegedTCPFree() (ports.List, error) {
	return r.free(socktab.TCP, ports.Privileged)
}

// UnprivilegedTCPUsed returns the unprivileged TCP ports currently listening.
func (r *Reporter) UnprivilegedTCPUsed() (ports.List, error) {
	return r.used(socktab.TCP, ports.Unprivileged)
}

// UnprivilegedTCPFree returns the unprivileged TCP ports not currently listening.
func (r *Reporter) UnprivilegedTCPFree() (ports.List, error) {
	return r.free(socktab.TCP, ports.Unprivileged)
}

// PrivilegedUDPUsed returns the privileged UDP ports currently listening.
func (r *Reporter) PrivilegedUDPUsed() (ports.List, error) {
	return r.used(socktab.UDP, ports.Privileged)
}

// PrivilegedUDPFree returns the privileged UDP ports not currently listening.
func (r *Reporter) PrivilegedUDPFree() (ports.List, error) {
	return r.free(socktab.UDP, ports.Privileged)
}

// UnprivilegedUDPUsed returns the unprivileged UDP ports currently listening.
func (r *Reporter) UnprivilegedUDPUsed() (ports.List, error) {
	return r.used(socktab.UDP, ports.Unprivileged)
}

// UnprivilegedUDPFree returns the unprivileged UDP ports not currently listening.
func (r *Reporter) UnprivilegedUDPFree() (ports.List, error) {
	return r.free(socktab.UDP, ports.Unprivileged)
}
