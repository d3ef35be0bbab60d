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

// Package socktab parses the tabular socket-table text produced by the
// standard Linux socket utilities (ss, netstat) into structured records
// and extracts the set of listening ports per protocol.
package socktab

import (
	"strconv"
	"strings"

	"github.com/viniciusmorgado/walled/pkg/ports"
)

// Protocol identifies a transport protocol in a socket table.
type Protocol string

const (
	// TCP is the TCP transport protocol.
	TCP Protocol = "tcp"
	// UDP is the UDP transport protocol.
	UDP Protocol = "udp"
)

// Record is one parsed data row of a socket table. Records are plain
// values; they carry no reference back to the input text.
type Record struct {
	Protocol  Protocol
	LocalPort uint16
	State     string
}

// socketStates holds every state token ss emits. A row whose state
// column is not one of these is treated as a non-data line (headers,
// footers, truncated rows).
var socketStates = map[string]struct{}{
	"LISTEN":     {},
	"UNCONN":     {},
	"ESTAB":      {},
	"SYN-SENT":   {},
	"SYN-RECV":   {},
	"FIN-WAIT-1": {},
	"FIN-WAIT-2": {},
	"TIME-WAIT":  {},
	"CLOSE-WAIT": {},
	"LAST-ACK":   {},
	"CLOSING":    {},
	"CLOSED":     {},
}

// ParseLine parses a single socket-table line into a Record. The second
// return value is false for anything that is not a data row: blank lines,
// header lines, rows missing a recognizable state token or a usable
// local-address port. ParseLine is a pure function of its input.
func ParseLine(proto Protocol, line string) (Record, bool) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return Record{}, false
	}

	state, ok := stateToken(fields)
	if !ok {
		return Record{}, false
	}

	port, ok := localPort(fields)
	if !ok {
		return Record{}, false
	}

	return Record{Protocol: proto, LocalPort: port, State: state}, true
}

// stateToken finds the row's state column. ss places it first, or second
// when a Netid column is present (ss -tuln), so both leading fields are
// checked.
func stateToken(fields []string) (string, bool) {
	for _, f := range fields[:2] {
		if _, ok := socketStates[f]; ok {
			return f, true
		}
	}
	return "", false
}

// localPort extracts the port from the local-address column. The column
// position varies with ss flags, so the first field whose trailing
// ":port" segment parses to a valid port wins; the peer column never
// matches first because it follows the local column. Handles ipv4:port,
// [ipv6]:port and the wildcard hosts *, 0.0.0.0 and [::]. A wildcard
// port ("*:*") and port 0 are rejected.
func localPort(fields []string) (uint16, bool) {
	for _, f := range fields {
		idx := strings.LastIndex(f, ":")
		if idx < 0 || idx == len(f)-1 {
			continue
		}
		n, err := strconv.ParseUint(f[idx+1:], 10, 16)
		if err != nil || n == 0 {
			continue
		}
		return uint16(n), true
	}
	return 0, false
}

// Parse parses a full socket-table snapshot into records, one per data
// row. Malformed or non-data lines are skipped, never fatal; an input
// with zero data rows yields an empty slice.
func Parse(proto Protocol, text string) []Record {
	var records []Record
	for _, line := range strings.Split(text, "\n") {
		if rec, ok := ParseLine(proto, line); ok {
			records = append(records, rec)
		}
	}
	return records
}

// Listening reduces records to the set of ports with a listening socket.
// Duplicate ports collapse: an IPv4 and an IPv6 listener on the same
// numeric port count once. ss reports listening UDP sockets as UNCONN,
// so that state is accepted for UDP alongside LISTEN.
func Listening(records []Record) ports.Set {
	out := ports.NewSet()
	for _, rec := range records {
		if isListening(rec) {
			out.Add(rec.LocalPort)
		}
	}
	return out
}

func isListening(rec Record) bool {
	switch rec.State {
	case "LISTEN":
		return true
	case "UNCONN":
		return rec.Protocol == UDP
	default:
		return false
	}
}
