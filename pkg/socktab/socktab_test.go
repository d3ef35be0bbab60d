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

package socktab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Run("parses ipv4 listener", func(t *testing.T) {
		rec, ok := ParseLine(TCP, "LISTEN 0      128          0.0.0.0:22        0.0.0.0:*")
		require.True(t, ok)
		assert.Equal(t, TCP, rec.Protocol)
		assert.Equal(t, uint16(22), rec.LocalPort)
		assert.Equal(t, "LISTEN", rec.State)
	})

	t.Run("parses bracketed ipv6 listener", func(t *testing.T) {
		rec, ok := ParseLine(TCP, "LISTEN 0      128             [::]:80           [::]:*")
		require.True(t, ok)
		assert.Equal(t, uint16(80), rec.LocalPort)
	})

	t.Run("parses loopback-scoped ipv6", func(t *testing.T) {
		rec, ok := ParseLine(TCP, "LISTEN 0      511        [::1]:6379          [::]:*")
		require.True(t, ok)
		assert.Equal(t, uint16(6379), rec.LocalPort)
	})

	t.Run("parses wildcard host", func(t *testing.T) {
		rec, ok := ParseLine(TCP, "LISTEN 0      4096               *:8443             *:*")
		require.True(t, ok)
		assert.Equal(t, uint16(8443), rec.LocalPort)
	})

	t.Run("parses row with netid column", func(t *testing.T) {
		rec, ok := ParseLine(UDP, "udp   UNCONN 0      0          0.0.0.0:68        0.0.0.0:*")
		require.True(t, ok)
		assert.Equal(t, uint16(68), rec.LocalPort)
		assert.Equal(t, "UNCONN", rec.State)
	})

	t.Run("rejects blank line", func(t *testing.T) {
		_, ok := ParseLine(TCP, "")
		assert.False(t, ok)

		_, ok = ParseLine(TCP, "   \t  ")
		assert.False(t, ok)
	})

	t.Run("rejects header line", func(t *testing.T) {
		_, ok := ParseLine(TCP, "State  Recv-Q Send-Q Local Address:Port Peer Address:Port Process")
		assert.False(t, ok)

		_, ok = ParseLine(TCP, "Netid State Recv-Q Send-Q Local Address:Port Peer Address:Port")
		assert.False(t, ok)
	})

	t.Run("rejects row with unknown state token", func(t *testing.T) {
		_, ok := ParseLine(TCP, "BOGUS 0 128 0.0.0.0:22 0.0.0.0:*")
		assert.False(t, ok)
	})

	t.Run("rejects truncated row", func(t *testing.T) {
		_, ok := ParseLine(TCP, "LISTEN 0 128")
		assert.False(t, ok)
	})

	t.Run("rejects wildcard port", func(t *testing.T) {
		_, ok := ParseLine(TCP, "LISTEN 0 128 *:* *:*")
		assert.False(t, ok)
	})

	t.Run("rejects port zero", func(t *testing.T) {
		_, ok := ParseLine(TCP, "LISTEN 0 128 0.0.0.0:0 0.0.0.0:*")
		assert.False(t, ok)
	})

	t.Run("rejects out-of-range port", func(t *testing.T) {
		_, ok := ParseLine(TCP, "LISTEN 0 128 0.0.0.0:70000 0.0.0.0:*")
		assert.False(t, ok)
	})
}

func TestParse(t *testing.T) {
	t.Run("skips noise without aborting", func(t *testing.T) {
		text := "State  Recv-Q Send-Q Local Address:Port Peer Address:Port\n" +
			"LISTEN 0      128          0.0.0.0:22        0.0.0.0:*\n" +
			"\n" +
			"garbage line that is not a socket row at all\n" +
			"LISTEN 0      511        127.0.0.1:631       0.0.0.0:*\n"

		records := Parse(TCP, text)
		require.Len(t, records, 2)
		assert.Equal(t, uint16(22), records[0].LocalPort)
		assert.Equal(t, uint16(631), records[1].LocalPort)
	})

	t.Run("header-only input yields zero records", func(t *testing.T) {
		records := Parse(TCP, "Netid State Recv-Q Send-Q Local Address:Port Peer Address:Port\n")
		assert.Empty(t, records)
	})

	t.Run("empty input yields zero records", func(t *testing.T) {
		assert.Empty(t, Parse(TCP, ""))
	})
}

func TestListening(t *testing.T) {
	t.Run("keeps only listening tcp states", func(t *testing.T) {
		records := []Record{
			{Protocol: TCP, LocalPort: 22, State: "LISTEN"},
			{Protocol: TCP, LocalPort: 5432, State: "ESTAB"},
			{Protocol: TCP, LocalPort: 8080, State: "TIME-WAIT"},
		}
		set := Listening(records)
		assert.Equal(t, []uint16{22}, set.Sorted())
	})

	t.Run("udp unconn counts as listening", func(t *testing.T) {
		records := []Record{
			{Protocol: UDP, LocalPort: 53, State: "UNCONN"},
			{Protocol: UDP, LocalPort: 123, State: "ESTAB"},
		}
		set := Listening(records)
		assert.Equal(t, []uint16{53}, set.Sorted())
	})

	t.Run("tcp unconn does not count as listening", func(t *testing.T) {
		records := []Record{
			{Protocol: TCP, LocalPort: 9000, State: "UNCONN"},
		}
		assert.Equal(t, 0, Listening(records).Len())
	})

	t.Run("dual-stack bindings collapse to one port", func(t *testing.T) {
		records := []Record{
			{Protocol: TCP, LocalPort: 443, State: "LISTEN"},
			{Protocol: TCP, LocalPort: 443, State: "LISTEN"},
		}
		set := Listening(records)
		assert.Equal(t, 1, set.Len())
		assert.True(t, set.Contains(443))
	})
}
