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

package report

import (
	"bytes"
	"os/exec"

	"github.com/cockroachdb/errors"

	"github.com/viniciusmorgado/walled/pkg/socktab"
)

// Provider produces one raw socket-table snapshot for a protocol. The
// core never spawns processes itself; injecting the provider keeps the
// pipeline deterministic under test.
type Provider interface {
	SocketTable(proto socktab.Protocol) (string, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(proto socktab.Protocol) (string, error)

// SocketTable calls f.
func (f ProviderFunc) SocketTable(proto socktab.Protocol) (string, error) {
	return f(proto)
}

// SSProvider is the default Provider. It invokes ss restricted to
// listening sockets, numeric ports, no header (-tlnH for TCP, -ulnH for
// UDP), with no shell in between. Stderr is discarded.
type SSProvider struct{}

// SocketTable runs ss for the given protocol and returns its stdout.
// A failure to start the command yields ErrProviderUnavailable; a
// non-zero exit yields ErrProviderFailed.
func (SSProvider) SocketTable(proto socktab.Protocol) (string, error) {
	arg := "-tlnH"
	if proto == socktab.UDP {
		arg = "-ulnH"
	}

	var stdout bytes.Buffer
	cmd := exec.Command("ss", arg)
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", errors.Mark(
				errors.Wrapf(err, "ss %s exited with status %d", arg, exitErr.ExitCode()),
				ErrProviderFailed)
		}
		return "", errors.Mark(errors.Wrapf(err, "starting ss %s", arg), ErrProviderUnavailable)
	}
	return stdout.String(), nil
}
