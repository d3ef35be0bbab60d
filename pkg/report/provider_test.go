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

//go:build linux

package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viniciusmorgado/walled/pkg/socktab"
)

// fakeSS installs a stub ss binary at the front of PATH for the duration
// of the test.
func fakeSS(t *testing.T, script string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "ss")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestSSProvider(t *testing.T) {
	t.Run("returns stdout on success", func(t *testing.T) {
		fakeSS(t, `echo "LISTEN 0 128 0.0.0.0:22 0.0.0.0:*"`)

		out, err := SSProvider{}.SocketTable(socktab.TCP)
		require.NoError(t, err)
		assert.Contains(t, out, "0.0.0.0:22")
	})

	t.Run("selects udp flags for udp", func(t *testing.T) {
		fakeSS(t, `echo "$@"`)

		out, err := SSProvider{}.SocketTable(socktab.UDP)
		require.NoError(t, err)
		assert.Contains(t, out, "-ulnH")

		out, err = SSProvider{}.SocketTable(socktab.TCP)
		require.NoError(t, err)
		assert.Contains(t, out, "-tlnH")
	})

	t.Run("non-zero exit maps to ErrProviderFailed", func(t *testing.T) {
		fakeSS(t, "exit 255")

		_, err := SSProvider{}.SocketTable(socktab.TCP)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrProviderFailed))
		assert.Contains(t, err.Error(), "255")
	})

	t.Run("missing binary maps to ErrProviderUnavailable", func(t *testing.T) {
		t.Setenv("PATH", t.TempDir())

		_, err := SSProvider{}.SocketTable(socktab.TCP)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrProviderUnavailable))
	})
}
