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

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/viniciusmorgado/walled/pkg/ports"
	"github.com/viniciusmorgado/walled/pkg/report"
	"github.com/viniciusmorgado/walled/pkg/socktab"
)

// runQuery dispatches to the reporter method matching protocol, range
// and used/free kind.
func runQuery(r *report.Reporter, proto socktab.Protocol, rng ports.Range, free bool) (ports.List, error) {
	switch {
	case proto == socktab.TCP && rng == ports.Privileged && !free:
		return r.PrivilegedTCPUsed()
	case proto == socktab.TCP && rng == ports.Privileged && free:
		return r.PrivilegedTCPFree()
	case proto == socktab.TCP && rng == ports.Unprivileged && !free:
		return r.UnprivilegedTCPUsed()
	case proto == socktab.TCP && rng == ports.Unprivileged && free:
		return r.UnprivilegedTCPFree()
	case proto == socktab.UDP && rng == ports.Privileged && !free:
		return r.PrivilegedUDPUsed()
	case proto == socktab.UDP && rng == ports.Privileged && free:
		return r.PrivilegedUDPFree()
	case proto == socktab.UDP && rng == ports.Unprivileged && !free:
		return r.UnprivilegedUDPUsed()
	default:
		return r.UnprivilegedUDPFree()
	}
}

func rangeName(rng ports.Range) string {
	if rng == ports.Privileged {
		return "privileged"
	}
	return "unprivileged"
}

// outputPorts prints a query result. Table format prints one port per
// line, or "none" when the result is absent; JSON mirrors the library's
// absent-vs-present contract with an explicit "present" field.
func outputPorts(kind string, proto socktab.Protocol, rng ports.Range, list ports.List, format string) error {
	switch format {
	case "json":
		output := map[string]interface{}{
			"query":   kind,
			"proto":   string(proto),
			"range":   rangeName(rng),
			"present": list.Present(),
			"count":   list.Len(),
			"ports":   list.Ports(),
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(output)
	case "table":
		if !list.Present() {
			fmt.Println("none")
			return nil
		}
		fmt.Println(formatPorts(list.Ports()))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// formatPorts renders ports comma-separated, e.g. "22,80,443".
func formatPorts(ps []uint16) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = fmt.Sprintf("%d", p)
	}
	return strings.Join(parts, ",")
}
