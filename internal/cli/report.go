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

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/viniciusmorgado/walled/pkg/ports"
	"github.com/viniciusmorgado/walled/pkg/socktab"
)

var (
	reportProto  string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize port usage across all ranges",
	Long: `Summarize listening and free port counts for the privileged and
unprivileged ranges of each protocol, with the listening ports listed.`,
	Example: `  # Full summary for TCP and UDP
  walled report

  # TCP only, as JSON
  walled report --proto tcp --format json`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportProto, "proto", "p", "all", "Protocol (tcp, udp, all)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "table", "Output format (table, json)")
}

// reportRow is one protocol/range bucket of the summary.
type reportRow struct {
	Proto string   `json:"proto"`
	Range string   `json:"range"`
	Used  int      `json:"used"`
	Free  int      `json:"free"`
	Ports []uint16 `json:"ports"`
}

func runReport(cmd *cobra.Command, args []string) error {
	var protos []socktab.Protocol
	switch reportProto {
	case "all":
		protos = []socktab.Protocol{socktab.TCP, socktab.UDP}
	default:
		proto, err := parseProto(reportProto)
		if err != nil {
			return err
		}
		protos = []socktab.Protocol{proto}
	}

	reporter := newReporter()
	var rows []reportRow
	for _, proto := range protos {
		for _, rng := range []ports.Range{ports.Privileged, ports.Unprivileged} {
			used, err := runQuery(reporter, proto, rng, false)
			if err != nil {
				return errors.Wrapf(err, "querying %s %s used ports", proto, rangeName(rng))
			}
			rows = append(rows, reportRow{
				Proto: string(proto),
				Range: rangeName(rng),
				Used:  used.Len(),
				Free:  rng.Size() - used.Len(),
				Ports: used.Ports(),
			})
		}
	}

	switch reportFormat {
	case "json":
		return outputReportJSON(rows)
	case "table":
		return outputReportTable(rows)
	default:
		return fmt.Errorf("unknown format: %s", reportFormat)
	}
}

func outputReportJSON(rows []reportRow) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func outputReportTable(rows []reportRow) error {
	// Print header
	fmt.Printf("%-6s %-13s %6s %6s  %s\n", "PROTO", "RANGE", "USED", "FREE", "LISTENING")
	fmt.Println(strings.Repeat("-", 72))

	for _, row := range rows {
		listening := "-"
		if len(row.Ports) > 0 {
			listening = truncate(formatPorts(row.Ports), 40)
		}
		fmt.Printf("%-6s %-13s %6d %6d  %s\n",
			row.Proto, row.Range, row.Used, row.Free, listening)
	}
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
