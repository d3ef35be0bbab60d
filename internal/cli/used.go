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
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	usedProto  string
	usedRange  string
	usedFormat string
)

var usedCmd = &cobra.Command{
	Use:   "used",
	Short: "List ports currently listening",
	Long: `List the ports of a range that currently have a listening socket.

The result is a single point-in-time snapshot. Duplicate bindings of the
same numeric port (IPv4 and IPv6) are reported once.`,
	Example: `  # Privileged TCP ports in use
  walled used --proto tcp --range privileged

  # Unprivileged UDP ports in use, as JSON
  walled used --proto udp --range unprivileged --format json`,
	RunE: runUsed,
}

func init() {
	usedCmd.Flags().StringVarP(&usedProto, "proto", "p", "tcp", "Protocol (tcp, udp)")
	usedCmd.Flags().StringVarP(&usedRange, "range", "r", "privileged", "Port range (privileged, unprivileged)")
	usedCmd.Flags().StringVar(&usedFormat, "format", "table", "Output format (table, json)")
}

func runUsed(cmd *cobra.Command, args []string) error {
	proto, err := parseProto(usedProto)
	if err != nil {
		return err
	}
	rng, err := parseRange(usedRange)
	if err != nil {
		return err
	}

	list, err := runQuery(newReporter(), proto, rng, false)
	if err != nil {
		return errors.Wrap(err, "querying used ports")
	}
	return outputPorts("used", proto, rng, list, usedFormat)
}
