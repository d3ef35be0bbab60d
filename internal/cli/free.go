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
	freeProto  string
	freeRange  string
	freeFormat string
)

var freeCmd = &cobra.Command{
	Use:   "free",
	Short: "List ports not currently listening",
	Long: `List the ports of a range with no listening socket.

The result is a single point-in-time snapshot: a port reported free here
may be taken by the time a caller binds it.`,
	Example: `  # Free privileged TCP ports
  walled free --proto tcp --range privileged

  # Free unprivileged UDP ports, as JSON
  walled free --proto udp --range unprivileged --format json`,
	RunE: runFree,
}

func init() {
	freeCmd.Flags().StringVarP(&freeProto, "proto", "p", "tcp", "Protocol (tcp, udp)")
	freeCmd.Flags().StringVarP(&freeRange, "range", "r", "privileged", "Port range (privileged, unprivileged)")
	freeCmd.Flags().StringVar(&freeFormat, "format", "table", "Output format (table, json)")
}

func runFree(cmd *cobra.Command, args []string) error {
	proto, err := parseProto(freeProto)
	if err != nil {
		return err
	}
	rng, err := parseRange(freeRange)
	if err != nil {
		return err
	}

	list, err := runQuery(newReporter(), proto, rng, true)
	if err != nil {
		return errors.Wrap(err, "querying free ports")
	}
	return outputPorts("free", proto, rng, list, freeFormat)
}
