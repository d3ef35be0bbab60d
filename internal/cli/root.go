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

// Package cli provides the command-line interface for walled.
package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/viniciusmorgado/walled/pkg/ports"
	"github.com/viniciusmorgado/walled/pkg/report"
	"github.com/viniciusmorgado/walled/pkg/socktab"
)

var (
	// Version is set during build time
	Version = "dev"

	rootCmd = &cobra.Command{
		Use:   "walled",
		Short: "Report listening and free ports on a Linux host",
		Long: `walled reports which TCP and UDP ports are currently listening and which
are free, split into the privileged (1-1023) and unprivileged (1024-65535)
ranges. Each invocation takes a single point-in-time snapshot via ss.

Example:
  # Summary of all four buckets for both protocols
  walled report

  # Privileged TCP ports in use
  walled used --proto tcp --range privileged

  # Free unprivileged UDP ports, as JSON
  walled free --proto udp --range unprivileged --format json`,
		Version: Version,
	}
)

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(usedCmd)
	rootCmd.AddCommand(freeCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("walled version %s\n", Version)
	},
}

// newReporter is a variable so tests can substitute a reporter backed by
// a fake provider.
var newReporter = func() *report.Reporter {
	return report.New(nil)
}

func parseProto(s string) (socktab.Protocol, error) {
	switch s {
	case "tcp":
		return socktab.TCP, nil
	case "udp":
		return socktab.UDP, nil
	default:
		return "", errors.Newf("unknown protocol %q (want tcp or udp)", s)
	}
}

func parseRange(s string) (ports.Range, error) {
	switch s {
	case "privileged":
		return ports.Privileged, nil
	case "unprivileged":
		return ports.Unprivileged, nil
	default:
		return ports.Range{}, errors.Newf("unknown range %q (want privileged or unprivileged)", s)
	}
}
