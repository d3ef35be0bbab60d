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

import "github.com/viniciusmorgado/walled/pkg/ports"

// defaultReporter serves the package-level query functions. It holds no
// mutable state, so sharing it across goroutines is safe.
var defaultReporter = New(nil)

// PrivilegedTCPUsed reports the privileged TCP ports listening on this host.
func PrivilegedTCPUsed() (ports.List, error) { return defaultReporter.PrivilegedTCPUsed() }

// PrivilegedTCPFree reports the privileged TCP ports free on this host.
func PrivilegedTCPFree() (ports.List, error) { return defaultReporter.PrivilegedTCPFree() }

// UnprivilegedTCPUsed reports the unprivileged TCP ports listening on this host.
func UnprivilegedTCPUsed() (ports.List, error) { return defaultReporter.UnprivilegedTCPUsed() }

// UnprivilegedTCPFree reports the unprivileged TCP ports free on this host.
func UnprivilegedTCPFree() (ports.List, error) { return defaultReporter.UnprivilegedTCPFree() }

// PrivilegedUDPUsed reports the privileged UDP ports listening on this host.
func PrivilegedUDPUsed() (ports.List, error) { return defaultReporter.PrivilegedUDPUsed() }

// PrivilegedUDPFree reports the privileged UDP ports free on this host.
func PrivilegedUDPFree() (ports.List, error) { return defaultReporter.PrivilegedUDPFree() }

// UnprivilegedUDPUsed reports the unprivileged UDP ports listening on this host.
func UnprivilegedUDPUsed() (ports.List, error) { return defaultReporter.UnprivilegedUDPUsed() }

// UnprivilegedUDPFree reports the unprivileged UDP ports free on this host.
func UnprivilegedUDPFree() (ports.List, error) { return defaultReporter.UnprivilegedUDPFree() }
