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

import "github.com/cockroachdb/errors"

var (
	// ErrProviderUnavailable marks failures to invoke the socket-table
	// provider at all: binary not found, permission denied.
	ErrProviderUnavailable = errors.New("socket-table provider unavailable")

	// ErrProviderFailed marks a provider that was invoked but reported
	// failure, such as a non-zero exit status.
	ErrProviderFailed = errors.New("socket-table provider failed")
)
