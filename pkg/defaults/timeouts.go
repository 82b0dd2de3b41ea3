// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package defaults

import "time"

// Handler timeouts for HTTP request processing.
const (
	// QueryHandlerTimeout is the timeout for registry query requests.
	// Queries are in-memory reads; this bound exists for the provider
	// lookup path, which may touch an out-of-process handle.
	QueryHandlerTimeout = 10 * time.Second

	// QueryCacheMaxAge is the Cache-Control max-age for query responses.
	// The registry is immutable for the process lifetime, so responses
	// are safely cacheable.
	QueryCacheMaxAge = 5 * time.Minute
)

// Server timeouts for HTTP server configuration.
const (
	// ServerReadTimeout is the maximum duration for reading request headers.
	ServerReadTimeout = 10 * time.Second

	// ServerReadHeaderTimeout prevents slow header attacks.
	ServerReadHeaderTimeout = 5 * time.Second

	// ServerWriteTimeout is the maximum duration for writing a response.
	ServerWriteTimeout = 30 * time.Second

	// ServerIdleTimeout is the maximum duration to wait for the next request.
	ServerIdleTimeout = 120 * time.Second

	// ServerShutdownTimeout is the maximum duration for graceful shutdown.
	ServerShutdownTimeout = 30 * time.Second
)

// CLI timeouts for command-line operations.
const (
	// CLIQueryTimeout is the default timeout for CLI query commands.
	CLIQueryTimeout = 30 * time.Second
)
