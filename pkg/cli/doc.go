/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the omxctl command line interface.
//
// omxctl inspects, validates, and serves OMX store resources:
//
//   - roles: list codec roles with their preference-ordered node lists
//   - attributes: list service-scoped attributes
//   - resolve: resolve a provider by name
//   - validate: validate resource files against startup constraints
//   - serve: run the registry query server
//
// Query commands read one or more resource files given with --config and
// select an instance with --instance; results are written as JSON, YAML,
// or a table via --format.
package cli
