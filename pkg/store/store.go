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

package store

import (
	"strings"

	"github.com/NVIDIA/omx-store/pkg/errors"
	"github.com/NVIDIA/omx-store/pkg/provider"
)

// Store is the read-only registry facade composing the service attribute
// set, the role catalog, the node prefix policy, and the provider directory.
//
// All invariants are enforced by New at assembly time; once constructed, a
// Store is immutable and every operation is a side-effect-free read, safe
// for unbounded concurrent callers without locking.
type Store struct {
	name      string
	prefix    string
	attrs     []Attribute
	roles     []RoleInfo
	providers *provider.Directory
}

// New assembles a store instance and validates its configuration.
// Violations (empty prefix, node names missing the prefix, owners that do
// not resolve through the directory, duplicate attribute keys, duplicate
// roles) are configuration errors that abort construction. A store that
// fails here must never serve queries.
func New(name, prefix string, attrs []Attribute, roles []RoleInfo, providers *provider.Directory) (*Store, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "store instance name cannot be empty")
	}
	if prefix == "" {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"node prefix cannot be empty", map[string]any{"instance": name})
	}
	if providers == nil {
		return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"provider directory is required", map[string]any{"instance": name})
	}

	if err := validateAttributes(attrs, "service attribute"); err != nil {
		return nil, err
	}
	if err := validateRoles(roles, prefix, providers); err != nil {
		return nil, err
	}

	s := &Store{
		name:      name,
		prefix:    prefix,
		attrs:     attrs,
		roles:     roles,
		providers: providers,
	}

	storeRoles.WithLabelValues(name).Set(float64(len(roles)))
	storeServiceAttributes.WithLabelValues(name).Set(float64(len(attrs)))

	return s, nil
}

func validateAttributes(attrs []Attribute, scope string) error {
	seen := make(map[string]struct{}, len(attrs))
	for _, a := range attrs {
		if strings.TrimSpace(a.Key) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, scope+" key cannot be empty")
		}
		if _, ok := seen[a.Key]; ok {
			return errors.NewWithContext(errors.ErrCodeInvalidConfig,
				"duplicate "+scope+" key", map[string]any{"key": a.Key})
		}
		seen[a.Key] = struct{}{}
	}
	return nil
}

func validateRoles(roles []RoleInfo, prefix string, providers *provider.Directory) error {
	seenRoles := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		if strings.TrimSpace(r.Role) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "role name cannot be empty")
		}
		if _, ok := seenRoles[r.Role]; ok {
			return errors.NewWithContext(errors.ErrCodeInvalidConfig,
				"duplicate role", map[string]any{"role": r.Role})
		}
		seenRoles[r.Role] = struct{}{}

		seenNodes := make(map[string]struct{}, len(r.Nodes))
		for _, n := range r.Nodes {
			if strings.TrimSpace(n.Name) == "" {
				return errors.NewWithContext(errors.ErrCodeInvalidConfig,
					"node name cannot be empty", map[string]any{"role": r.Role})
			}
			if !strings.HasPrefix(n.Name, prefix) {
				return errors.NewWithContext(errors.ErrCodeInvalidConfig,
					"node name does not match the configured prefix",
					map[string]any{"role": r.Role, "node": n.Name, "prefix": prefix})
			}
			if _, ok := seenNodes[n.Name]; ok {
				return errors.NewWithContext(errors.ErrCodeInvalidConfig,
					"duplicate node in role", map[string]any{"role": r.Role, "node": n.Name})
			}
			seenNodes[n.Name] = struct{}{}

			if _, ok := providers.Get(n.Owner); !ok {
				return errors.NewWithContext(errors.ErrCodeInvalidConfig,
					"node owner does not resolve to a registered provider",
					map[string]any{"role": r.Role, "node": n.Name, "owner": n.Owner})
			}

			if err := validateAttributes(n.Attributes, "node attribute"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Name returns the instance name ("platform" or "vendor").
func (s *Store) Name() string {
	return s.name
}

// ServiceAttributes returns the configured service-level attributes in
// insertion order. The error slot is reserved for post-startup store
// corruption and is always nil for a store constructed by New.
func (s *Store) ServiceAttributes() ([]Attribute, error) {
	if s == nil || s.providers == nil {
		return nil, errors.New(errors.ErrCodeInternal, "store is not initialized")
	}
	out := make([]Attribute, len(s.attrs))
	copy(out, s.attrs)
	return out, nil
}

// Roles returns every registered role with its full node list.
// Role order is configuration insertion order; node order within a role is
// the configured preference order. The query path never sorts.
func (s *Store) Roles() []RoleInfo {
	out := make([]RoleInfo, len(s.roles))
	for i, r := range s.roles {
		nodes := make([]NodeInfo, len(r.Nodes))
		for j, n := range r.Nodes {
			attrs := make([]Attribute, len(n.Attributes))
			copy(attrs, n.Attributes)
			nodes[j] = NodeInfo{Name: n.Name, Owner: n.Owner, Attributes: attrs}
		}
		out[i] = RoleInfo{
			Role:                r.Role,
			Type:                r.Type,
			IsEncoder:           r.IsEncoder,
			PreferPlatformNodes: r.PreferPlatformNodes,
			Nodes:               nodes,
		}
	}
	return out
}

// NodePrefix returns the prefix every node name in this instance satisfies.
func (s *Store) NodePrefix() string {
	return s.prefix
}

// GetOmx resolves a provider name to a live handle.
// A nil handle with ok=false means the name is unregistered, a normal
// expected outcome and never an error. The lookup performs no side effects.
func (s *Store) GetOmx(name string) (provider.Omx, bool) {
	h, ok := s.providers.Get(name)
	if ok {
		providerLookups.WithLabelValues(s.name, lookupResultFound).Inc()
	} else {
		providerLookups.WithLabelValues(s.name, lookupResultNotFound).Inc()
	}
	return h, ok
}

// Providers returns the directory backing this store. Exposed for
// diagnostics; lookups should go through GetOmx.
func (s *Store) Providers() *provider.Directory {
	return s.providers
}
