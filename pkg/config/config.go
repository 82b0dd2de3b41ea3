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

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/NVIDIA/omx-store/pkg/errors"
	"github.com/NVIDIA/omx-store/pkg/provider"
	"github.com/NVIDIA/omx-store/pkg/serializer"
	"github.com/NVIDIA/omx-store/pkg/store"
)

const (
	// KindOmxStore is the expected resource kind.
	KindOmxStore = "omxStore"

	// ResourceAPIVersion is the current resource API version.
	ResourceAPIVersion = "omx.nvidia.com/v1alpha1"

	// InstancePlatform names the platform deployment of the store.
	InstancePlatform = "platform"

	// InstanceVendor names the vendor deployment of the store.
	InstanceVendor = "vendor"
)

// Resource is the on-disk store instance definition.
type Resource struct {
	Kind       string   `json:"kind" yaml:"kind"`
	APIVersion string   `json:"apiVersion" yaml:"apiVersion"`
	Metadata   Metadata `json:"metadata" yaml:"metadata"`
	Spec       Spec     `json:"spec" yaml:"spec"`
}

// Metadata identifies the store instance.
type Metadata struct {
	// Name is the deployment name, "platform" or "vendor".
	Name string `json:"name" yaml:"name"`

	// Description is free-form operator documentation.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Spec holds the instance configuration.
type Spec struct {
	// NodePrefix is the string every node name in this instance must
	// start with (e.g. "OMX.").
	NodePrefix string `json:"nodePrefix" yaml:"nodePrefix"`

	// ServiceAttributes are the service-scoped attributes, in the order
	// they should be reported.
	ServiceAttributes []store.Attribute `json:"serviceAttributes,omitempty" yaml:"serviceAttributes,omitempty"`

	// Providers are the node providers this instance can resolve.
	Providers []ProviderSpec `json:"providers,omitempty" yaml:"providers,omitempty"`

	// Roles are the codec roles with their preference-ordered node lists.
	Roles []store.RoleInfo `json:"roles,omitempty" yaml:"roles,omitempty"`
}

// ProviderSpec declares a resolvable node provider.
type ProviderSpec struct {
	Name string `json:"name" yaml:"name"`
}

// Validate checks the resource envelope. Spec-level invariants (prefix,
// owners, duplicates) are enforced by store.New during Build.
func (r *Resource) Validate() error {
	if r.Kind != KindOmxStore {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"unexpected resource kind", map[string]any{"kind": r.Kind, "expected": KindOmxStore})
	}
	if r.APIVersion != ResourceAPIVersion {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"unsupported resource apiVersion",
			map[string]any{"apiVersion": r.APIVersion, "expected": ResourceAPIVersion})
	}

	name := strings.TrimSpace(r.Metadata.Name)
	if name != InstancePlatform && name != InstanceVendor {
		return errors.NewWithContext(errors.ErrCodeInvalidConfig,
			"instance name must be platform or vendor", map[string]any{"name": r.Metadata.Name})
	}
	return nil
}

// Build assembles a store instance from the resource. Every configuration
// invariant violation aborts here, before the instance can serve a query.
func (r *Resource) Build() (*store.Store, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	handles := make([]provider.Omx, 0, len(r.Spec.Providers))
	for _, p := range r.Spec.Providers {
		handles = append(handles, provider.New(p.Name))
	}

	dir, err := provider.NewDirectory(handles...)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidConfig,
			"failed to build provider directory", err,
			map[string]any{"instance": r.Metadata.Name})
	}

	s, err := store.New(r.Metadata.Name, r.Spec.NodePrefix,
		r.Spec.ServiceAttributes, r.Spec.Roles, dir)
	if err != nil {
		return nil, err
	}

	slog.Debug("store instance assembled",
		"instance", r.Metadata.Name,
		"prefix", r.Spec.NodePrefix,
		"roles", len(r.Spec.Roles),
		"providers", dir.Len(),
	)

	return s, nil
}

// LoadResource reads a store resource from a JSON or YAML file.
func LoadResource(path string) (*Resource, error) {
	r, err := serializer.FromFile[Resource](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidConfig,
			"failed to read store resource", err, map[string]any{"path": path})
	}
	return r, nil
}

// Load reads and assembles a single store instance from a file.
func Load(path string) (*store.Store, error) {
	r, err := LoadResource(path)
	if err != nil {
		return nil, err
	}
	return r.Build()
}

// LoadInstances reads one or more resource files and assembles the named
// deployments. Each instance name may appear at most once. Any failure is a
// startup fault: no partial result is returned.
func LoadInstances(paths ...string) (map[string]*store.Store, error) {
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "at least one store resource is required")
	}

	instances := make(map[string]*store.Store, len(paths))
	for _, path := range paths {
		s, err := Load(path)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", path, err)
		}
		if _, ok := instances[s.Name()]; ok {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
				"instance configured more than once",
				map[string]any{"instance": s.Name(), "path": path})
		}
		instances[s.Name()] = s

		slog.Info("store instance loaded",
			"instance", s.Name(),
			"prefix", s.NodePrefix(),
			"path", path,
		)
	}

	return instances, nil
}
