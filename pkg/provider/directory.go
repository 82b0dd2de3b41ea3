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

package provider

import (
	"strings"

	"github.com/NVIDIA/omx-store/pkg/errors"
)

// Directory is a read-only map of provider names to live handles.
// It is populated once at startup and safe for unbounded concurrent reads.
type Directory struct {
	byName map[string]Omx
	names  []string
}

// NewDirectory builds a directory from the given handles.
// Nil handles, empty names, and duplicate names are configuration errors.
func NewDirectory(handles ...Omx) (*Directory, error) {
	byName := make(map[string]Omx, len(handles))
	names := make([]string, 0, len(handles))

	for _, h := range handles {
		if h == nil {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "provider handle cannot be nil")
		}
		name := strings.TrimSpace(h.Name())
		if name == "" {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "provider name cannot be empty")
		}
		if _, ok := byName[name]; ok {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidConfig,
				"duplicate provider name", map[string]any{"name": name})
		}
		byName[name] = h
		names = append(names, name)
	}

	return &Directory{
		byName: byName,
		names:  names,
	}, nil
}

// Get returns the handle registered under name.
// Absence is a normal outcome, reported via the bool; it is never an error.
// The lookup has no side effects and never constructs providers on demand.
func (d *Directory) Get(name string) (Omx, bool) {
	if d == nil || d.byName == nil {
		return nil, false
	}
	h, ok := d.byName[name]
	return h, ok
}

// Names returns the registered provider names in registration order.
func (d *Directory) Names() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Len returns the number of registered providers.
func (d *Directory) Len() int {
	if d == nil {
		return 0
	}
	return len(d.names)
}
