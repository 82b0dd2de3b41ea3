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

// Omx is a live handle to a node provider. The provider owns node
// instantiation and buffer management; the registry only locates it.
type Omx interface {
	// Name returns the provider name as registered in the directory.
	Name() string
}

// Handle is a plain in-process provider handle. Out-of-process providers
// wrap their transport behind this same interface; connection lifecycle is
// the provider's concern, not the registry's.
type Handle struct {
	name string
}

// New creates a provider handle with the given name.
func New(name string) *Handle {
	return &Handle{name: name}
}

// Name returns the provider name.
func (h *Handle) Name() string {
	return h.name
}
