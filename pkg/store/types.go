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

// Attribute is an opaque key/value capability descriptor. The value grammar
// is documented by convention (see pkg/attr) but never parsed or enforced by
// the store; it is pass-through payload.
type Attribute struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// NodeInfo describes a concrete, instantiable codec node.
// Name must start with the store's configured node prefix and is used
// verbatim by the owning provider to instantiate the node; the store never
// constructs it. Owner must resolve through the provider directory.
type NodeInfo struct {
	Name       string      `json:"name" yaml:"name"`
	Owner      string      `json:"owner" yaml:"owner"`
	Attributes []Attribute `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// RoleInfo describes a standard functional category (e.g. "video decoder
// for AVC") and the nodes that can fulfill it.
// Node order encodes selection preference and is preserved end-to-end.
// PreferPlatformNodes is carried faithfully but never interpreted here;
// selection policy belongs to the caller.
type RoleInfo struct {
	Role                string     `json:"role" yaml:"role"`
	Type                string     `json:"type" yaml:"type"`
	IsEncoder           bool       `json:"isEncoder" yaml:"isEncoder"`
	PreferPlatformNodes bool       `json:"preferPlatformNodes" yaml:"preferPlatformNodes"`
	Nodes               []NodeInfo `json:"nodes" yaml:"nodes"`
}
