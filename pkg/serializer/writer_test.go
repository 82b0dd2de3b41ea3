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

package serializer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type sample struct {
	Name  string   `json:"name" yaml:"name"`
	Nodes []string `json:"nodes" yaml:"nodes"`
}

func TestSerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	in := sample{Name: "video_decoder.avc", Nodes: []string{"OMX.plat.avc.decoder"}}
	if err := w.Serialize(t.Context(), in); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	var out sample
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Name != in.Name || len(out.Nodes) != 1 {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestSerializeTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	in := sample{Name: "video_decoder.avc", Nodes: []string{"OMX.plat.avc.decoder", "OMX.vendor.avc.decoder"}}
	if err := w.Serialize(t.Context(), in); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{"FIELD", "Name", "Nodes[0]", "OMX.vendor.avc.decoder"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
}

func TestNewWriterUnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	if err := w.Serialize(t.Context(), map[string]string{"k": "v"}); err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON fallback, got: %s", buf.String())
	}
}

func TestFormatIsUnknown(t *testing.T) {
	tests := []struct {
		format  Format
		unknown bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format(""), true},
		{Format("xml"), true},
	}

	for _, tt := range tests {
		if got := tt.format.IsUnknown(); got != tt.unknown {
			t.Errorf("IsUnknown(%q) = %v, want %v", tt.format, got, tt.unknown)
		}
	}
}
