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
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Reader handles deserialization of structured data from JSON and YAML
// sources. Table format is write-only and not supported here.
//
// Close must be called to release resources when the Reader was created
// from a file; it is idempotent and a no-op for non-closeable sources.
type Reader struct {
	format Format
	input  io.Reader
	closer io.Closer
}

// NewReader creates a new Reader for deserializing data from an io.Reader.
// Returns an error for unknown formats and for FormatTable.
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}
	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}
	return r, nil
}

// NewFileReader creates a Reader for the given file path, inferring the
// format from the file extension.
func NewFileReader(path string) (*Reader, error) {
	format := FormatFromPath(path)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	return NewReader(format, file)
}

// Deserialize decodes the input into the provided destination, which must
// be a non-nil pointer.
func (r *Reader) Deserialize(dest any) error {
	if dest == nil {
		return fmt.Errorf("destination cannot be nil")
	}

	switch r.format {
	case FormatJSON:
		if err := json.NewDecoder(r.input).Decode(dest); err != nil {
			return fmt.Errorf("failed to deserialize JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r.input).Decode(dest); err != nil {
			return fmt.Errorf("failed to deserialize YAML: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
	return nil
}

// Close releases the underlying source if it is closeable.
// Safe to call multiple times.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	closer := r.closer
	r.closer = nil
	return closer.Close()
}

// FromFile reads and deserializes a typed value from the given file path.
// The format is inferred from the file extension.
func FromFile[T any](path string) (*T, error) {
	reader, err := NewFileReader(path)
	if err != nil {
		return nil, err
	}
	defer reader.Close() //nolint:errcheck // read-only file handle

	var out T
	if err := reader.Deserialize(&out); err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	return &out, nil
}
