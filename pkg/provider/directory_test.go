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
	"errors"
	"testing"

	omxerrors "github.com/NVIDIA/omx-store/pkg/errors"
)

func TestNewDirectory(t *testing.T) {
	d, err := NewDirectory(New("platform-omx"), New("vendor-omx"))
	if err != nil {
		t.Fatalf("NewDirectory() error = %v", err)
	}

	if d.Len() != 2 {
		t.Errorf("expected 2 providers, got %d", d.Len())
	}

	names := d.Names()
	if len(names) != 2 || names[0] != "platform-omx" || names[1] != "vendor-omx" {
		t.Errorf("expected registration order preserved, got %v", names)
	}
}

func TestDirectoryGet(t *testing.T) {
	d, err := NewDirectory(New("platform-omx"))
	if err != nil {
		t.Fatal(err)
	}

	h, ok := d.Get("platform-omx")
	if !ok {
		t.Fatal("expected provider to be found")
	}
	if h.Name() != "platform-omx" {
		t.Errorf("expected name platform-omx, got %s", h.Name())
	}
}

func TestDirectoryGetAbsent(t *testing.T) {
	d, err := NewDirectory(New("platform-omx"))
	if err != nil {
		t.Fatal(err)
	}

	h, ok := d.Get("nonexistent-provider")
	if ok {
		t.Error("expected absence for unregistered provider")
	}
	if h != nil {
		t.Errorf("expected nil handle, got %v", h)
	}
}

func TestDirectoryGetOnNil(t *testing.T) {
	var d *Directory
	if _, ok := d.Get("anything"); ok {
		t.Error("nil directory should report absence")
	}
}

func TestNewDirectoryRejectsDuplicates(t *testing.T) {
	_, err := NewDirectory(New("platform-omx"), New("platform-omx"))
	if err == nil {
		t.Fatal("expected error for duplicate provider names")
	}

	var structured *omxerrors.StructuredError
	if !errors.As(err, &structured) {
		t.Fatal("expected a StructuredError")
	}
	if structured.Code != omxerrors.ErrCodeInvalidConfig {
		t.Errorf("expected code %s, got %s", omxerrors.ErrCodeInvalidConfig, structured.Code)
	}
}

func TestNewDirectoryRejectsNilAndEmpty(t *testing.T) {
	if _, err := NewDirectory(nil); err == nil {
		t.Error("expected error for nil handle")
	}
	if _, err := NewDirectory(New("")); err == nil {
		t.Error("expected error for empty provider name")
	}
	if _, err := NewDirectory(New("   ")); err == nil {
		t.Error("expected error for blank provider name")
	}
}
