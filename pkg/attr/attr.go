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

package attr

import (
	"strings"

	"github.com/NVIDIA/omx-store/pkg/errors"
)

// Key prefixes with documented value conventions.
const (
	// SupportsKeyPrefix marks capability flags whose value is "0" (no)
	// or "1" (yes).
	SupportsKeyPrefix = "supports-"

	// FeatureKeyPrefix marks feature keys; boolean-valued feature keys
	// use "0" (optional) or "1" (required).
	FeatureKeyPrefix = "feature-"
)

// Kind classifies an attribute value by the documented grammar conventions.
// The registry itself never parses values; these classifications exist for
// callers and tooling that want to lint configured attributes.
type Kind string

const (
	// KindNum is "0" or a positive integer without leading zeros.
	KindNum Kind = "num"
	// KindSize is "<num>x<num>".
	KindSize Kind = "size"
	// KindRatio is "<num>:<num>".
	KindRatio Kind = "ratio"
	// KindRange is "<lo>-<hi>".
	KindRange Kind = "range"
	// KindList is a comma-separated list.
	KindList Kind = "list"
	// KindString is any free-form value.
	KindString Kind = "string"
)

// ValidNum reports whether s is "0" or a positive integer with no leading zero.
func ValidNum(s string) bool {
	if s == "" {
		return false
	}
	if s == "0" {
		return true
	}
	if s[0] < '1' || s[0] > '9' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ValidBool reports whether s is "0" or "1".
func ValidBool(s string) bool {
	return s == "0" || s == "1"
}

// ValidSize reports whether s is a "<num>x<num>" size value.
func ValidSize(s string) bool {
	w, h, ok := strings.Cut(s, "x")
	return ok && ValidNum(w) && ValidNum(h)
}

// ValidRatio reports whether s is a "<num>:<num>" ratio value.
func ValidRatio(s string) bool {
	n, m, ok := strings.Cut(s, ":")
	return ok && ValidNum(n) && ValidNum(m)
}

// ValidRange reports whether s is a "<lo>-<hi>" range whose bounds both
// satisfy elem.
func ValidRange(s string, elem func(string) bool) bool {
	lo, hi, ok := strings.Cut(s, "-")
	return ok && elem(lo) && elem(hi)
}

// ValidNumRange reports whether s is a numeric "<lo>-<hi>" range.
func ValidNumRange(s string) bool {
	return ValidRange(s, ValidNum)
}

// ValidList reports whether s is a comma-separated list whose every element
// satisfies elem. A single element with no comma is a valid one-element list.
func ValidList(s string, elem func(string) bool) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ",") {
		if !elem(part) {
			return false
		}
	}
	return true
}

// ValidEnum reports whether s is one of the allowed values.
func ValidEnum(s string, values ...string) bool {
	for _, v := range values {
		if s == v {
			return true
		}
	}
	return false
}

// IsSupportsKey reports whether the key carries the supports- convention.
func IsSupportsKey(key string) bool {
	return strings.HasPrefix(key, SupportsKeyPrefix)
}

// IsFeatureKey reports whether the key carries the feature- convention.
func IsFeatureKey(key string) bool {
	return strings.HasPrefix(key, FeatureKeyPrefix)
}

// DetectKind classifies a value by the first grammar convention it matches.
// Free-form strings match KindString; anything containing a comma whose
// elements are well-formed matches KindList first.
func DetectKind(value string) Kind {
	switch {
	case strings.Contains(value, ","):
		return KindList
	case ValidNum(value):
		return KindNum
	case ValidSize(value):
		return KindSize
	case ValidRatio(value):
		return KindRatio
	case ValidNumRange(value):
		return KindRange
	default:
		return KindString
	}
}

// Lint checks a single attribute against the conventions that can be
// inferred from its key. It is a caller-side helper; the registry query
// path never invokes it.
func Lint(key, value string) error {
	if strings.TrimSpace(key) == "" {
		return errors.New(errors.ErrCodeInvalidRequest, "attribute key cannot be empty")
	}
	if value == "" {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"attribute value cannot be empty", map[string]any{"key": key})
	}

	// supports- keys are always boolean; feature- keys are only checked
	// when the value is boolean-shaped, since non-boolean feature keys
	// carry free-form payloads.
	if IsSupportsKey(key) && !ValidBool(value) {
		return errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"supports- attribute must be 0 or 1",
			map[string]any{"key": key, "value": value})
	}

	return nil
}
