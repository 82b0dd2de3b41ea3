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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNum(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "zero", input: "0", valid: true},
		{name: "positive", input: "42", valid: true},
		{name: "large", input: "40000000", valid: true},
		{name: "leading zero", input: "042", valid: false},
		{name: "negative", input: "-1", valid: false},
		{name: "empty", input: "", valid: false},
		{name: "alpha", input: "abc", valid: false},
		{name: "trailing alpha", input: "12a", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, ValidNum(tt.input))
		})
	}
}

func TestValidSize(t *testing.T) {
	assert.True(t, ValidSize("1920x1080"))
	assert.True(t, ValidSize("0x0"))
	assert.False(t, ValidSize("1920"))
	assert.False(t, ValidSize("1920x"))
	assert.False(t, ValidSize("x1080"))
	assert.False(t, ValidSize("1920X1080"))
	assert.False(t, ValidSize("01920x1080"))
}

func TestValidRatio(t *testing.T) {
	assert.True(t, ValidRatio("16:9"))
	assert.True(t, ValidRatio("1:1"))
	assert.False(t, ValidRatio("16-9"))
	assert.False(t, ValidRatio("16:"))
	assert.False(t, ValidRatio(":9"))
}

func TestValidNumRange(t *testing.T) {
	assert.True(t, ValidNumRange("1-40000000"))
	assert.True(t, ValidNumRange("0-0"))
	assert.False(t, ValidNumRange("40000000"))
	assert.False(t, ValidNumRange("1-"))
	assert.False(t, ValidNumRange("-5"))
}

func TestValidList(t *testing.T) {
	assert.True(t, ValidList("1,2,3", ValidNum))
	assert.True(t, ValidList("7", ValidNum))
	assert.True(t, ValidList("176x144,1920x1080", ValidSize))
	assert.False(t, ValidList("1,,3", ValidNum))
	assert.False(t, ValidList("", ValidNum))
	assert.False(t, ValidList("1,a", ValidNum))
}

func TestValidEnum(t *testing.T) {
	assert.True(t, ValidEnum("secure", "secure", "non-secure"))
	assert.False(t, ValidEnum("both", "secure", "non-secure"))
	assert.False(t, ValidEnum("secure"))
}

func TestKeyConventions(t *testing.T) {
	assert.True(t, IsSupportsKey("supports-multiple-secure-codecs"))
	assert.False(t, IsSupportsKey("feature-adaptive-playback"))
	assert.True(t, IsFeatureKey("feature-adaptive-playback"))
	assert.False(t, IsFeatureKey("bitrate-range"))
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		value    string
		expected Kind
	}{
		{"42", KindNum},
		{"0", KindNum},
		{"1920x1080", KindSize},
		{"16:9", KindRatio},
		{"1-40000000", KindRange},
		{"h264,h265", KindList},
		{"adaptive-playback", KindString},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectKind(tt.value))
		})
	}
}

func TestLint(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{name: "plain attribute", key: "bitrate-range", value: "1-40000000", wantErr: false},
		{name: "supports yes", key: "supports-secure-playback", value: "1", wantErr: false},
		{name: "supports no", key: "supports-secure-playback", value: "0", wantErr: false},
		{name: "supports non-boolean", key: "supports-secure-playback", value: "yes", wantErr: true},
		{name: "feature boolean", key: "feature-adaptive-playback", value: "1", wantErr: false},
		{name: "feature free-form", key: "feature-bitrate-modes", value: "VBR,CBR", wantErr: false},
		{name: "empty key", key: "", value: "1", wantErr: true},
		{name: "empty value", key: "size-range", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Lint(tt.key, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
