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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	omxerrors "github.com/NVIDIA/omx-store/pkg/errors"
)

const platformYAML = `kind: omxStore
apiVersion: omx.nvidia.com/v1alpha1
metadata:
  name: platform
spec:
  nodePrefix: "OMX."
  serviceAttributes:
    - key: supports-multiple-secure-codecs
      value: "0"
    - key: max-video-encoder-instances
      value: "16"
  providers:
    - name: platform-omx
    - name: vendor-omx
  roles:
    - role: video_decoder.avc
      type: video/avc
      isEncoder: false
      preferPlatformNodes: true
      nodes:
        - name: OMX.plat.avc.decoder
          owner: platform-omx
          attributes:
            - key: bitrate-range
              value: "1-40000000"
        - name: OMX.vendor.avc.decoder
          owner: vendor-omx
`

const vendorYAML = `kind: omxStore
apiVersion: omx.nvidia.com/v1alpha1
metadata:
  name: vendor
spec:
  nodePrefix: "OMX.vendor."
  providers:
    - name: vendor-omx
  roles:
    - role: video_encoder.avc
      type: video/avc
      isEncoder: true
      nodes:
        - name: OMX.vendor.avc.encoder
          owner: vendor-omx
`

func writeResource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	s, err := Load(writeResource(t, "platform.yaml", platformYAML))
	require.NoError(t, err)

	assert.Equal(t, "platform", s.Name())
	assert.Equal(t, "OMX.", s.NodePrefix())

	attrs, err := s.ServiceAttributes()
	require.NoError(t, err)
	require.Len(t, attrs, 2)
	assert.Equal(t, "supports-multiple-secure-codecs", attrs[0].Key)
	assert.Equal(t, "0", attrs[0].Value)

	roles := s.Roles()
	require.Len(t, roles, 1)
	require.Len(t, roles[0].Nodes, 2)
	assert.Equal(t, "OMX.plat.avc.decoder", roles[0].Nodes[0].Name)

	h, ok := s.GetOmx("platform-omx")
	require.True(t, ok)
	assert.Equal(t, "platform-omx", h.Name())
}

func TestLoadInstances(t *testing.T) {
	instances, err := LoadInstances(
		writeResource(t, "platform.yaml", platformYAML),
		writeResource(t, "vendor.yaml", vendorYAML),
	)
	require.NoError(t, err)
	require.Len(t, instances, 2)

	assert.Equal(t, "OMX.", instances[InstancePlatform].NodePrefix())
	assert.Equal(t, "OMX.vendor.", instances[InstanceVendor].NodePrefix())
}

func TestLoadInstancesRejectsDuplicates(t *testing.T) {
	_, err := LoadInstances(
		writeResource(t, "a.yaml", platformYAML),
		writeResource(t, "b.yaml", platformYAML),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than once")
}

func TestLoadInstancesRequiresPaths(t *testing.T) {
	_, err := LoadInstances()
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/does/not/exist.yaml")
	require.Error(t, err)

	var structured *omxerrors.StructuredError
	require.True(t, errors.As(err, &structured))
	assert.Equal(t, omxerrors.ErrCodeInvalidConfig, structured.Code)
}

func TestValidateEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Resource)
		wantErr string
	}{
		{
			name:    "valid",
			mutate:  func(_ *Resource) {},
			wantErr: "",
		},
		{
			name:    "wrong kind",
			mutate:  func(r *Resource) { r.Kind = "codecStore" },
			wantErr: "kind",
		},
		{
			name:    "wrong apiVersion",
			mutate:  func(r *Resource) { r.APIVersion = "omx.nvidia.com/v2" },
			wantErr: "apiVersion",
		},
		{
			name:    "unknown instance name",
			mutate:  func(r *Resource) { r.Metadata.Name = "thirdparty" },
			wantErr: "platform or vendor",
		},
		{
			name:    "empty instance name",
			mutate:  func(r *Resource) { r.Metadata.Name = "" },
			wantErr: "platform or vendor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resource{
				Kind:       KindOmxStore,
				APIVersion: ResourceAPIVersion,
				Metadata:   Metadata{Name: InstancePlatform},
				Spec:       Spec{NodePrefix: "OMX."},
			}
			tt.mutate(r)

			err := r.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildSurfacesStoreInvariants(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "dangling owner",
			yaml: `kind: omxStore
apiVersion: omx.nvidia.com/v1alpha1
metadata:
  name: platform
spec:
  nodePrefix: "OMX."
  providers:
    - name: platform-omx
  roles:
    - role: video_decoder.avc
      nodes:
        - name: OMX.plat.avc.decoder
          owner: missing-omx
`,
			wantErr: "owner",
		},
		{
			name: "prefix violation",
			yaml: `kind: omxStore
apiVersion: omx.nvidia.com/v1alpha1
metadata:
  name: platform
spec:
  nodePrefix: "OMX."
  providers:
    - name: platform-omx
  roles:
    - role: video_decoder.avc
      nodes:
        - name: AVC.plat.decoder
          owner: platform-omx
`,
			wantErr: "prefix",
		},
		{
			name: "duplicate provider",
			yaml: `kind: omxStore
apiVersion: omx.nvidia.com/v1alpha1
metadata:
  name: platform
spec:
  nodePrefix: "OMX."
  providers:
    - name: platform-omx
    - name: platform-omx
`,
			wantErr: "duplicate provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeResource(t, "store.yaml", tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var structured *omxerrors.StructuredError
			require.True(t, errors.As(err, &structured))
			assert.Equal(t, omxerrors.ErrCodeInvalidConfig, structured.Code)
		})
	}
}
