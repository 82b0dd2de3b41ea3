/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v3"
)

const platformResourceYAML = `kind: omxStore
apiVersion: omx.nvidia.com/v1alpha1
metadata:
  name: platform
spec:
  nodePrefix: "OMX."
  serviceAttributes:
    - key: supports-multiple-secure-codecs
      value: "0"
    - key: supports-secure-with-non-secure-codec
      value: "1"
  providers:
    - name: platform-omx
    - name: vendor-omx
  roles:
    - role: video_decoder.avc
      type: video/avc
      preferPlatformNodes: true
      nodes:
        - name: OMX.plat.avc.decoder
          owner: platform-omx
          attributes:
            - key: max-concurrent-instances
              value: "16"
        - name: OMX.vendor.avc.decoder
          owner: vendor-omx
    - role: video_encoder.avc
      type: video/avc
      isEncoder: true
      nodes:
        - name: OMX.plat.avc.encoder
          owner: platform-omx
`

const vendorResourceYAML = `kind: omxStore
apiVersion: omx.nvidia.com/v1alpha1
metadata:
  name: vendor
spec:
  nodePrefix: "OMX.vendor."
  providers:
    - name: vendor-omx
  roles:
    - role: video_decoder.hevc
      type: video/hevc
      nodes:
        - name: OMX.vendor.hevc.decoder
          owner: vendor-omx
`

// writeResource writes a resource fixture into a test temp dir.
func writeResource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func hasName(flag cli.Flag, name string) bool {
	if flag == nil {
		return false
	}
	for _, n := range flag.Names() {
		if n == name {
			return true
		}
	}
	return false
}

func requireFlags(t *testing.T, cmd *cli.Command, names []string) {
	t.Helper()
	for _, flagName := range names {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found on %s", flagName, cmd.Name)
		}
	}
}
