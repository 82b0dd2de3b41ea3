// Package config loads omxStore resource files (YAML or JSON) and assembles
// immutable store instances from them at startup.
//
// A resource file defines one deployment ("platform" or "vendor"):
//
//	kind: omxStore
//	apiVersion: omx.nvidia.com/v1alpha1
//	metadata:
//	  name: platform
//	spec:
//	  nodePrefix: "OMX."
//	  serviceAttributes:
//	    - key: supports-multiple-secure-codecs
//	      value: "0"
//	  providers:
//	    - name: platform-omx
//	  roles:
//	    - role: video_decoder.avc
//	      type: video/avc
//	      isEncoder: false
//	      preferPlatformNodes: true
//	      nodes:
//	        - name: OMX.plat.avc.decoder
//	          owner: platform-omx
//
// Invariant violations (bad prefix, dangling owner, duplicates) abort
// loading; a registry instance that fails to load never serves queries.
package config
