// Package provider holds the node-provider handle abstraction and the
// read-only directory used to resolve provider names to live handles.
package provider
