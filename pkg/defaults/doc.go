// Package defaults centralizes timeout and limit constants used across the
// OMX store components, so tuning happens in one place.
package defaults
