// Package serializer handles reading and writing registry data in JSON,
// YAML, and (write-only) table formats, plus JSON HTTP responses.
package serializer
