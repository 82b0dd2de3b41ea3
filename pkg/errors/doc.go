// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidConfig,
//	    "failed to load store instance",
//	    loadErr,
//	    map[string]interface{}{
//	        "instance": "platform",
//	        "path": configPath,
//	    },
//	)
package errors
