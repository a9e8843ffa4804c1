// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeNotFound,
//	    "could not get '__version__' from 'app.py'",
//	    map[string]any{
//	        "path":     "app.py",
//	        "variable": "__version__",
//	    },
//	)
//
// The API server maps codes onto HTTP status codes with ErrorCode.HTTPStatus.
package errors
