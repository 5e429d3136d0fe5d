// Package middleware provides the HTTP middleware that wraps every route:
// trace IDs with request-scoped logging, and panic recovery into the API
// error envelope.
package middleware
