// Package api implements the HTTP client for the Drezzle backend REST API.
//
// The Client interface covers the full surface the terminal application
// consumes: authentication, the content feed, likes and saves, comments,
// uploads, verification requests, and the admin moderation endpoints.
// Failures split into two families: ErrUnavailable wraps transport errors
// where no response arrived, and *APIError carries a backend-reported
// non-success status plus its human-readable message.
package api
