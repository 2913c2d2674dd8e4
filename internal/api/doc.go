// Package api implements the HTTP layer: request decoding and validation,
// handlers that delegate to the service layer, and the mapping from
// internal errors to HTTP status codes and sanitized client messages.
//
// Handlers never enforce ownership themselves; they pass the authenticated
// user's ID to the services, which scope every operation to it. A resource
// owned by another user is therefore indistinguishable from one that does
// not exist, on every route.
package api
