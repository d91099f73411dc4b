// Package sdk is a client for the estate real-estate management API.
//
// Requests made through an http.Client built by NewHTTPClient carry the
// session's bearer token. A 401 from the server clears the SessionStore and
// invokes the configured OnUnauthorized hook before the error reaches the
// caller as an *APIError.
package sdk
