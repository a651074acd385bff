package common

import "net/http"

// ClientIDHeader names the header carrying the client's board-slot key.
const ClientIDHeader = "X-Client-ID"

// DefaultClientID is the slot used when the client sends no identifier.
const DefaultClientID = "local"

// ExtractClientID returns the client identifier scoping the persistence
// slot. The board store is keyed per client, last-write-wins.
func ExtractClientID(r *http.Request) string {
	if id := r.Header.Get(ClientIDHeader); id != "" {
		return id
	}
	return DefaultClientID
}

// ExtractRequestID extracts the request ID from the request headers
func ExtractRequestID(r *http.Request) string {
	if id := r.Header.Get("X-Request-ID"); id != "" {
		return id
	}
	if id := r.Header.Get("X-Amzn-Trace-Id"); id != "" {
		return id
	}
	return ""
}
