// Package types contains the shared data model: endpoints, name sets and the
// run summary written to disk.
package types

import "strings"

// Endpoint is an autocomplete path and its derived API version label.
type Endpoint struct {
	Path    string
	Version string
}

// NewEndpoint derives the version label from the first path segment,
// e.g. "/v2/autocomplete" -> "v2".
func NewEndpoint(path string) Endpoint {
	version := strings.TrimPrefix(path, "/")
	if i := strings.Index(version, "/"); i >= 0 {
		version = version[:i]
	}
	return Endpoint{Path: path, Version: version}
}

// Endpoints returns the fixed set of probed endpoints in exploration order.
func Endpoints() []Endpoint {
	return []Endpoint{
		NewEndpoint("/v1/autocomplete"),
		NewEndpoint("/v2/autocomplete"),
		NewEndpoint("/v3/autocomplete"),
	}
}
