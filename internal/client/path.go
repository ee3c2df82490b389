package client

import (
	"net/url"
)

// resourcePath is an immutable accumulator for nested resource paths. Every
// navigation step returns a new value, so sibling navigators derived from the
// same parent can never observe each other's segments.
type resourcePath struct {
	path string
}

// collection appends a collection segment: .../name
func (p resourcePath) collection(name string) resourcePath {
	return resourcePath{path: p.path + "/" + name}
}

// item appends an item segment: .../name/id. The id is path-escaped.
func (p resourcePath) item(name, id string) resourcePath {
	return resourcePath{path: p.path + "/" + name + "/" + url.PathEscape(id)}
}

// action appends an action suffix verbatim after a fully resolved item path.
func (p resourcePath) action(suffix string) string {
	return p.path + "/" + suffix
}

// String returns the path relative to the API base URL.
func (p resourcePath) String() string {
	return p.path
}
