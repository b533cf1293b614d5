// Package hateoas builds hypermedia links from statically declared builders.
package hateoas

import (
	"net/http"
	"strings"
)

// Link is one hypermedia control attached to a resource.
type Link struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

// LinkFunc builds one link for resource r. base is the API prefix,
// without a trailing slash.
type LinkFunc[T any] func(base string, r T) Link

// Registry holds the link builders of one resource type.
type Registry[T any] struct {
	base  string
	funcs []LinkFunc[T]
}

// New returns a Registry rooted at base.
func New[T any](base string, funcs ...LinkFunc[T]) *Registry[T] {
	return &Registry[T]{base: strings.TrimRight(base, "/"), funcs: funcs}
}

// Links evaluates every builder against r, in declaration order.
func (reg *Registry[T]) Links(r T) []Link {
	links := make([]Link, 0, len(reg.funcs))
	for _, f := range reg.funcs {
		links = append(links, f(reg.base, r))
	}
	return links
}

// To declares a link whose path is computed from the resource.
func To[T any](rel, method string, path func(r T) string) LinkFunc[T] {
	return func(base string, r T) Link {
		return Link{Href: base + path(r), Rel: rel, Method: method}
	}
}

// Self declares the canonical GET link of a resource.
func Self[T any](path func(r T) string) LinkFunc[T] {
	return To("self", http.MethodGet, path)
}
