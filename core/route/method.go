package route

import (
	"fmt"
	"strings"
)

// Method is an HTTP verb from the fixed set supported by the route table.
type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
)

// Methods lists the supported verbs in their canonical order.
var Methods = []Method{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodHead,
	MethodOptions,
}

var methodSet = func() map[Method]struct{} {
	s := make(map[Method]struct{}, len(Methods))
	for _, m := range Methods {
		s[m] = struct{}{}
	}
	return s
}()

// ParseMethod upper-cases s and validates membership in the supported verb
// set. It returns ErrInvalidMethod (wrapped with the rejected input) for
// anything else.
func ParseMethod(s string) (Method, error) {
	m := Method(strings.ToUpper(s))
	if _, ok := methodSet[m]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
	return m, nil
}
