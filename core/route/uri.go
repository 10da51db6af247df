package route

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	literalSegment = regexp.MustCompile(`^[\w.-]+$`)
	paramSegment   = regexp.MustCompile(`^\{[A-Za-z_]\w*\}$`)
)

// SplitURI splits a path on '/', trimming leading and trailing separators
// and discarding empty segments. "/a//b/" yields ["a", "b"]; "" and "/"
// yield an empty slice.
func SplitURI(uri string) []string {
	trimmed := strings.Trim(uri, "/")
	if trimmed == "" {
		return nil
	}

	parts := strings.Split(trimmed, "/")
	segments := parts[:0]
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// ValidateURI reports whether uri is a well-formed path template: empty,
// "/", or /-separated segments that are each a literal ([\w.-]+) or a
// parameter token ({name} with braces wrapping the whole segment).
func ValidateURI(uri string) error {
	for _, seg := range SplitURI(uri) {
		if literalSegment.MatchString(seg) || paramSegment.MatchString(seg) {
			continue
		}
		return fmt.Errorf("%w: %q has malformed segment %q", ErrInvalidURI, uri, seg)
	}
	return nil
}

// IsParam reports whether the segment is a parameter token of the form {name}.
func IsParam(segment string) bool {
	return paramSegment.MatchString(segment)
}

// ParamName returns the name inside a parameter token, or the segment
// unchanged when it is not a parameter token.
func ParamName(segment string) string {
	if IsParam(segment) {
		return segment[1 : len(segment)-1]
	}
	return segment
}

// JoinSegments rebuilds a canonical path from segments. An empty slice
// yields "/".
func JoinSegments(segments []string) string {
	if len(segments) == 0 {
		return "/"
	}
	return "/" + strings.Join(segments, "/")
}
