package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event creates an attribute for event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Method creates an attribute for HTTP methods.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// URI creates an attribute for route URI templates.
func URI(uri string) slog.Attr {
	return slog.String("uri", uri)
}

// Context creates an attribute for route table context names.
func Context(name string) slog.Attr {
	return slog.String("context", name)
}

// Cache creates an attribute for cache locations (file path or key).
func Cache(location string) slog.Attr {
	return slog.String("cache", location)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}
