package engine

// The default engine is an explicitly installed process-wide handle, for
// callers that want one shared route table without threading an *Engine
// through every call site. There is no lazy construction and no
// synchronization: install it during startup, before concurrent use, and
// reset it only during teardown or between tests.

var defaultEngine *Engine

// SetDefault installs e as the process-wide default engine.
func SetDefault(e *Engine) {
	defaultEngine = e
}

// Default returns the installed default engine, or ErrNoDefault when
// SetDefault has not been called.
func Default() (*Engine, error) {
	if defaultEngine == nil {
		return nil, ErrNoDefault
	}
	return defaultEngine, nil
}

// ResetDefault discards the installed default engine.
func ResetDefault() {
	defaultEngine = nil
}
