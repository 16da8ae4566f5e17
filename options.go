package ecfg

import "go.uber.org/zap"

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger sets the logger used for registry diagnostics and for
// best-effort error reporting during Shutdown. The default is a nop
// logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// getOptions holds the per-call parameters of GetConfig. They only take
// effect when the call actually creates a registry entry; on a cache hit
// they are ignored entirely.
type getOptions struct {
	// path is the directory holding the configuration file ("" = default)
	path string
	// encoded selects the base85-wrapped file format
	encoded bool
	// inMemory disables persistence for this configuration
	inMemory bool
}

// GetOption customizes a single GetConfig call.
type GetOption func(*getOptions)

// WithPath sets the directory the configuration file lives in, replacing
// the default ~/.empire location.
func WithPath(dir string) GetOption {
	return func(o *getOptions) {
		o.path = dir
	}
}

// Encoded selects the base85-wrapped file format for this configuration.
func Encoded() GetOption {
	return func(o *getOptions) {
		o.encoded = true
	}
}

// InMemory marks the configuration as non-persistable: it is constructed
// fresh, never read from disk, and skipped by SaveAll.
func InMemory() GetOption {
	return func(o *getOptions) {
		o.inMemory = true
	}
}
