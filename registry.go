package ecfg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// record is the registry entry for one configuration name. Records are
// immutable; reload replaces the entry wholesale.
type record struct {
	// config is the live configuration instance
	config Configuration
	// proto is the prototype the instance was built from, kept for reload
	proto Configuration
	// encoded selects the base85-wrapped file format
	encoded bool
	// path is the resolved file path; empty for in-memory records
	path string
	// serializable is false for in-memory-only records
	serializable bool
}

// Registry holds at most one live configuration instance per normalized
// name, together with the parameters needed to reload and persist it.
// All operations are guarded by a single mutex; see the package
// documentation for the sharing rules of returned instances.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*record
	logger  *zap.Logger

	// Ensures the shutdown flush runs at most once
	shutdownOnce sync.Once
}

// New constructs an empty registry. Use Default for the process-wide
// shared instance.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]*record),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetConfig returns the configuration registered under name, loading it
// first if necessary. proto determines the configuration's kind: pass
// ecfg.MapConfig{} for a dynamic mapping or a zero *ecfg.Record[T] for a
// fixed-schema record; its FromMap builds the instance.
//
// On a cache hit the stored instance is returned unconditionally and the
// prototype, path, and encoding options of the call are ignored. On a
// miss the file at the resolved path is loaded if it exists; otherwise a
// default instance is constructed and the file is only created by a
// later SaveAll. With the InMemory option no file I/O happens at all.
func (r *Registry) GetConfig(name string, proto Configuration, opts ...GetOption) (Configuration, error) {
	var o getOptions
	for _, opt := range opts {
		opt(&o)
	}

	key := NormalizeName(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if rec, ok := r.entries[key]; ok {
		return rec.config, nil
	}

	if o.inMemory {
		cfg, err := defaultInstance(proto)
		if err != nil {
			return nil, err
		}
		r.entries[key] = &record{
			config:       cfg,
			proto:        proto,
			encoded:      o.encoded,
			serializable: false,
		}
		r.logger.Debug("configuration created in memory", zap.String("name", key))
		return cfg, nil
	}

	path, err := ResolvePath(key, o.path)
	if err != nil {
		return nil, err
	}

	rec, err := r.loadRecord(key, proto, path, o.encoded)
	if err != nil {
		return nil, err
	}
	r.entries[key] = rec
	return rec.config, nil
}

// ReloadConfig discards the in-memory instance registered under name and
// rebuilds it from the file state, using the type, path, and encoding
// stored at first load. The name must already be registered; a name that
// was never loaded fails with NotLoadedError. For an in-memory record
// this resets the instance to defaults.
func (r *Registry) ReloadConfig(name string) (Configuration, error) {
	key := NormalizeName(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.entries[key]
	if !ok {
		return nil, &NotLoadedError{Name: key}
	}

	if !current.serializable {
		cfg, err := defaultInstance(current.proto)
		if err != nil {
			return nil, err
		}
		r.entries[key] = &record{
			config:       cfg,
			proto:        current.proto,
			encoded:      current.encoded,
			serializable: false,
		}
		return cfg, nil
	}

	rec, err := r.loadRecord(key, current.proto, current.path, current.encoded)
	if err != nil {
		return nil, err
	}
	r.entries[key] = rec
	r.logger.Debug("configuration reloaded", zap.String("name", key), zap.String("path", rec.path))
	return rec.config, nil
}

// CloseConfigWithoutSave removes the named configuration from the
// registry without writing anything; in-memory edits since the last load
// or save are lost. Unknown names are a no-op.
func (r *Registry) CloseConfigWithoutSave(name string) {
	key := NormalizeName(name)

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
}

// SaveAll persists every serializable configuration to its stored path
// using its stored encoding mode, creating the target directory if
// needed. Non-serializable records are skipped. Each configuration is
// attempted once; failures are collected and returned joined.
func (r *Registry) SaveAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for key, rec := range r.entries {
		if !rec.serializable {
			continue
		}
		if err := saveRecord(rec); err != nil {
			errs = append(errs, fmt.Errorf("save %s: %w", key, err))
			continue
		}
		r.logger.Debug("configuration saved",
			zap.String("name", key),
			zap.String("path", rec.path),
			zap.Bool("encoded", rec.encoded),
		)
	}
	return errors.Join(errs...)
}

// Shutdown flushes the registry exactly once, for use on the controlled
// exit path (typically via defer from the application entry point).
// Errors are logged rather than returned: at shutdown there is no caller
// left to act on them. Abrupt termination skips the flush entirely.
func (r *Registry) Shutdown() {
	r.shutdownOnce.Do(func() {
		if err := r.SaveAll(); err != nil {
			r.logger.Warn("best-effort configuration flush failed", zap.Error(err))
		}
	})
}

// Len returns the number of registered configurations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// loadRecord builds a serializable record from the file at path, or from
// a default instance when no file exists yet. An existing file that
// fails to decode is an error; only absence is forgiven.
func (r *Registry) loadRecord(key string, proto Configuration, path string, encoded bool) (*record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read configuration file %s: %w", path, err)
		}
		cfg, derr := defaultInstance(proto)
		if derr != nil {
			return nil, derr
		}
		r.logger.Debug("configuration file missing, using defaults",
			zap.String("name", key),
			zap.String("path", path),
		)
		return &record{config: cfg, proto: proto, encoded: encoded, path: path, serializable: true}, nil
	}

	m, err := decodeDocument(path, data, encoded)
	if err != nil {
		return nil, err
	}
	cfg, err := proto.FromMap(m)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("configuration loaded",
		zap.String("name", key),
		zap.String("path", path),
		zap.Bool("encoded", encoded),
	)
	return &record{config: cfg, proto: proto, encoded: encoded, path: path, serializable: true}, nil
}

// saveRecord writes one record's current state to its file. The write is
// a single call, not temp-and-rename: a crash mid-write can truncate the
// file, which is accepted for this utility's scope.
func saveRecord(rec *record) error {
	m, err := rec.config.ToMap()
	if err != nil {
		return err
	}
	data, err := encodeDocument(rec.path, m, rec.encoded)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(rec.path), 0o700); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}
	if err := os.WriteFile(rec.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}
	return nil
}

// defaultInstance builds a fresh zero-valued configuration from proto by
// feeding it an empty map. Record construction treats absent keys as
// zero values, so this cannot fail for the built-in kinds.
func defaultInstance(proto Configuration) (Configuration, error) {
	return proto.FromMap(map[string]any{})
}
