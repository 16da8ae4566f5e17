// Package ecfg provides an in-process registry of named configuration
// objects backed by `.ecfg` files on disk.
//
// Each configuration is identified by a normalized name (lower-cased,
// whitespace-trimmed) and cached as a single live instance for the
// lifetime of the registry. Configurations are loaded lazily on first
// access, kept in memory, and written back on SaveAll or a controlled
// Shutdown. A configuration may also be declared in-memory only, in
// which case it never touches the filesystem.
//
// # File Format
//
// One file per configuration name at {path|~/.empire}/{name}.ecfg.
// In plain mode the file holds a UTF-8 JSON object. In encoded mode the
// JSON bytes are additionally wrapped in a base85 text transform (RFC 1924
// alphabet, compatible with Python's base64.b85encode). The encoding is a
// reversible transport transform, not a security measure.
//
// # Usage Example
//
//	reg := ecfg.New()
//	defer reg.Shutdown()
//
//	cfg, err := reg.GetConfig("myapp", ecfg.MapConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	settings := cfg.(ecfg.MapConfig)
//	settings["endpoint"] = "https://example.com"
//
// Fixed-schema configurations use Record:
//
//	type ServerSettings struct {
//	    Host string `json:"host"`
//	    Port int    `json:"port"`
//	}
//	cfg, err := reg.GetConfig("server", &ecfg.Record[ServerSettings]{})
//
// # Caching Behavior
//
// A second GetConfig call for an already-loaded name returns the cached
// instance unconditionally: the prototype, path, and encoding arguments
// of the later call are ignored. Callers that need fresh parameters must
// CloseConfigWithoutSave first.
//
// # Thread Safety
//
// All registry operations are guarded by a single mutex. Instances
// returned by GetConfig are shared; mutating one concurrently from
// multiple goroutines requires external synchronization.
package ecfg

import (
	"sync"

	"github.com/muurk/ecfg/internal/logging"
)

var (
	// Shared default registry (created lazily)
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide shared registry, creating it on first
// use. Applications that want isolated registries (for example in tests)
// should construct their own with New instead.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = New(WithLogger(logging.GetLogger()))
	})
	return defaultRegistry
}

// GetConfig loads or returns the named configuration from the default
// registry. See Registry.GetConfig.
func GetConfig(name string, proto Configuration, opts ...GetOption) (Configuration, error) {
	return Default().GetConfig(name, proto, opts...)
}

// ReloadConfig reloads the named configuration in the default registry.
// See Registry.ReloadConfig.
func ReloadConfig(name string) (Configuration, error) {
	return Default().ReloadConfig(name)
}

// CloseConfigWithoutSave evicts the named configuration from the default
// registry without persisting it. See Registry.CloseConfigWithoutSave.
func CloseConfigWithoutSave(name string) {
	Default().CloseConfigWithoutSave(name)
}

// SaveAll persists every serializable configuration held by the default
// registry. See Registry.SaveAll.
func SaveAll() error {
	return Default().SaveAll()
}

// Shutdown flushes the default registry exactly once, best-effort.
// See Registry.Shutdown.
func Shutdown() {
	Default().Shutdown()
}
