// Package config provides type-safe environment variable loading with
// per-type caching. A .env file, when present, is loaded once before the
// first parse; parsing itself is done by caarlos0/env struct tags.
//
//	type CacheConfig struct {
//		Dir      string `env:"RUTAS_CACHE_DIR" envDefault:"storage/cache/rutas"`
//		AutoSave bool   `env:"RUTAS_AUTOSAVE" envDefault:"true"`
//	}
//
//	var cfg CacheConfig
//	config.MustLoad(&cfg)
//
// Each configuration type is parsed once per process; later Load calls
// for the same type return the cached value.
package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once

	mu    sync.Mutex
	cache = make(map[reflect.Type]any)
)

// Load parses environment variables into cfg, which must be a non-nil
// struct pointer. The result is cached by struct type.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return fmt.Errorf("config: nil target")
	}

	// Best effort: a missing .env file is not an error.
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeOf(*cfg)

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := cache[typ]; ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", typ, err)
	}

	cache[typ] = *cfg
	return nil
}

// MustLoad is Load, panicking on failure. Useful during startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
