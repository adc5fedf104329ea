package input

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/dyluth/advent/internal/session"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// StoreConfig selects and configures a cache backend.
type StoreConfig struct {
	Backend  string
	Dir      string
	RedisURL string
	Year     int
	// ScopeBySession keeps a separate cache per session fingerprint.
	ScopeBySession bool
}

// OpenStore creates the configured store. The returned store implements
// io.Closer when it holds a connection.
func OpenStore(ctx context.Context, cfg StoreConfig, credential session.Credential) (Store, error) {
	scope := ""
	if cfg.ScopeBySession {
		scope = credential.Fingerprint()
	}

	switch cfg.Backend {
	case "", BackendFile:
		dir := cfg.Dir
		if scope != "" {
			dir = filepath.Join(dir, scope)
		}
		return NewFileStore(dir), nil

	case BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		store, err := NewRedisStore(opts, cfg.Year, scope)
		if err != nil {
			return nil, err
		}
		if err := store.Ping(ctx); err != nil {
			store.Close()
			return nil, &IOError{Op: "connect cache", Path: opts.Addr, Err: err}
		}
		return store, nil
	}
	return nil, fmt.Errorf("unknown cache backend %q (must be %q or %q)", cfg.Backend, BackendFile, BackendRedis)
}
