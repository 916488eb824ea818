package storage

import (
	"context"
	"fmt"

	"github.com/vovakirdan/skydive/internal/systems"
)

// Stats backend names accepted by OpenStats.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// StatsOptions selects and configures the lifetime statistics backend.
type StatsOptions struct {
	Backend   string
	BadgerDir string
	Redis     RedisConfig
}

// OpenStats opens the statistics backend named in opts. The sqlite backend
// reuses store. The returned close function releases only what OpenStats
// opened itself.
func OpenStats(ctx context.Context, opts StatsOptions, store *Store) (systems.KeyValueStorage, func() error, error) {
	noop := func() error { return nil }

	switch opts.Backend {
	case "", BackendSQLite:
		if store == nil {
			return nil, nil, fmt.Errorf("storage: sqlite stats backend needs an open store")
		}
		return store, noop, nil
	case BackendBadger:
		kv, err := OpenBadger(opts.BadgerDir)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Close, nil
	case BackendRedis:
		kv, err := OpenRedis(ctx, opts.Redis)
		if err != nil {
			return nil, nil, err
		}
		return kv, kv.Close, nil
	case BackendMemory:
		return NewMemoryKV(), noop, nil
	default:
		return nil, nil, fmt.Errorf("storage: unknown stats backend %q", opts.Backend)
	}
}
