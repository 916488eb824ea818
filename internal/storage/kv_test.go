package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/skydive/internal/systems"
)

// testKeyValueStorage checks the behaviour every statistics backend shares.
func testKeyValueStorage(t *testing.T, kv systems.KeyValueStorage) {
	t.Helper()

	v, err := kv.GetInt("missing", 7)
	if err != nil {
		t.Fatalf("GetInt(missing) failed: %v", err)
	}
	if v != 7 {
		t.Errorf("GetInt(missing) = %d, want default 7", v)
	}

	if err := kv.PutInt("a", 42); err != nil {
		t.Fatalf("PutInt() failed: %v", err)
	}
	if err := kv.PutInt("a", -3); err != nil {
		t.Fatalf("PutInt() overwrite failed: %v", err)
	}
	if v, _ := kv.GetInt("a", 0); v != -3 {
		t.Errorf("GetInt(a) = %d, want -3", v)
	}

	if err := kv.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if v, _ := kv.GetInt("a", 0); v != 0 {
		t.Errorf("GetInt(a) after Clear = %d, want 0", v)
	}

	// StatsManager works end to end over the backend
	stats := systems.NewStatsManager(kv)
	if err := stats.RecordRun(systems.RunSummary{Score: 100, CoinsCollected: 5}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if err := stats.RecordRun(systems.RunSummary{Score: 40, ObstaclesHit: 2}); err != nil {
		t.Fatalf("RecordRun() failed: %v", err)
	}
	if stats.GamesPlayed() != 2 || stats.HighestScore() != 100 || stats.LastScore() != 40 || stats.AverageScore() != 70 {
		t.Errorf("Unexpected stats: played %d high %d last %d avg %v",
			stats.GamesPlayed(), stats.HighestScore(), stats.LastScore(), stats.AverageScore())
	}
}

func TestMemoryKV(t *testing.T) {
	testKeyValueStorage(t, NewMemoryKV())
}

func TestBadgerKV(t *testing.T) {
	dir := t.TempDir()
	kv, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("OpenBadger() failed: %v", err)
	}
	testKeyValueStorage(t, kv)

	if err := kv.PutInt("persist", 9); err != nil {
		t.Fatalf("PutInt() failed: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Errorf("second Close() should be a no-op, got %v", err)
	}
	if err := kv.PutInt("late", 1); err == nil {
		t.Error("PutInt() after Close should fail")
	}

	reopened, err := OpenBadger(dir)
	if err != nil {
		t.Fatalf("OpenBadger() reopen failed: %v", err)
	}
	defer reopened.Close()
	if v, _ := reopened.GetInt("persist", 0); v != 9 {
		t.Errorf("value did not survive reopen: got %d", v)
	}
}

func TestRedisKV(t *testing.T) {
	addr := os.Getenv("SKYDIVE_REDIS_ADDR")
	if addr == "" {
		t.Skip("SKYDIVE_REDIS_ADDR not set")
	}

	cfg := DefaultRedisConfig()
	cfg.Addr = addr
	cfg.KeyPrefix = "skydive:test:" + uuid.NewString() + ":"

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	kv, err := OpenRedis(ctx, cfg)
	if err != nil {
		t.Fatalf("OpenRedis() failed: %v", err)
	}
	defer kv.Close()
	defer kv.Clear()

	testKeyValueStorage(t, kv)
}

func TestOpenStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		opts    StatsOptions
		store   *Store
		wantErr bool
	}{
		{"default is sqlite", StatsOptions{}, store, false},
		{"sqlite", StatsOptions{Backend: BackendSQLite}, store, false},
		{"sqlite without store", StatsOptions{Backend: BackendSQLite}, nil, true},
		{"memory", StatsOptions{Backend: BackendMemory}, nil, false},
		{"badger", StatsOptions{Backend: BackendBadger, BadgerDir: filepath.Join(t.TempDir(), "stats")}, nil, false},
		{"unknown", StatsOptions{Backend: "etcd"}, nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kv, closeFn, err := OpenStats(ctx, tc.opts, tc.store)
			if tc.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("OpenStats() failed: %v", err)
			}
			defer closeFn()

			if err := kv.PutInt("k", 1); err != nil {
				t.Errorf("PutInt() failed: %v", err)
			}
		})
	}
}
