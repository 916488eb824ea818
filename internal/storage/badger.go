package storage

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dgraph-io/badger/v3"

	"github.com/vovakirdan/skydive/internal/systems"
)

const badgerPrefix = "stats:"

// BadgerKV keeps lifetime statistics in an embedded Badger database.
type BadgerKV struct {
	db      *badger.DB
	mu      sync.RWMutex
	isReady bool
}

// OpenBadger opens or creates a Badger database in dir.
func OpenBadger(dir string) (*BadgerKV, error) {
	dir, err := expandHome(dir)
	if err != nil {
		return nil, err
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open badger at %s: %w", dir, err)
	}
	return &BadgerKV{db: db, isReady: true}, nil
}

// Close closes the database. Closing twice is a no-op.
func (b *BadgerKV) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.isReady {
		return nil
	}
	b.isReady = false
	return b.db.Close()
}

// GetInt returns the stored value for key, or def if it has never been set.
func (b *BadgerKV) GetInt(key string, def int) (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.isReady {
		return def, errClosed
	}

	v := def
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			n, err := strconv.Atoi(string(val))
			if err != nil {
				return err
			}
			v = n
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot read %s: %w", key, err)
	}
	return v, nil
}

// PutInt stores value under key.
func (b *BadgerKV) PutInt(key string, value int) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.isReady {
		return errClosed
	}

	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(badgerPrefix+key), []byte(strconv.Itoa(value)))
	})
	if err != nil {
		return fmt.Errorf("storage: cannot write %s: %w", key, err)
	}
	return nil
}

// Clear removes every statistics key.
func (b *BadgerKV) Clear() error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.isReady {
		return errClosed
	}
	if err := b.db.DropPrefix([]byte(badgerPrefix)); err != nil {
		return fmt.Errorf("storage: cannot clear values: %w", err)
	}
	return nil
}

var _ systems.KeyValueStorage = (*BadgerKV)(nil)
