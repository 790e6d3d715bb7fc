package db

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when a key is absent.
var ErrKeyNotFound = errors.New("key not found")

// KVStore defines the persistent string key-value store the cache layer
// sits on.
type KVStore interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Del(key string) error
	GetContext() context.Context
	Ping() error
}
