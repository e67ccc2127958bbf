// Package store provides the key/value primitives the directory is built on:
// ordered sets, sets and hashes addressed by string keys.
//
// Two backends implement it. Redis maps each primitive onto the native command
// (ZADD, SADD, HSET, ...). SQL keeps the same model in three tables through
// GORM, so PostgreSQL and SQLite deployments see identical semantics.
//
// Every write is atomic per call and idempotent: adding an existing member
// updates its score, writing an existing hash field overwrites it. No
// cross-call transaction is implied; backends that can group writes also
// implement Batcher.
package store

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

import (
	"context"
)

// SortedSetEntry is one (key, score, member) triple for SortedSetAddBulk.
type SortedSetEntry struct {
	Key    string
	Score  float64
	Member string
}

// Writer is the write half of the store.
type Writer interface {
	// SortedSetAdd adds member to the ordered set at key, or updates its score.
	SortedSetAdd(ctx context.Context, key string, score float64, member string) error
	// SortedSetAddBulk applies several SortedSetAdd calls in one round trip.
	SortedSetAddBulk(ctx context.Context, entries []SortedSetEntry) error
	// SetAdd adds member to the set at key.
	SetAdd(ctx context.Context, key, member string) error
	// SetObject merges fields into the hash at key.
	SetObject(ctx context.Context, key string, fields map[string]string) error
	// SetObjectField writes a single hash field.
	SetObjectField(ctx context.Context, key, field, value string) error
}

// Reader is the read half of the store. Missing keys are not errors.
type Reader interface {
	// GetObject returns the hash at key, or nil when it does not exist.
	GetObject(ctx context.Context, key string) (map[string]string, error)
	// GetObjectField returns a single hash field and whether it was present.
	GetObjectField(ctx context.Context, key, field string) (string, bool, error)
	// Exists reports whether any primitive is stored under key.
	Exists(ctx context.Context, key string) (bool, error)
	IsSetMember(ctx context.Context, key, member string) (bool, error)
	SetMembers(ctx context.Context, key string) ([]string, error)
	// SortedSetScore returns member's score and whether member is present.
	SortedSetScore(ctx context.Context, key, member string) (float64, bool, error)
	// SortedSetRange returns members ordered by ascending score then member,
	// using inclusive start/stop indexes; negative indexes count from the end.
	SortedSetRange(ctx context.Context, key string, start, stop int) ([]string, error)
	// SortedSetRevRange is SortedSetRange in descending order.
	SortedSetRevRange(ctx context.Context, key string, start, stop int) ([]string, error)
	SortedSetCard(ctx context.Context, key string) (int64, error)
}

// Store is a complete backend.
type Store interface {
	Writer
	Reader

	// Backend names the implementation ("redis", "sql") for logs and metrics.
	Backend() string
	Ping(ctx context.Context) error
	Close() error
}

// Batcher is implemented by backends able to apply a group of writes
// atomically. fn queues writes on w; none of them is visible until fn returns
// nil and the batch commits. A non-nil error from fn discards the batch.
type Batcher interface {
	Batch(ctx context.Context, fn func(w Writer) error) error
}

// normalizeRange resolves Redis-style inclusive indexes against card. It
// returns ok=false when the range is empty.
func normalizeRange(start, stop int, card int64) (offset, limit int, ok bool) {
	n := int(card)
	if start < 0 {
		start = n + start
	}
	if stop < 0 {
		stop = n + stop
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	if n == 0 || start > stop {
		return 0, 0, false
	}
	return start, stop - start + 1, true
}
