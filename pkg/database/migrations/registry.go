// Package migrations holds schema steps registered by the packages that own
// the tables. Steps run in registration order and must be idempotent.
package migrations

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Func applies one schema step.
type Func func(*gorm.DB) error

type step struct {
	name string
	fn   Func
}

var (
	mu    sync.RWMutex
	steps []step
)

// Register adds a step. Registering a name twice panics; it is meant to be
// called from init.
func Register(name string, fn Func) {
	mu.Lock()
	defer mu.Unlock()

	for _, s := range steps {
		if s.name == name {
			panic(fmt.Sprintf("migrations: %q registered twice", name))
		}
	}
	steps = append(steps, step{name: name, fn: fn})
}

// Names lists registered steps in run order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.name
	}
	return names
}

// Run applies every registered step, stopping at the first failure.
func Run(db *gorm.DB, log *slog.Logger) error {
	mu.RLock()
	pending := append([]step(nil), steps...)
	mu.RUnlock()

	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	if len(pending) == 0 {
		log.Info("no database migrations registered")
		return nil
	}

	for _, s := range pending {
		start := time.Now()
		if err := s.fn(db); err != nil {
			return fmt.Errorf("migration %s: %w", s.name, err)
		}
		log.Info("migration applied", slog.String("name", s.name), slog.Duration("took", time.Since(start)))
	}

	return nil
}
