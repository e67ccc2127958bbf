package database

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
)

// ReconnectPlugin pings the pool before statements and, on a connection-level
// failure, waits for the database to come back before the statement runs.
type ReconnectPlugin struct {
	logger     *slog.Logger
	maxRetries int
	retryDelay time.Duration

	recovered atomic.Int64
}

// NewReconnectPlugin creates the plugin with three linear-backoff retries.
func NewReconnectPlugin(logger *slog.Logger) *ReconnectPlugin {
	return &ReconnectPlugin{
		logger:     logger,
		maxRetries: 3,
		retryDelay: 500 * time.Millisecond,
	}
}

func (p *ReconnectPlugin) Name() string { return "reconnect_plugin" }

// Initialize hooks the plugin in front of every statement kind the store uses.
func (p *ReconnectPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	hooks := []struct {
		name     string
		register func(string, func(*gorm.DB)) error
	}{
		{"query", func(n string, fn func(*gorm.DB)) error { return cb.Query().Before("gorm:query").Register(n, fn) }},
		{"create", func(n string, fn func(*gorm.DB)) error { return cb.Create().Before("gorm:create").Register(n, fn) }},
		{"update", func(n string, fn func(*gorm.DB)) error { return cb.Update().Before("gorm:update").Register(n, fn) }},
		{"delete", func(n string, fn func(*gorm.DB)) error { return cb.Delete().Before("gorm:delete").Register(n, fn) }},
		{"row", func(n string, fn func(*gorm.DB)) error { return cb.Row().Before("gorm:row").Register(n, fn) }},
		{"raw", func(n string, fn func(*gorm.DB)) error { return cb.Raw().Before("gorm:raw").Register(n, fn) }},
	}

	for _, h := range hooks {
		if err := h.register("reconnect:before_"+h.name, p.ensureConnected); err != nil {
			return err
		}
	}
	return nil
}

// Recovered returns how many outages the plugin has waited out.
func (p *ReconnectPlugin) Recovered() int64 {
	return p.recovered.Load()
}

// ensureConnected skips statements inside a transaction: the transaction
// already holds a connection and a pool capped at one would block on the ping.
func (p *ReconnectPlugin) ensureConnected(db *gorm.DB) {
	if _, inTx := db.Statement.ConnPool.(gorm.TxCommitter); inTx {
		return
	}

	sqlDB, err := db.DB()
	if err != nil {
		return
	}

	ctx := db.Statement.Context
	if ctx == nil {
		ctx = context.Background()
	}

	err = sqlDB.PingContext(ctx)
	if !p.shouldReconnect(err) {
		return
	}

	p.logger.Warn("database connection lost", slog.String("error", err.Error()))
	if p.waitForDatabase(ctx, sqlDB) {
		total := p.recovered.Add(1)
		p.logger.Info("database connection restored", slog.Int64("total_recoveries", total))
		return
	}
	p.logger.Error("database still unreachable", slog.Int("attempts", p.maxRetries))
}

func (p *ReconnectPlugin) waitForDatabase(ctx context.Context, sqlDB *sql.DB) bool {
	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		timer := time.NewTimer(p.retryDelay * time.Duration(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		if err := sqlDB.PingContext(ctx); err == nil {
			return true
		}
		p.logger.Debug("reconnect attempt failed", slog.Int("attempt", attempt))
	}
	return false
}

var connectionErrors = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"no such host",
	"network is unreachable",
	"connection timed out",
	"eof",
	"bad connection",
	"invalid connection",
	"closed network connection",
	"connection lost",
	"server closed",
}

// shouldReconnect reports whether err is a connection-level failure.
func (p *ReconnectPlugin) shouldReconnect(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, sql.ErrConnDone) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, pattern := range connectionErrors {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}
