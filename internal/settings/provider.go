// Package settings exposes the platform's live configuration object, the
// "config" hash in the store, to the feature packages.
package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Nour-Ali/NodeBB-nour/pkg/memory"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

const (
	configKey = "config"

	FieldMaximumGroupNameLength = "maximumGroupNameLength"
)

// Provider reads live settings with an in-process cache.
type Provider struct {
	store    store.Reader
	fallback int
	cache    *memory.Cache[int]
	logger   *slog.Logger
}

// NewProvider creates a provider. fallback applies when the stored value is
// missing or not a positive integer. A ttl of zero disables caching.
func NewProvider(st store.Reader, fallback int, ttl time.Duration, logger *slog.Logger) *Provider {
	return &Provider{
		store:    st,
		fallback: fallback,
		cache:    memory.New[int](ttl),
		logger:   logger,
	}
}

// MaximumGroupNameLength returns the longest allowed group name.
func (p *Provider) MaximumGroupNameLength(ctx context.Context) (int, error) {
	return p.cache.GetOrSet(FieldMaximumGroupNameLength, func() (int, error) {
		return p.positiveInt(ctx, FieldMaximumGroupNameLength)
	})
}

// Invalidate drops cached values so the next read hits the store.
func (p *Provider) Invalidate() {
	p.cache.Clear()
}

// Close stops the cache sweeper.
func (p *Provider) Close() {
	p.cache.Close()
}

func (p *Provider) positiveInt(ctx context.Context, field string) (int, error) {
	raw, ok, err := p.store.GetObjectField(ctx, configKey, field)
	if err != nil {
		return 0, fmt.Errorf("read setting %s: %w", field, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return p.fallback, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		p.logger.WarnContext(ctx, "ignoring invalid setting",
			slog.String("field", field),
			slog.String("value", raw),
			slog.Int("fallback", p.fallback),
		)
		return p.fallback, nil
	}
	return n, nil
}
