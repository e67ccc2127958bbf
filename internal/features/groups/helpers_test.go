package groups

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Nour-Ali/NodeBB-nour/pkg/logger"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

type staticSettings int

func (s staticSettings) MaximumGroupNameLength(context.Context) (int, error) {
	return int(s), nil
}

var fixedNow = time.UnixMilli(1_700_000_000_000)

func newTestStore(t *testing.T) *store.SQL {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, store.Migrate(db))
	return store.NewSQL(db)
}

func newTestCreator(t *testing.T, st store.Store, opts ...Option) (*Creator, *Hooks) {
	t.Helper()

	h := NewHooks(logger.Discard())
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewCreator(st, DefaultNames, staticSettings(255), h, logger.Discard(), opts...), h
}

func mustCreate(t *testing.T, c *Creator, in CreateInput) *Group {
	t.Helper()

	g, err := c.Create(context.Background(), in)
	require.NoError(t, err)
	return g
}
