package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Nour-Ali/NodeBB-nour/internal/features/groups"
	"github.com/Nour-Ali/NodeBB-nour/pkg/config"
	"github.com/Nour-Ali/NodeBB-nour/pkg/logger"
	"github.com/Nour-Ali/NodeBB-nour/pkg/store"
)

type fixedLength int

func (f fixedLength) MaximumGroupNameLength(context.Context) (int, error) { return int(f), nil }

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestApplyDatabaseMigrationsCreatesStoreTables(t *testing.T) {
	db := openMemoryDB(t)

	cfg := &config.Config{Database: config.DatabaseConfig{RunMigrations: true}}
	require.NoError(t, ApplyDatabaseMigrations(db, cfg, logger.Discard()))

	for _, table := range []string{"legacy_hash", "legacy_set", "legacy_zset"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestApplyDatabaseMigrationsSkipped(t *testing.T) {
	db := openMemoryDB(t)

	cfg := &config.Config{Database: config.DatabaseConfig{RunMigrations: false}}
	require.NoError(t, ApplyDatabaseMigrations(db, cfg, logger.Discard()))
	assert.False(t, db.Migrator().HasTable("legacy_hash"))
}

func TestEnsureSystemGroupsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := openMemoryDB(t)
	require.NoError(t, store.Migrate(db))
	st := store.NewSQL(db)

	h := groups.NewHooks(logger.Discard())
	creator := groups.NewCreator(st, groups.DefaultNames, fixedLength(255), h, logger.Discard())

	require.NoError(t, EnsureSystemGroups(ctx, creator, logger.Discard()))
	require.NoError(t, EnsureSystemGroups(ctx, creator, logger.Discard()))

	reader := groups.NewReader(st)
	admins, err := reader.Get(ctx, "administrators")
	require.NoError(t, err)
	assert.Equal(t, 1, admins.System)
	assert.Equal(t, 1, admins.Private)
	assert.Equal(t, 1, admins.DisableJoinRequests)
	assert.Equal(t, "Admin", admins.UserTitle)

	registered, err := reader.Get(ctx, "registered-users")
	require.NoError(t, err)
	assert.Equal(t, 1, registered.Hidden)

	count, err := st.SortedSetCard(ctx, "groups:createtime")
	require.NoError(t, err)
	assert.EqualValues(t, len(SystemGroups), count)

	_, total, err := reader.ListVisible(ctx, groups.SortByAlpha, 0, -1)
	require.NoError(t, err)
	assert.Zero(t, total)
}

type failingCreator struct{ err error }

func (f failingCreator) Create(context.Context, groups.CreateInput) (*groups.Group, error) {
	return nil, f.err
}

func TestEnsureSystemGroupsPropagatesFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("store offline")
	err := EnsureSystemGroups(context.Background(), failingCreator{err: boom}, logger.Discard())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "administrators")
}
