package store

import (
	"context"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Nour-Ali/NodeBB-nour/pkg/database/migrations"
)

const backendSQL = "sql"

type hashRow struct {
	Key   string `gorm:"column:_key;primaryKey;size:512"`
	Field string `gorm:"column:field;primaryKey;size:512"`
	Value string `gorm:"column:value;type:text;not null"`
}

func (hashRow) TableName() string { return "legacy_hash" }

type setRow struct {
	Key    string `gorm:"column:_key;primaryKey;size:512"`
	Member string `gorm:"column:member;primaryKey;size:512"`
}

func (setRow) TableName() string { return "legacy_set" }

type zsetRow struct {
	Key    string  `gorm:"column:_key;primaryKey;size:512;index:idx_legacy_zset_key_score,priority:1"`
	Member string  `gorm:"column:member;primaryKey;size:512"`
	Score  float64 `gorm:"column:score;not null;index:idx_legacy_zset_key_score,priority:2"`
}

func (zsetRow) TableName() string { return "legacy_zset" }

func init() {
	migrations.Register("legacy_store_tables", Migrate)
}

// Migrate creates or updates the three tables backing the SQL store.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&hashRow{}, &setRow{}, &zsetRow{}); err != nil {
		return fmt.Errorf("migrate store tables: %w", err)
	}
	return nil
}

// SQL stores hashes, sets and ordered sets in relational tables through GORM.
// Any dialect GORM supports works; PostgreSQL and SQLite are the tested ones.
type SQL struct {
	db *gorm.DB
	w  sqlWriter
}

// NewSQL wraps an open connection. Call Migrate (or run scripts/migrate)
// before first use.
func NewSQL(db *gorm.DB) *SQL {
	return &SQL{db: db, w: sqlWriter{db: db}}
}

func (s *SQL) Backend() string { return backendSQL }

func (s *SQL) SortedSetAdd(ctx context.Context, key string, score float64, member string) (err error) {
	defer func(start time.Time) { observe(backendSQL, "zadd", start, err) }(time.Now())
	return s.w.SortedSetAdd(ctx, key, score, member)
}

func (s *SQL) SortedSetAddBulk(ctx context.Context, entries []SortedSetEntry) (err error) {
	defer func(start time.Time) { observe(backendSQL, "zadd_bulk", start, err) }(time.Now())
	return s.w.SortedSetAddBulk(ctx, entries)
}

func (s *SQL) SetAdd(ctx context.Context, key, member string) (err error) {
	defer func(start time.Time) { observe(backendSQL, "sadd", start, err) }(time.Now())
	return s.w.SetAdd(ctx, key, member)
}

func (s *SQL) SetObject(ctx context.Context, key string, fields map[string]string) (err error) {
	defer func(start time.Time) { observe(backendSQL, "hset", start, err) }(time.Now())
	return s.w.SetObject(ctx, key, fields)
}

func (s *SQL) SetObjectField(ctx context.Context, key, field, value string) (err error) {
	defer func(start time.Time) { observe(backendSQL, "hset_field", start, err) }(time.Now())
	return s.w.SetObjectField(ctx, key, field, value)
}

// Batch runs fn inside a database transaction.
func (s *SQL) Batch(ctx context.Context, fn func(w Writer) error) (err error) {
	defer func(start time.Time) { observe(backendSQL, "batch", start, err) }(time.Now())
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(sqlWriter{db: tx})
	})
	if err != nil {
		return fmt.Errorf("sql batch: %w", err)
	}
	return nil
}

func (s *SQL) GetObject(ctx context.Context, key string) (_ map[string]string, err error) {
	defer func(start time.Time) { observe(backendSQL, "hgetall", start, err) }(time.Now())

	var rows []hashRow
	if err = s.db.WithContext(ctx).Where("_key = ?", key).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("get object %s: %w", key, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	fields := make(map[string]string, len(rows))
	for _, row := range rows {
		fields[row.Field] = row.Value
	}
	return fields, nil
}

func (s *SQL) GetObjectField(ctx context.Context, key, field string) (_ string, _ bool, err error) {
	defer func(start time.Time) { observe(backendSQL, "hget", start, err) }(time.Now())

	var rows []hashRow
	err = s.db.WithContext(ctx).
		Where("_key = ? AND field = ?", key, field).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return "", false, fmt.Errorf("get object field %s %s: %w", key, field, err)
	}
	if len(rows) == 0 {
		return "", false, nil
	}
	return rows[0].Value, true, nil
}

func (s *SQL) Exists(ctx context.Context, key string) (_ bool, err error) {
	defer func(start time.Time) { observe(backendSQL, "exists", start, err) }(time.Now())

	for _, model := range []interface{}{&hashRow{}, &setRow{}, &zsetRow{}} {
		var keys []string
		err = s.db.WithContext(ctx).
			Model(model).
			Where("_key = ?", key).
			Limit(1).
			Pluck("_key", &keys).Error
		if err != nil {
			return false, fmt.Errorf("exists %s: %w", key, err)
		}
		if len(keys) > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (s *SQL) IsSetMember(ctx context.Context, key, member string) (_ bool, err error) {
	defer func(start time.Time) { observe(backendSQL, "sismember", start, err) }(time.Now())

	var count int64
	err = s.db.WithContext(ctx).
		Model(&setRow{}).
		Where("_key = ? AND member = ?", key, member).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("is set member %s: %w", key, err)
	}
	return count > 0, nil
}

func (s *SQL) SetMembers(ctx context.Context, key string) (_ []string, err error) {
	defer func(start time.Time) { observe(backendSQL, "smembers", start, err) }(time.Now())

	var members []string
	err = s.db.WithContext(ctx).
		Model(&setRow{}).
		Where("_key = ?", key).
		Order(s.memberOrder("ASC")).
		Pluck("member", &members).Error
	if err != nil {
		return nil, fmt.Errorf("set members %s: %w", key, err)
	}
	return members, nil
}

func (s *SQL) SortedSetScore(ctx context.Context, key, member string) (_ float64, _ bool, err error) {
	defer func(start time.Time) { observe(backendSQL, "zscore", start, err) }(time.Now())

	var rows []zsetRow
	err = s.db.WithContext(ctx).
		Where("_key = ? AND member = ?", key, member).
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return 0, false, fmt.Errorf("sorted set score %s: %w", key, err)
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	return rows[0].Score, true, nil
}

func (s *SQL) SortedSetRange(ctx context.Context, key string, start, stop int) (_ []string, err error) {
	defer func(begin time.Time) { observe(backendSQL, "zrange", begin, err) }(time.Now())
	return s.sortedSetRange(ctx, key, start, stop, "ASC")
}

func (s *SQL) SortedSetRevRange(ctx context.Context, key string, start, stop int) (_ []string, err error) {
	defer func(begin time.Time) { observe(backendSQL, "zrevrange", begin, err) }(time.Now())
	return s.sortedSetRange(ctx, key, start, stop, "DESC")
}

func (s *SQL) sortedSetRange(ctx context.Context, key string, start, stop int, direction string) ([]string, error) {
	card, err := s.card(ctx, key)
	if err != nil {
		return nil, err
	}
	offset, limit, ok := normalizeRange(start, stop, card)
	if !ok {
		return []string{}, nil
	}

	var members []string
	err = s.db.WithContext(ctx).
		Model(&zsetRow{}).
		Where("_key = ?", key).
		Order("score " + direction).
		Order(s.memberOrder(direction)).
		Offset(offset).
		Limit(limit).
		Pluck("member", &members).Error
	if err != nil {
		return nil, fmt.Errorf("sorted set range %s: %w", key, err)
	}
	return members, nil
}

func (s *SQL) SortedSetCard(ctx context.Context, key string) (_ int64, err error) {
	defer func(start time.Time) { observe(backendSQL, "zcard", start, err) }(time.Now())
	return s.card(ctx, key)
}

func (s *SQL) card(ctx context.Context, key string) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&zsetRow{}).Where("_key = ?", key).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("sorted set card %s: %w", key, err)
	}
	return count, nil
}

// memberOrder sorts members bytewise, as Redis does. PostgreSQL needs the C
// collation for that; SQLite's default BINARY collation already is.
func (s *SQL) memberOrder(direction string) string {
	if s.db.Dialector.Name() == "postgres" {
		return `member COLLATE "C" ` + direction
	}
	return "member " + direction
}

func (s *SQL) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the connection pool.
func (s *SQL) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}

// sqlWriter issues upserts against a connection or an open transaction.
type sqlWriter struct {
	db *gorm.DB
}

func (w sqlWriter) SortedSetAdd(ctx context.Context, key string, score float64, member string) error {
	return w.SortedSetAddBulk(ctx, []SortedSetEntry{{Key: key, Score: score, Member: member}})
}

func (w sqlWriter) SortedSetAddBulk(ctx context.Context, entries []SortedSetEntry) error {
	if len(entries) == 0 {
		return nil
	}

	// One row per (key, member); later entries win, as sequential ZADDs would.
	index := make(map[[2]string]int, len(entries))
	rows := make([]zsetRow, 0, len(entries))
	for _, e := range entries {
		id := [2]string{e.Key, e.Member}
		if i, ok := index[id]; ok {
			rows[i].Score = e.Score
			continue
		}
		index[id] = len(rows)
		rows = append(rows, zsetRow{Key: e.Key, Member: e.Member, Score: e.Score})
	}

	err := w.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "_key"}, {Name: "member"}},
		DoUpdates: clause.AssignmentColumns([]string{"score"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("sorted set add: %w", err)
	}
	return nil
}

func (w sqlWriter) SetAdd(ctx context.Context, key, member string) error {
	err := w.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&setRow{Key: key, Member: member}).Error
	if err != nil {
		return fmt.Errorf("set add %s: %w", key, err)
	}
	return nil
}

func (w sqlWriter) SetObject(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]hashRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, hashRow{Key: key, Field: name, Value: fields[name]})
	}

	err := w.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "_key"}, {Name: "field"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("set object %s: %w", key, err)
	}
	return nil
}

func (w sqlWriter) SetObjectField(ctx context.Context, key, field, value string) error {
	return w.SetObject(ctx, key, map[string]string{field: value})
}
