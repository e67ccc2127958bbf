package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Nour-Ali/NodeBB-nour/pkg/metrics"
)

const backendRedis = "redis"

// Redis is the Redis-backed Store.
type Redis struct {
	client *redis.Client
	w      redisWriter
}

// NewRedis dials addr and verifies the connection with PING.
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return NewRedisFromClient(client), nil
}

// NewRedisFromClient wraps an existing client without pinging it.
func NewRedisFromClient(client *redis.Client) *Redis {
	return &Redis{client: client, w: redisWriter{cmd: client}}
}

func (r *Redis) Backend() string { return backendRedis }

func observe(backend, op string, start time.Time, err error) {
	metrics.RecordStoreOp(backend, op, time.Since(start), err)
}

func (r *Redis) SortedSetAdd(ctx context.Context, key string, score float64, member string) (err error) {
	defer func(start time.Time) { observe(backendRedis, "zadd", start, err) }(time.Now())
	return r.w.SortedSetAdd(ctx, key, score, member)
}

// SortedSetAddBulk pipelines the ZADDs; the pipeline is not transactional.
func (r *Redis) SortedSetAddBulk(ctx context.Context, entries []SortedSetEntry) (err error) {
	defer func(start time.Time) { observe(backendRedis, "zadd_bulk", start, err) }(time.Now())
	if len(entries) == 0 {
		return nil
	}
	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		return redisWriter{cmd: pipe}.SortedSetAddBulk(ctx, entries)
	})
	if err != nil {
		return fmt.Errorf("zadd bulk: %w", err)
	}
	return nil
}

func (r *Redis) SetAdd(ctx context.Context, key, member string) (err error) {
	defer func(start time.Time) { observe(backendRedis, "sadd", start, err) }(time.Now())
	return r.w.SetAdd(ctx, key, member)
}

func (r *Redis) SetObject(ctx context.Context, key string, fields map[string]string) (err error) {
	defer func(start time.Time) { observe(backendRedis, "hset", start, err) }(time.Now())
	return r.w.SetObject(ctx, key, fields)
}

func (r *Redis) SetObjectField(ctx context.Context, key, field, value string) (err error) {
	defer func(start time.Time) { observe(backendRedis, "hset_field", start, err) }(time.Now())
	return r.w.SetObjectField(ctx, key, field, value)
}

// Batch runs fn inside MULTI/EXEC.
func (r *Redis) Batch(ctx context.Context, fn func(w Writer) error) (err error) {
	defer func(start time.Time) { observe(backendRedis, "batch", start, err) }(time.Now())
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		return fn(redisWriter{cmd: pipe})
	})
	if err != nil {
		return fmt.Errorf("redis batch: %w", err)
	}
	return nil
}

func (r *Redis) GetObject(ctx context.Context, key string) (_ map[string]string, err error) {
	defer func(start time.Time) { observe(backendRedis, "hgetall", start, err) }(time.Now())
	fields, err := r.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", key, err)
	}
	if len(fields) == 0 {
		return nil, nil
	}
	return fields, nil
}

func (r *Redis) GetObjectField(ctx context.Context, key, field string) (_ string, _ bool, err error) {
	defer func(start time.Time) { observe(backendRedis, "hget", start, err) }(time.Now())
	value, err := r.client.HGet(ctx, key, field).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("hget %s %s: %w", key, field, err)
	}
	return value, true, nil
}

func (r *Redis) Exists(ctx context.Context, key string) (_ bool, err error) {
	defer func(start time.Time) { observe(backendRedis, "exists", start, err) }(time.Now())
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", key, err)
	}
	return n > 0, nil
}

func (r *Redis) IsSetMember(ctx context.Context, key, member string) (_ bool, err error) {
	defer func(start time.Time) { observe(backendRedis, "sismember", start, err) }(time.Now())
	ok, err := r.client.SIsMember(ctx, key, member).Result()
	if err != nil {
		return false, fmt.Errorf("sismember %s: %w", key, err)
	}
	return ok, nil
}

func (r *Redis) SetMembers(ctx context.Context, key string) (_ []string, err error) {
	defer func(start time.Time) { observe(backendRedis, "smembers", start, err) }(time.Now())
	members, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("smembers %s: %w", key, err)
	}
	return members, nil
}

func (r *Redis) SortedSetScore(ctx context.Context, key, member string) (_ float64, _ bool, err error) {
	defer func(start time.Time) { observe(backendRedis, "zscore", start, err) }(time.Now())
	score, err := r.client.ZScore(ctx, key, member).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("zscore %s: %w", key, err)
	}
	return score, true, nil
}

func (r *Redis) SortedSetRange(ctx context.Context, key string, start, stop int) (_ []string, err error) {
	defer func(begin time.Time) { observe(backendRedis, "zrange", begin, err) }(time.Now())
	members, err := r.client.ZRange(ctx, key, int64(start), int64(stop)).Result()
	if err != nil {
		return nil, fmt.Errorf("zrange %s: %w", key, err)
	}
	return members, nil
}

func (r *Redis) SortedSetRevRange(ctx context.Context, key string, start, stop int) (_ []string, err error) {
	defer func(begin time.Time) { observe(backendRedis, "zrevrange", begin, err) }(time.Now())
	members, err := r.client.ZRevRange(ctx, key, int64(start), int64(stop)).Result()
	if err != nil {
		return nil, fmt.Errorf("zrevrange %s: %w", key, err)
	}
	return members, nil
}

func (r *Redis) SortedSetCard(ctx context.Context, key string) (_ int64, err error) {
	defer func(start time.Time) { observe(backendRedis, "zcard", start, err) }(time.Now())
	n, err := r.client.ZCard(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("zcard %s: %w", key, err)
	}
	return n, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (r *Redis) Close() error {
	return r.client.Close()
}

// redisWriter issues writes against either the client or a pipeline. Inside a
// pipeline the returned command errors are always nil; failures surface from
// Exec.
type redisWriter struct {
	cmd redis.Cmdable
}

func (w redisWriter) SortedSetAdd(ctx context.Context, key string, score float64, member string) error {
	if err := w.cmd.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err(); err != nil {
		return fmt.Errorf("zadd %s: %w", key, err)
	}
	return nil
}

func (w redisWriter) SortedSetAddBulk(ctx context.Context, entries []SortedSetEntry) error {
	for _, e := range entries {
		if err := w.SortedSetAdd(ctx, e.Key, e.Score, e.Member); err != nil {
			return err
		}
	}
	return nil
}

func (w redisWriter) SetAdd(ctx context.Context, key, member string) error {
	if err := w.cmd.SAdd(ctx, key, member).Err(); err != nil {
		return fmt.Errorf("sadd %s: %w", key, err)
	}
	return nil
}

func (w redisWriter) SetObject(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	values := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		values[k] = v
	}
	if err := w.cmd.HSet(ctx, key, values).Err(); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

func (w redisWriter) SetObjectField(ctx context.Context, key, field, value string) error {
	if err := w.cmd.HSet(ctx, key, field, value).Err(); err != nil {
		return fmt.Errorf("hset %s %s: %w", key, field, err)
	}
	return nil
}
