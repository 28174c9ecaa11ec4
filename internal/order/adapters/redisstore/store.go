// Package redisstore implements ports.StoreClient on top of redis. Records
// are stored as JSON strings under "<table>:<orderId>" so the operational
// and history tables live under distinct key prefixes in one instance.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/ecomlabs/order-intake/internal/order/domain"
	"github.com/ecomlabs/order-intake/internal/order/ports"
)

// casScript atomically replaces a record only while the stored record's
// status equals ARGV[1]. Returns 1 on swap, 0 on a missing key or a status
// mismatch.
const casScript = `
local cur = redis.call('GET', KEYS[1])
if not cur then return 0 end
local rec = cjson.decode(cur)
if rec['status'] ~= ARGV[1] then return 0 end
redis.call('SET', KEYS[1], ARGV[2])
return 1
`

type Store struct {
	client *redis.Client
	cas    *redis.Script
}

var _ ports.StoreClient = (*Store)(nil)

func New(client *redis.Client) *Store {
	return &Store{
		client: client,
		cas:    redis.NewScript(casScript),
	}
}

func (s *Store) Put(ctx context.Context, table string, rec domain.OrderRecord) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("redisstore: marshal order %q: %w", rec.OrderID, err)
	}
	if err := s.client.Set(ctx, key(table, rec.OrderID), b, 0).Err(); err != nil {
		return fmt.Errorf("redisstore: put %q: %w", key(table, rec.OrderID), err)
	}
	return nil
}

func (s *Store) PutIf(ctx context.Context, table string, rec domain.OrderRecord, expect domain.OrderStatus) error {
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("redisstore: marshal order %q: %w", rec.OrderID, err)
	}
	swapped, err := s.cas.Run(ctx, s.client, []string{key(table, rec.OrderID)}, string(expect), b).Int()
	if err != nil {
		return fmt.Errorf("redisstore: conditional put %q: %w", key(table, rec.OrderID), err)
	}
	if swapped == 0 {
		return ports.ErrStatusConflict
	}
	return nil
}

func (s *Store) Get(ctx context.Context, table, id string) (*domain.OrderRecord, error) {
	val, err := s.client.Get(ctx, key(table, id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redisstore: get %q: %w", key(table, id), err)
	}

	var rec domain.OrderRecord
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return nil, fmt.Errorf("redisstore: unmarshal %q: %w", key(table, id), err)
	}
	return &rec, nil
}

func key(table, id string) string {
	return table + ":" + id
}
