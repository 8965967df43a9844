// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/types"
)

const keyPrefix = "session:"

var _ StoreInterface = (*RedisStore)(nil)

type RedisStore struct {
	client *redis.Client

	logger logging.LoggerInterface
}

// sessionRecord is the redis persistence shape; the API-facing JSON tags on
// types.Session hide the tenant ID, which must be stored here.
type sessionRecord struct {
	Token    string    `json:"token"`
	TenantID string    `json:"tenant_id"`
	IssuedAt time.Time `json:"issued_at"`
}

func (s *RedisStore) Put(ctx context.Context, session *types.Session) error {
	payload, err := json.Marshal(sessionRecord{
		Token:    session.Token,
		TenantID: session.TenantID,
		IssuedAt: session.IssuedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	// No TTL: sessions live until explicit sign-out.
	if err := s.client.Set(ctx, keyPrefix+session.Token, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*types.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch session: %w", err)
	}

	var record sessionRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	return &types.Session{
		Token:    record.Token,
		TenantID: record.TenantID,
		IssuedAt: record.IssuedAt,
	}, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func NewRedisStore(addr, password string, db int, logger logging.LoggerInterface) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		logger: logger,
	}
}
