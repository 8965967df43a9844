// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/glambook/salon-service/internal/db"
	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/monitoring"
	"github.com/glambook/salon-service/internal/tracing"
	"github.com/glambook/salon-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTenant")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	features, err := json.Marshal(t.Features)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize tenant features: %w", err)
	}

	var newTenant types.Tenant
	var rawFeatures []byte
	err = s.db.Statement(ctx).
		Insert("tenants").
		Columns("id", "name", "salon_name", "subscription_tier", "features").
		Values(id.String(), t.Name, t.SalonName, t.SubscriptionTier, features).
		Suffix("RETURNING id, name, salon_name, subscription_tier, features, created_at").
		QueryRowContext(ctx).
		Scan(&newTenant.ID, &newTenant.Name, &newTenant.SalonName, &newTenant.SubscriptionTier, &rawFeatures, &newTenant.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert tenant: %w", err)
	}

	if err := json.Unmarshal(rawFeatures, &newTenant.Features); err != nil {
		return nil, fmt.Errorf("failed to parse tenant features: %w", err)
	}

	return &newTenant, nil
}

func (s *Storage) GetTenantByID(ctx context.Context, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTenantByID")
	defer span.End()

	var t types.Tenant
	var rawFeatures []byte
	err := s.db.Statement(ctx).
		Select("id", "name", "salon_name", "subscription_tier", "features", "created_at").
		From("tenants").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&t.ID, &t.Name, &t.SalonName, &t.SubscriptionTier, &rawFeatures, &t.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	if err := json.Unmarshal(rawFeatures, &t.Features); err != nil {
		return nil, fmt.Errorf("failed to parse tenant features: %w", err)
	}

	return &t, nil
}

func (s *Storage) CreateCredential(ctx context.Context, c *types.Credential) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCredential")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("credentials").
		Columns("email", "tenant_id", "password_hash").
		Values(c.Email, c.TenantID, c.PasswordHash).
		ExecContext(ctx)

	if err != nil {
		return WrapDuplicateKeyError(err, "credential email already registered")
	}

	return nil
}

func (s *Storage) GetCredentialByEmail(ctx context.Context, email string) (*types.Credential, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCredentialByEmail")
	defer span.End()

	var c types.Credential
	err := s.db.Statement(ctx).
		Select("email", "tenant_id", "password_hash", "created_at").
		From("credentials").
		Where(sq.Eq{"email": email}).
		QueryRowContext(ctx).
		Scan(&c.Email, &c.TenantID, &c.PasswordHash, &c.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get credential: %w", err)
	}

	return &c, nil
}

func (s *Storage) GetCollection(ctx context.Context, tenantID, collection string) (json.RawMessage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCollection")
	defer span.End()

	var value []byte
	err := s.db.Statement(ctx).
		Select("value").
		From("records").
		Where(sq.Eq{"tenant_id": tenantID, "collection": collection}).
		QueryRowContext(ctx).
		Scan(&value)

	if err != nil {
		if isNoRows(err) {
			return emptyDefault(collection), nil
		}
		return nil, fmt.Errorf("failed to get collection %q: %w", collection, err)
	}

	return value, nil
}

func (s *Storage) SetCollection(ctx context.Context, tenantID, collection string, value json.RawMessage) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCollection")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("records").
		Columns("tenant_id", "collection", "value", "updated_at").
		Values(tenantID, collection, []byte(value), time.Now().UTC()).
		Suffix("ON CONFLICT (tenant_id, collection) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set collection %q: %w", collection, err)
	}

	return nil
}

// emptyDefault is what an absent key reads as: an empty object for settings,
// an empty list for every record collection.
func emptyDefault(collection string) json.RawMessage {
	if collection == CollectionSettings {
		return json.RawMessage(`{}`)
	}
	return json.RawMessage(`[]`)
}

func isNoRows(err error) bool {
	// database/sql and pgx report row absence differently depending on the
	// runner in use.
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
