// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/glambook/salon-service/internal/types"
)

var _ StorageInterface = (*InMemoryStorage)(nil)

// InMemoryStorage is a map-backed StorageInterface used by tests and local
// development. Collection values are namespaced "{tenantID}_{collection}".
type InMemoryStorage struct {
	mu sync.RWMutex

	tenants     map[string]*types.Tenant
	credentials map[string]*types.Credential
	records     map[string]json.RawMessage
}

func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		tenants:     make(map[string]*types.Tenant),
		credentials: make(map[string]*types.Credential),
		records:     make(map[string]json.RawMessage),
	}
}

func (s *InMemoryStorage) CreateTenant(_ context.Context, t *types.Tenant) (*types.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant ID: %w", err)
	}

	created := *t
	created.ID = id.String()
	created.CreatedAt = time.Now().UTC()
	s.tenants[created.ID] = &created

	return &created, nil
}

func (s *InMemoryStorage) GetTenantByID(_ context.Context, id string) (*types.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tenants[id]
	if !ok {
		return nil, ErrNotFound
	}
	return t, nil
}

func (s *InMemoryStorage) CreateCredential(_ context.Context, c *types.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(c.Email)
	if _, ok := s.credentials[email]; ok {
		return fmt.Errorf("credential email already registered: %w", ErrDuplicateKey)
	}

	created := *c
	created.Email = email
	created.CreatedAt = time.Now().UTC()
	s.credentials[email] = &created

	return nil
}

func (s *InMemoryStorage) GetCredentialByEmail(_ context.Context, email string) (*types.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.credentials[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (s *InMemoryStorage) GetCollection(_ context.Context, tenantID, collection string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[recordKey(tenantID, collection)]
	if !ok {
		return emptyDefault(collection), nil
	}
	return value, nil
}

func (s *InMemoryStorage) SetCollection(_ context.Context, tenantID, collection string, value json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	s.records[recordKey(tenantID, collection)] = stored

	return nil
}

func recordKey(tenantID, collection string) string {
	return tenantID + "_" + collection
}
