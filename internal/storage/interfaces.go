// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"

	"github.com/glambook/salon-service/internal/types"
)

// Collection keys. One row per (tenant, collection), holding the whole
// JSON-serialized collection with last-write-wins semantics.
const (
	CollectionSettings     = "settings"
	CollectionAppointments = "appointments"
	CollectionStaff        = "staff"
	CollectionClients      = "clients"
	CollectionCampaigns    = "campaigns"
)

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	CreateCredential(ctx context.Context, c *types.Credential) error
	GetCredentialByEmail(ctx context.Context, email string) (*types.Credential, error)

	// GetCollection returns the stored JSON value for the tenant's
	// collection, or the empty default for an absent key, never an error
	// for absence.
	GetCollection(ctx context.Context, tenantID, collection string) (json.RawMessage, error)
	SetCollection(ctx context.Context, tenantID, collection string, value json.RawMessage) error
}
