// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"encoding/json"

	"github.com/glambook/salon-service/internal/types"
)

type ServiceInterface interface {
	Overview(ctx context.Context, tenantID string) (*OverviewResponse, error)
	Analytics(ctx context.Context, tenantID string) (*Analytics, error)
}

// StoreInterface is the read side of the tenant record store.
type StoreInterface interface {
	GetCollection(ctx context.Context, tenantID, collection string) (json.RawMessage, error)
}

// OverviewResponse is the dashboard payload: the tenant's settings plus the
// aggregated stats and collection excerpts.
type OverviewResponse struct {
	Settings types.SalonSettings `json:"settings"`
	Overview
}
