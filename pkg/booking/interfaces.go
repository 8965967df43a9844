// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package booking

import (
	"context"
	"encoding/json"

	"github.com/glambook/salon-service/internal/types"
)

type ServiceInterface interface {
	ListAppointments(ctx context.Context, tenantID string) ([]types.Appointment, error)
	CreateAppointment(ctx context.Context, tenantID string, params CreateAppointmentParams) (*types.Appointment, error)
	UpdateAppointment(ctx context.Context, tenantID, id string, params UpdateAppointmentParams) (*types.Appointment, error)
	ListStaff(ctx context.Context, tenantID string) ([]types.StaffMember, error)
	AddStaffMember(ctx context.Context, tenantID string, params AddStaffMemberParams) (*types.StaffMember, error)
	ListClients(ctx context.Context, tenantID string) ([]types.Client, error)
	AddClient(ctx context.Context, tenantID string, params AddClientParams) (*types.Client, error)
	ListCampaigns(ctx context.Context, tenantID string) ([]types.Campaign, error)
	CreateCampaign(ctx context.Context, tenantID string, params CreateCampaignParams) (*types.Campaign, error)
}

// StoreInterface is the slice of the tenant store the gateway needs: whole
// collection reads and last-write-wins writes.
type StoreInterface interface {
	GetCollection(ctx context.Context, tenantID, collection string) (json.RawMessage, error)
	SetCollection(ctx context.Context, tenantID, collection string, value json.RawMessage) error
}
