// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/monitoring"
	"github.com/glambook/salon-service/internal/storage"
	"github.com/glambook/salon-service/internal/tracing"
	"github.com/glambook/salon-service/internal/types"
)

type CreateAppointmentParams struct {
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	Service         string
	StylistName     string
	Date            string
	Time            string
	DurationMinutes int
	Price           float64
	Notes           string
}

// UpdateAppointmentParams carries a partial update: nil fields are left
// untouched on the stored record.
type UpdateAppointmentParams struct {
	ClientName      *string
	ClientEmail     *string
	ClientPhone     *string
	Service         *string
	StylistName     *string
	Date            *string
	Time            *string
	DurationMinutes *int
	Price           *float64
	Notes           *string
	Status          *types.AppointmentStatus
}

type AddStaffMemberParams struct {
	Name                 string
	Specialization       string
	Rating               float64
	NextAppointmentLabel string
	AvatarRef            string
}

type AddClientParams struct {
	Name      string
	LastVisit string
	AvatarRef string
}

type CreateCampaignParams struct {
	Channel types.CampaignChannel
	Segment string
	Message string
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store StoreInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(store StoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		store:   store,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListAppointments(ctx context.Context, tenantID string) ([]types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.ListAppointments")
	defer span.End()

	return loadCollection[types.Appointment](ctx, s.store, tenantID, storage.CollectionAppointments)
}

func (s *Service) CreateAppointment(ctx context.Context, tenantID string, params CreateAppointmentParams) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.CreateAppointment")
	defer span.End()

	appointments, err := loadCollection[types.Appointment](ctx, s.store, tenantID, storage.CollectionAppointments)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate appointment ID: %w", err)
	}

	appointment := types.Appointment{
		ID:              id.String(),
		ClientName:      params.ClientName,
		ClientEmail:     params.ClientEmail,
		ClientPhone:     params.ClientPhone,
		Service:         params.Service,
		StylistName:     params.StylistName,
		Date:            params.Date,
		Time:            params.Time,
		DurationMinutes: params.DurationMinutes,
		Price:           params.Price,
		Notes:           params.Notes,
		Status:          types.AppointmentConfirmed,
		CreatedAt:       time.Now().UTC(),
	}

	appointments = append(appointments, appointment)
	if err := saveCollection(ctx, s.store, tenantID, storage.CollectionAppointments, appointments); err != nil {
		return nil, err
	}

	return &appointment, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, tenantID, id string, params UpdateAppointmentParams) (*types.Appointment, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.UpdateAppointment")
	defer span.End()

	appointments, err := loadCollection[types.Appointment](ctx, s.store, tenantID, storage.CollectionAppointments)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range appointments {
		if appointments[i].ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, ErrNotFound
	}

	appointment := &appointments[index]
	applyAppointmentUpdate(appointment, params)
	now := time.Now().UTC()
	appointment.UpdatedAt = &now

	if err := saveCollection(ctx, s.store, tenantID, storage.CollectionAppointments, appointments); err != nil {
		return nil, err
	}

	return appointment, nil
}

func (s *Service) ListStaff(ctx context.Context, tenantID string) ([]types.StaffMember, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.ListStaff")
	defer span.End()

	return loadCollection[types.StaffMember](ctx, s.store, tenantID, storage.CollectionStaff)
}

func (s *Service) AddStaffMember(ctx context.Context, tenantID string, params AddStaffMemberParams) (*types.StaffMember, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.AddStaffMember")
	defer span.End()

	staff, err := loadCollection[types.StaffMember](ctx, s.store, tenantID, storage.CollectionStaff)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate staff ID: %w", err)
	}

	member := types.StaffMember{
		ID:                   id.String(),
		Name:                 params.Name,
		Specialization:       params.Specialization,
		Rating:               params.Rating,
		Availability:         types.StaffAvailable,
		NextAppointmentLabel: params.NextAppointmentLabel,
		AvatarRef:            params.AvatarRef,
		CreatedAt:            time.Now().UTC(),
	}

	staff = append(staff, member)
	if err := saveCollection(ctx, s.store, tenantID, storage.CollectionStaff, staff); err != nil {
		return nil, err
	}

	return &member, nil
}

func (s *Service) ListClients(ctx context.Context, tenantID string) ([]types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.ListClients")
	defer span.End()

	return loadCollection[types.Client](ctx, s.store, tenantID, storage.CollectionClients)
}

func (s *Service) AddClient(ctx context.Context, tenantID string, params AddClientParams) (*types.Client, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.AddClient")
	defer span.End()

	clients, err := loadCollection[types.Client](ctx, s.store, tenantID, storage.CollectionClients)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate client ID: %w", err)
	}

	client := types.Client{
		ID:          id.String(),
		Name:        params.Name,
		LoyaltyTier: types.TierBronze,
		Visits:      0,
		TotalSpent:  0,
		LastVisit:   params.LastVisit,
		AvatarRef:   params.AvatarRef,
		CreatedAt:   time.Now().UTC(),
	}

	clients = append(clients, client)
	if err := saveCollection(ctx, s.store, tenantID, storage.CollectionClients, clients); err != nil {
		return nil, err
	}

	return &client, nil
}

func (s *Service) ListCampaigns(ctx context.Context, tenantID string) ([]types.Campaign, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.ListCampaigns")
	defer span.End()

	return loadCollection[types.Campaign](ctx, s.store, tenantID, storage.CollectionCampaigns)
}

func (s *Service) CreateCampaign(ctx context.Context, tenantID string, params CreateCampaignParams) (*types.Campaign, error) {
	ctx, span := s.tracer.Start(ctx, "booking.Service.CreateCampaign")
	defer span.End()

	campaigns, err := loadCollection[types.Campaign](ctx, s.store, tenantID, storage.CollectionCampaigns)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate campaign ID: %w", err)
	}

	campaign := types.Campaign{
		ID:        id.String(),
		Channel:   params.Channel,
		Segment:   params.Segment,
		Message:   params.Message,
		Status:    types.CampaignDraft,
		CreatedAt: time.Now().UTC(),
	}

	campaigns = append(campaigns, campaign)
	if err := saveCollection(ctx, s.store, tenantID, storage.CollectionCampaigns, campaigns); err != nil {
		return nil, err
	}

	return &campaign, nil
}

func applyAppointmentUpdate(appointment *types.Appointment, params UpdateAppointmentParams) {
	if params.ClientName != nil {
		appointment.ClientName = *params.ClientName
	}
	if params.ClientEmail != nil {
		appointment.ClientEmail = *params.ClientEmail
	}
	if params.ClientPhone != nil {
		appointment.ClientPhone = *params.ClientPhone
	}
	if params.Service != nil {
		appointment.Service = *params.Service
	}
	if params.StylistName != nil {
		appointment.StylistName = *params.StylistName
	}
	if params.Date != nil {
		appointment.Date = *params.Date
	}
	if params.Time != nil {
		appointment.Time = *params.Time
	}
	if params.DurationMinutes != nil {
		appointment.DurationMinutes = *params.DurationMinutes
	}
	if params.Price != nil {
		appointment.Price = *params.Price
	}
	if params.Notes != nil {
		appointment.Notes = *params.Notes
	}
	if params.Status != nil {
		appointment.Status = *params.Status
	}
}

func loadCollection[T any](ctx context.Context, store StoreInterface, tenantID, collection string) ([]T, error) {
	raw, err := store.GetCollection(ctx, tenantID, collection)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", collection, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", collection, err)
	}

	return items, nil
}

func saveCollection[T any](ctx context.Context, store StoreInterface, tenantID, collection string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", collection, err)
	}

	if err := store.SetCollection(ctx, tenantID, collection, raw); err != nil {
		return fmt.Errorf("failed to persist %s: %w", collection, err)
	}

	return nil
}
