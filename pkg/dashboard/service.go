// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/monitoring"
	"github.com/glambook/salon-service/internal/storage"
	"github.com/glambook/salon-service/internal/tracing"
	"github.com/glambook/salon-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store StoreInterface

	// clock returns the aggregation reference time, overridable in tests.
	clock func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(store StoreInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	return &Service{
		store:   store,
		clock:   time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Overview(ctx context.Context, tenantID string) (*OverviewResponse, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.Service.Overview")
	defer span.End()

	settings, err := s.loadSettings(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	appointments, staff, clients, err := s.loadCollections(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	return &OverviewResponse{
		Settings: *settings,
		Overview: Aggregate(appointments, staff, clients, s.clock()),
	}, nil
}

func (s *Service) Analytics(ctx context.Context, tenantID string) (*Analytics, error) {
	ctx, span := s.tracer.Start(ctx, "dashboard.Service.Analytics")
	defer span.End()

	appointments, staff, clients, err := s.loadCollections(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	analytics := Analyze(appointments, clients, staff, s.clock())
	return &analytics, nil
}

func (s *Service) loadSettings(ctx context.Context, tenantID string) (*types.SalonSettings, error) {
	raw, err := s.store.GetCollection(ctx, tenantID, storage.CollectionSettings)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	var settings types.SalonSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	return &settings, nil
}

func (s *Service) loadCollections(ctx context.Context, tenantID string) ([]types.Appointment, []types.StaffMember, []types.Client, error) {
	appointments, err := loadCollection[types.Appointment](ctx, s.store, tenantID, storage.CollectionAppointments)
	if err != nil {
		return nil, nil, nil, err
	}

	staff, err := loadCollection[types.StaffMember](ctx, s.store, tenantID, storage.CollectionStaff)
	if err != nil {
		return nil, nil, nil, err
	}

	clients, err := loadCollection[types.Client](ctx, s.store, tenantID, storage.CollectionClients)
	if err != nil {
		return nil, nil, nil, err
	}

	return appointments, staff, clients, nil
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
