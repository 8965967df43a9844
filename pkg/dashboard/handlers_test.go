// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/storage"
	"github.com/glambook/salon-service/internal/tracing"
	"github.com/glambook/salon-service/internal/types"
	"github.com/glambook/salon-service/pkg/authentication"
)

const testTenantID = "0191e7a0-0000-7000-8000-000000000042"

func newTestRouter(t *testing.T, tenantID string, now time.Time) (*chi.Mux, *storage.InMemoryStorage) {
	t.Helper()

	store := storage.NewInMemoryStorage()
	service := NewService(store, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())
	service.clock = func() time.Time { return now }
	api := NewAPI(service, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())

	mux := chi.NewMux()
	mux.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(authentication.WithTenantID(r.Context(), tenantID)))
		})
	})
	api.RegisterEndpoints(mux)

	return mux, store
}

func seedCollection(t *testing.T, store *storage.InMemoryStorage, tenantID, collection string, value interface{}) {
	t.Helper()

	raw, err := json.Marshal(value)
	if err != nil {
		t.Fatalf("failed to marshal %s seed: %v", collection, err)
	}
	if err := store.SetCollection(context.Background(), tenantID, collection, raw); err != nil {
		t.Fatalf("failed to seed %s: %v", collection, err)
	}
}

func TestDashboardEndpoint(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	mux, store := newTestRouter(t, testTenantID, now)

	seedCollection(t, store, testTenantID, storage.CollectionSettings, types.SalonSettings{
		SalonName:        "My Salon",
		OwnerName:        "Salon Owner",
		SubscriptionTier: "basic",
	})
	seedCollection(t, store, testTenantID, storage.CollectionAppointments, []types.Appointment{
		{ID: "a1", ClientName: "Emma", Date: "2026-08-27", Price: 120, Service: "Balayage"},
		{ID: "a2", ClientName: "Lisa", Date: "2026-08-26", Price: 60, Service: "Haircut"},
	})
	seedCollection(t, store, testTenantID, storage.CollectionStaff, []types.StaffMember{
		{ID: "s1", Name: "Sarah", Availability: types.StaffBusy},
		{ID: "s2", Name: "Maria", Availability: types.StaffAvailable},
	})
	seedCollection(t, store, testTenantID, storage.CollectionClients, []types.Client{
		{ID: "c1", Name: "Jennifer", LastVisit: "2026-08-20", Visits: 3},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/dashboard", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp struct {
		Settings     types.SalonSettings `json:"settings"`
		Stats        Stats               `json:"stats"`
		Appointments []types.Appointment `json:"appointments"`
		Staff        []types.StaffMember `json:"staff"`
		Clients      []types.Client      `json:"clients"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp.Settings.SalonName != "My Salon" {
		t.Fatalf("expected salon name in settings, got %q", resp.Settings.SalonName)
	}
	if resp.Stats.TodayAppointments != 1 || resp.Stats.TodayRevenue != 120 {
		t.Fatalf("expected 1 appointment / 120 revenue today, got %+v", resp.Stats)
	}
	if resp.Stats.ActiveClients != 1 {
		t.Fatalf("expected 1 active client, got %d", resp.Stats.ActiveClients)
	}
	if resp.Stats.StaffUtilizationPercent != 50 {
		t.Fatalf("expected 50%% utilization, got %d", resp.Stats.StaffUtilizationPercent)
	}
	if len(resp.Appointments) != 1 || resp.Appointments[0].ID != "a1" {
		t.Fatalf("expected only today's appointment, got %+v", resp.Appointments)
	}
	if len(resp.Staff) != 2 || len(resp.Clients) != 1 {
		t.Fatalf("expected full staff and client excerpts, got %d staff %d clients", len(resp.Staff), len(resp.Clients))
	}
}

func TestDashboardEndpointFreshTenant(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	mux, _ := newTestRouter(t, testTenantID, now)

	req := httptest.NewRequest(http.MethodGet, "/api/v0/dashboard", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	for _, key := range []string{"appointments", "staff", "clients"} {
		if string(resp[key]) != "[]" {
			t.Fatalf("expected %s to be [], got %s", key, resp[key])
		}
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	now := time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)
	mux, store := newTestRouter(t, testTenantID, now)

	seedCollection(t, store, testTenantID, storage.CollectionAppointments, []types.Appointment{
		{ID: "a1", Date: "2026-08-05", Price: 100, Service: "Haircut"},
		{ID: "a2", Date: "2026-08-12", Price: 80, Service: "Haircut"},
		{ID: "a3", Date: "2026-07-30", Price: 200, Service: "Balayage"},
	})
	seedCollection(t, store, testTenantID, storage.CollectionClients, []types.Client{
		{ID: "c1", Visits: 4},
		{ID: "c2", Visits: 1},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/analytics", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	var resp Analytics
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if resp.MonthlyRevenue != 180 {
		t.Fatalf("expected monthly revenue 180, got %v", resp.MonthlyRevenue)
	}
	if resp.RetentionRate != 50 {
		t.Fatalf("expected retention 50, got %d", resp.RetentionRate)
	}
	if resp.TotalAppointments != 3 || resp.TotalClients != 2 || resp.TotalStaff != 0 {
		t.Fatalf("unexpected totals: %+v", resp)
	}
	if len(resp.PopularServices) != 2 || resp.PopularServices[0].Service != "Haircut" {
		t.Fatalf("expected Haircut on top, got %+v", resp.PopularServices)
	}
}

func TestDashboardEndpointsRequireTenantContext(t *testing.T) {
	store := storage.NewInMemoryStorage()
	service := NewService(store, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())
	api := NewAPI(service, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)

	for _, path := range []string{"/api/v0/dashboard", "/api/v0/analytics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusUnauthorized, rec.Code)
		}
	}
}
