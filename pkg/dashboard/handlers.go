// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package dashboard

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/monitoring"
	"github.com/glambook/salon-service/internal/tracing"
	"github.com/glambook/salon-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(router chi.Router) {
	router.Get("/api/v0/dashboard", a.overview)
	router.Get("/api/v0/analytics", a.analytics)
}

func (a *API) overview(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	overview, err := a.service.Overview(r.Context(), tenantID)
	if err != nil {
		a.logger.Errorf("failed to build dashboard: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (a *API) analytics(w http.ResponseWriter, r *http.Request) {
	tenantID, ok := authentication.GetTenantID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	analytics, err := a.service.Analytics(r.Context(), tenantID)
	if err != nil {
		a.logger.Errorf("failed to build analytics: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, analytics)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
