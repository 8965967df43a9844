// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chi "github.com/go-chi/chi/v5"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/tracing"
)

func TestAliveEndpoints(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(tracing.NewNoopTracer(), nil, logging.NewNoopLogger()).RegisterEndpoints(mux)

	for _, path := range []string{"/health", "/api/v0/status"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusOK, rec.Code)
		}

		var resp struct {
			Status    string    `json:"status"`
			Timestamp time.Time `json:"timestamp"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: failed to parse response: %v", path, err)
		}
		if resp.Status != "ok" {
			t.Fatalf("%s: expected status ok, got %q", path, resp.Status)
		}
		if resp.Timestamp.IsZero() {
			t.Fatalf("%s: expected a timestamp", path)
		}
	}
}
