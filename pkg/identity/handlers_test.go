// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chi "github.com/go-chi/chi/v5"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/tracing"
)

func newTestAPI() (*API, *chi.Mux) {
	svc, _, _ := newTestService()
	api := NewAPI(svc, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	api.RegisterProtectedEndpoints(mux)

	return api, mux
}

func postJSON(t *testing.T, mux *chi.Mux, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}

func TestAPI_SignUp(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name: "success",
			body: map[string]interface{}{
				"email":     "owner@example.com",
				"password":  "password",
				"name":      "Salon Owner",
				"salonName": "My Salon",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing email",
			body: map[string]interface{}{
				"password": "password",
				"name":     "Salon Owner",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "malformed email",
			body: map[string]interface{}{
				"email":    "not-an-email",
				"password": "password",
				"name":     "Salon Owner",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, mux := newTestAPI()

			rr := postJSON(t, mux, "/api/v0/auth/signup", tc.body)
			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", tc.expectedStatus, rr.Code, rr.Body)
			}

			if tc.expectedStatus == http.StatusCreated {
				var resp struct {
					Success bool         `json:"success"`
					User    userResponse `json:"user"`
				}
				if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if !resp.Success || resp.User.ID == "" {
					t.Errorf("expected success with user ID, got %+v", resp)
				}
			}
		})
	}
}

func TestAPI_SignUpDuplicateEmail(t *testing.T) {
	_, mux := newTestAPI()

	body := map[string]interface{}{
		"email":    "owner@example.com",
		"password": "password",
		"name":     "Salon Owner",
	}

	if rr := postJSON(t, mux, "/api/v0/auth/signup", body); rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	rr := postJSON(t, mux, "/api/v0/auth/signup", body)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for duplicate email, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["error"] == "" {
		t.Error("expected error message in response")
	}
}

func TestAPI_SignInAndSignOut(t *testing.T) {
	_, mux := newTestAPI()

	if rr := postJSON(t, mux, "/api/v0/auth/signup", map[string]interface{}{
		"email":    "owner@example.com",
		"password": "password",
		"name":     "Salon Owner",
	}); rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	rr := postJSON(t, mux, "/api/v0/auth/signin", map[string]interface{}{
		"email":    "owner@example.com",
		"password": "password",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body)
	}

	var resp struct {
		Success bool            `json:"success"`
		Session sessionResponse `json:"session"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Session.AccessToken == "" {
		t.Fatal("expected access token in response")
	}
	if resp.Session.User.Name != "Salon Owner" {
		t.Errorf("expected user name Salon Owner, got %q", resp.Session.User.Name)
	}

	// Sign out twice, both must succeed.
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v0/auth/signout", nil)
		req.Header.Set("Authorization", "Bearer "+resp.Session.AccessToken)
		out := httptest.NewRecorder()
		mux.ServeHTTP(out, req)
		if out.Code != http.StatusOK {
			t.Errorf("signout attempt %d: expected 200, got %d", i+1, out.Code)
		}
	}
}

func TestAPI_SignInWrongPassword(t *testing.T) {
	_, mux := newTestAPI()

	if rr := postJSON(t, mux, "/api/v0/auth/signup", map[string]interface{}{
		"email":    "owner@example.com",
		"password": "password",
		"name":     "Salon Owner",
	}); rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}

	rr := postJSON(t, mux, "/api/v0/auth/signin", map[string]interface{}{
		"email":    "owner@example.com",
		"password": "wrong-password",
	})
	if rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}
