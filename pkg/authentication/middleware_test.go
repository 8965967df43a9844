// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_resolver.go -source=./interfaces.go

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name               string
		authHeader         string
		setupMocks         func(*MockSessionResolverInterface)
		expectedStatusCode int
		expectedBody       string
	}{
		{
			name:               "missing token rejects request",
			authHeader:         "",
			setupMocks:         func(m *MockSessionResolverInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:               "non bearer scheme rejects request",
			authHeader:         "Basic dXNlcjpwYXNz",
			setupMocks:         func(m *MockSessionResolverInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "unknown token rejects request",
			authHeader: "Bearer unknown-token",
			setupMocks: func(m *MockSessionResolverInterface) {
				m.EXPECT().ResolveSession(gomock.Any(), "unknown-token").Return("", fmt.Errorf("unauthorized"))
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:       "valid token injects tenant ID",
			authHeader: "Bearer valid-token",
			setupMocks: func(m *MockSessionResolverInterface) {
				m.EXPECT().ResolveSession(gomock.Any(), "valid-token").Return("tenant-123", nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       "tenant-123",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockResolver := NewMockSessionResolverInterface(ctrl)
			tc.setupMocks(mockResolver)

			mdw := NewMiddleware(mockResolver, tracing.NewNoopTracer(), nil, logging.NewNoopLogger())

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				tenantID, _ := GetTenantID(r.Context())
				fmt.Fprint(w, tenantID)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/dashboard", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rr := httptest.NewRecorder()

			mdw.Authenticate()(next).ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rr.Code)
			}

			if tc.expectedBody != "" {
				body, _ := io.ReadAll(rr.Body)
				if string(body) != tc.expectedBody {
					t.Errorf("expected body %q, got %q", tc.expectedBody, string(body))
				}
			}
		})
	}
}
