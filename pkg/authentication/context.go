// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Define a private custom type to avoid collisions
type contextKey struct{}

var tenantContextKey = contextKey{}

// WithTenantID returns a new context with the given tenant ID derived from the parent context.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantContextKey, tenantID)
}

// GetTenantID retrieves the tenant ID from the context.
// Returns an empty string and false if the tenant ID is not present.
func GetTenantID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(tenantContextKey).(string)
	return id, ok
}
