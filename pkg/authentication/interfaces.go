// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
)

type SessionResolverInterface interface {
	// ResolveSession maps an opaque bearer token to the owning tenant ID.
	ResolveSession(ctx context.Context, token string) (string, error)
}
