// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"errors"

	"github.com/glambook/salon-service/internal/types"
)

var ErrNotFound = errors.New("session not found")

// StoreInterface is the session table: token -> tenant. Entries have no
// expiry, they are removed at sign-out only.
type StoreInterface interface {
	Put(ctx context.Context, session *types.Session) error
	Get(ctx context.Context, token string) (*types.Session, error)
	Delete(ctx context.Context, token string) error
}
