// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/glambook/salon-service/internal/types"
)

type ServiceInterface interface {
	SignUp(ctx context.Context, email, password, name, salonName string) (*types.Tenant, error)
	SignIn(ctx context.Context, email, password string) (*types.Session, *types.Tenant, error)
	ResolveSession(ctx context.Context, token string) (string, error)
	SignOut(ctx context.Context, token string) error
}

// TxRunnerInterface runs a function within a storage transaction so that
// tenant, credential and seed collections appear atomically.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
