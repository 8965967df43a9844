// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import "errors"

var (
	// ErrEmailTaken is returned when a signup email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is the uniform sign-in failure, identical for
	// unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUnauthorized is returned when a token resolves to no live session.
	ErrUnauthorized = errors.New("unauthorized")
)
