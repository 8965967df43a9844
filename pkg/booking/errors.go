// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package booking

import "errors"

// ErrNotFound is returned when an operation targets a record ID that does
// not exist in the tenant's collection.
var ErrNotFound = errors.New("record not found")
