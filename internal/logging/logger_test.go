// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	logger := NewLogger("DEBUG")
	if logger.Security() == nil {
		t.Error("expected security logger to be initialized")
	}
}

func TestInvalidLevelPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid log level")
		}
	}()
	NewLogger("invalid")
}
