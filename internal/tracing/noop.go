// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"go.opentelemetry.io/otel/trace/noop"
)

func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer: noop.NewTracerProvider().Tracer("salon-service"),
	}
}
