// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	// SessionRedisAddr enables the redis session table when set, otherwise
	// sessions are held in process memory.
	SessionRedisAddr     string `envconfig:"session_redis_addr" default:""`
	SessionRedisPassword string `envconfig:"session_redis_password" default:""`
	SessionRedisDB       int    `envconfig:"session_redis_db" default:"0"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	SeedDemoData bool `envconfig:"seed_demo_data" default:"false"`
}
