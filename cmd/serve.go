// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/glambook/salon-service/internal/config"
	"github.com/glambook/salon-service/internal/db"
	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/monitoring/prometheus"
	"github.com/glambook/salon-service/internal/sessions"
	"github.com/glambook/salon-service/internal/storage"
	"github.com/glambook/salon-service/internal/tracing"
	"github.com/glambook/salon-service/pkg/booking"
	"github.com/glambook/salon-service/pkg/dashboard"
	"github.com/glambook/salon-service/pkg/identity"
	"github.com/glambook/salon-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("salon-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var sessionStore sessions.StoreInterface
	if specs.SessionRedisAddr != "" {
		sessionStore = sessions.NewRedisStore(specs.SessionRedisAddr, specs.SessionRedisPassword, specs.SessionRedisDB, logger)
		logger.Infof("Using redis session store at %s", specs.SessionRedisAddr)
	} else {
		sessionStore = sessions.NewMemoryStore()
		logger.Info("Using in-memory session store")
	}

	identityService := identity.NewService(s, sessionStore, dbClient, tracer, monitor, logger)
	bookingService := booking.NewService(s, tracer, monitor, logger)
	dashboardService := dashboard.NewService(s, tracer, monitor, logger)

	if specs.SeedDemoData {
		if err := identity.SeedDemoData(context.Background(), identityService, s, logger); err != nil {
			return fmt.Errorf("failed to seed demo data: %v", err)
		}
	}

	router := web.NewRouter(
		web.RouterConfig{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			IdentityService:    identityService,
			BookingService:     bookingService,
			DashboardService:   dashboardService,
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
