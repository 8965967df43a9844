// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/glambook/salon-service/internal/logging"
	"github.com/glambook/salon-service/internal/monitoring"
	"github.com/glambook/salon-service/internal/sessions"
	"github.com/glambook/salon-service/internal/storage"
	"github.com/glambook/salon-service/internal/tracing"
	"github.com/glambook/salon-service/internal/types"
)

const tokenLength = 32

// dummyHash is compared against when the email is unknown so that sign-in
// latency does not reveal whether an account exists.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

var defaultFeatures = []string{"appointments", "clients", "staff"}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  storage.StorageInterface
	sessions sessions.StoreInterface
	tx       TxRunnerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	s storage.StorageInterface,
	sessionStore sessions.StoreInterface,
	tx TxRunnerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  s,
		sessions: sessionStore,
		tx:       tx,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

// SignUp registers a tenant, its credential and the seed collection set in
// one transaction. Duplicate emails fail with ErrEmailTaken and leave
// existing data untouched.
func (s *Service) SignUp(ctx context.Context, email, password, name, salonName string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.SignUp")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if salonName == "" {
		salonName = fmt.Sprintf("%s's Salon", name)
	}

	var tenant *types.Tenant
	err = s.tx.WithTx(ctx, func(txCtx context.Context) error {
		tenant, err = s.storage.CreateTenant(txCtx, &types.Tenant{
			Name:             name,
			SalonName:        salonName,
			SubscriptionTier: "basic",
			Features:         defaultFeatures,
		})
		if err != nil {
			return err
		}

		if err := s.storage.CreateCredential(txCtx, &types.Credential{
			Email:        email,
			TenantID:     tenant.ID,
			PasswordHash: string(hash),
		}); err != nil {
			return err
		}

		return s.seedCollections(txCtx, tenant)
	})

	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}

	s.logger.Security().AccountCreated(tenant.ID)

	return tenant, nil
}

// SignIn checks the credential and issues an opaque session token. The
// failure is uniform whether the email is unknown or the password is wrong.
func (s *Service) SignIn(ctx context.Context, email, password string) (*types.Session, *types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.SignIn")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))

	credential, err := s.storage.GetCredentialByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			s.logger.Security().AuthFailure()
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(password)); err != nil {
		s.logger.Security().AuthFailure()
		return nil, nil, ErrInvalidCredentials
	}

	tenant, err := s.storage.GetTenantByID(ctx, credential.TenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tenant for credential: %w", err)
	}

	token, err := generateToken()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := &types.Session{
		Token:    token,
		TenantID: tenant.ID,
		IssuedAt: time.Now().UTC(),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.Security().AuthSuccess(tenant.ID)

	return session, tenant, nil
}

// ResolveSession maps a bearer token to its tenant. A token that was never
// issued, was signed out, or points at a vanished tenant is ErrUnauthorized.
func (s *Service) ResolveSession(ctx context.Context, token string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "identity.Service.ResolveSession")
	defer span.End()

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}

	if _, err := s.storage.GetTenantByID(ctx, session.TenantID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrUnauthorized
		}
		return "", fmt.Errorf("failed to verify session tenant: %w", err)
	}

	return session.TenantID, nil
}

// SignOut revokes a session. Revoking an unknown or already revoked token is
// not an error.
func (s *Service) SignOut(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "identity.Service.SignOut")
	defer span.End()

	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up session: %w", err)
	}

	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	s.logger.Security().SessionRevoked(session.TenantID)

	return nil
}

func (s *Service) seedCollections(ctx context.Context, tenant *types.Tenant) error {
	settings, err := json.Marshal(types.SalonSettings{
		SalonName:        tenant.SalonName,
		OwnerName:        tenant.Name,
		SubscriptionTier: tenant.SubscriptionTier,
		Features:         tenant.Features,
		CreatedAt:        time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to serialize settings: %w", err)
	}

	if err := s.storage.SetCollection(ctx, tenant.ID, storage.CollectionSettings, settings); err != nil {
		return err
	}

	for _, collection := range []string{
		storage.CollectionAppointments,
		storage.CollectionStaff,
		storage.CollectionClients,
		storage.CollectionCampaigns,
	} {
		if err := s.storage.SetCollection(ctx, tenant.ID, collection, json.RawMessage(`[]`)); err != nil {
			return err
		}
	}

	return nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
