// Copyright 2026 GlamBook Ltd.
// SPDX-License-Identifier: AGPL-3.0

package sessions

import (
	"context"
	"sync"

	"github.com/glambook/salon-service/internal/types"
)

var _ StoreInterface = (*MemoryStore)(nil)

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart; deployments that need that use the redis store instead.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]types.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]types.Session),
	}
}

func (s *MemoryStore) Put(_ context.Context, session *types.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.Token] = *session
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*types.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	return &session, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
