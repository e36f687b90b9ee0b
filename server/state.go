// Package server implements the connection state machine (§4.5) and the
// accept loop that drives it (§4.6): one worker goroutine per accepted
// connection, sharing process-wide immutable state (RSA keypair,
// configuration, logger) and a rate limiter guarding new connections.
package server

import (
	"sync"

	"github.com/go-mclib/mcserver/crypto"
	"github.com/go-mclib/mcserver/internal/config"
	"github.com/go-mclib/mcserver/session"
	"github.com/go-mclib/mcserver/worldbackend"
	"go.uber.org/zap"
)

// State is the process-wide shared state every worker reads. Per §5, the
// RSA keypair and configuration are read-only after startup; PlayerCount is
// the one field workers mutate, guarded by mu.
type State struct {
	KeyPair  *crypto.ServerKeyPair
	Config   *config.Config
	Logger   *zap.Logger
	Verifier session.Verifier
	World    worldbackend.Backend

	mu          sync.RWMutex
	playerCount int
}

// NewState assembles process-wide state from its already-initialized parts.
func NewState(keyPair *crypto.ServerKeyPair, cfg *config.Config, logger *zap.Logger, verifier session.Verifier, world worldbackend.Backend) *State {
	return &State{KeyPair: keyPair, Config: cfg, Logger: logger, Verifier: verifier, World: world}
}

// IncrementPlayerCount records a successful login and returns the new count.
func (s *State) IncrementPlayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playerCount++
	return s.playerCount
}

// DecrementPlayerCount records a disconnect.
func (s *State) DecrementPlayerCount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.playerCount > 0 {
		s.playerCount--
	}
}

// PlayerCount reads the current count under the shared-read lock.
func (s *State) PlayerCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.playerCount
}
