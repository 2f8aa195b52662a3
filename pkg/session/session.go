// Package session holds the single source of truth for "who is connected,
// via which adapter, on which network". All signing flows pass through it.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/xoceanhq/xrplend/pkg/constants"
	"github.com/xoceanhq/xrplend/pkg/store"
	"github.com/xoceanhq/xrplend/pkg/types"
	"github.com/xoceanhq/xrplend/pkg/wallets"
)

// ErrNoWalletConnected is returned when signing is attempted with no
// active session.
var ErrNoWalletConnected = errors.New("no wallet connected")

// WalletUnavailableError is returned when a known adapter is requested but
// its provider is not usable right now.
type WalletUnavailableError struct {
	Name string
}

func (e *WalletUnavailableError) Error() string {
	return fmt.Sprintf("%s not available", e.Name)
}

func (e *WalletUnavailableError) Unwrap() error {
	return wallets.ErrAdapterUnavailable
}

// State is the session's position in its connect lifecycle.
type State int

const (
	Disconnected State = iota
	Connecting
	Connected
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return "disconnected"
	}
}

// Session is the process-wide wallet session. It is not safe for
// concurrent use: callers are expected to serialize access (a UI event
// loop). Overlapping Connect or SignAndSubmit calls are not rejected;
// the later call's result wins.
type Session struct {
	registry *wallets.Registry
	store    store.Store
	logger   *slog.Logger

	state   State
	adapter wallets.Adapter
	address string
	network string
}

// New creates a disconnected session over the given registry and store.
func New(registry *wallets.Registry, st store.Store, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		registry: registry,
		store:    st,
		logger:   logger,
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Connected reports whether an address is held. It is derived: true iff
// Address() is non-empty.
func (s *Session) Connected() bool {
	return s.address != ""
}

// Address returns the connected account address, or "".
func (s *Session) Address() string {
	return s.address
}

// Network returns the network reported at connect time, or "".
func (s *Session) Network() string {
	return s.network
}

// Adapter returns the active adapter, or nil.
func (s *Session) Adapter() wallets.Adapter {
	return s.adapter
}

// Connect looks up the adapter by id, gates on availability, connects and
// stores the resulting address and network, and persists the adapter id
// for later silent reconnection. A persistence failure does not fail the
// connect; it only costs the next startup's reconnect attempt.
func (s *Session) Connect(ctx context.Context, id string) error {
	adapter, err := s.registry.Get(id)
	if err != nil {
		return err
	}
	if !adapter.Available() {
		return &WalletUnavailableError{Name: adapter.Name()}
	}

	s.state = Connecting
	res, err := adapter.Connect(ctx)
	if err != nil {
		s.state = Disconnected
		return fmt.Errorf("wallet connect failed: %w", err)
	}

	s.adapter = adapter
	s.address = res.Address
	s.network = res.Network
	s.state = Connected

	if err := s.store.Set(constants.StorageKeyAdapter, id); err != nil {
		s.logger.Warn("failed to persist adapter id", "wallet", id, "error", err)
	}

	s.logger.Info("wallet connected", "wallet", id, "address", s.address, "network", s.network)
	return nil
}

// SignAndSubmit delegates the payload to the active adapter. The session
// performs no retry and no payload validation; both are the caller's
// responsibility.
func (s *Session) SignAndSubmit(ctx context.Context, tx types.Payload) (*wallets.SubmitResult, error) {
	if s.adapter == nil {
		return nil, ErrNoWalletConnected
	}
	return s.adapter.SignAndSubmit(ctx, tx)
}

// Disconnect clears the session and removes the persisted adapter id.
// It is idempotent; disconnecting an already disconnected session is a
// no-op.
func (s *Session) Disconnect(ctx context.Context) error {
	if s.adapter == nil && s.address == "" {
		return nil
	}

	// Providers with an explicit disconnect get told, best effort.
	if d, ok := s.adapter.(wallets.Disconnecter); ok {
		if err := d.Disconnect(ctx); err != nil {
			s.logger.Warn("provider disconnect failed", "wallet", s.adapter.ID(), "error", err)
		}
	}

	id := ""
	if s.adapter != nil {
		id = s.adapter.ID()
	}
	s.adapter = nil
	s.address = ""
	s.network = ""
	s.state = Disconnected

	if err := s.store.Delete(constants.StorageKeyAdapter); err != nil {
		return fmt.Errorf("failed to clear persisted adapter id: %w", err)
	}

	s.logger.Info("wallet disconnected", "wallet", id)
	return nil
}

// Restore attempts a silent reconnect from the persisted adapter id. It
// is best effort: any failure is swallowed, logged, and clears the
// persisted id, leaving the session disconnected. The return value
// reports whether a session was restored.
func (s *Session) Restore(ctx context.Context) bool {
	id, found, err := s.store.Get(constants.StorageKeyAdapter)
	if err != nil {
		s.logger.Warn("failed to read persisted adapter id", "error", err)
		return false
	}
	if !found {
		return false
	}

	adapter, err := s.registry.Get(id)
	if err != nil || !adapter.Available() {
		s.clearPersisted(id)
		return false
	}

	s.state = Connecting
	res, err := adapter.Connect(ctx)
	if err != nil {
		s.state = Disconnected
		s.logger.Warn("silent reconnect failed", "wallet", id, "error", err)
		s.clearPersisted(id)
		return false
	}

	s.adapter = adapter
	s.address = res.Address
	s.network = res.Network
	s.state = Connected

	s.logger.Info("wallet session restored", "wallet", id, "address", s.address)
	return true
}

func (s *Session) clearPersisted(id string) {
	if err := s.store.Delete(constants.StorageKeyAdapter); err != nil {
		s.logger.Warn("failed to clear persisted adapter id", "wallet", id, "error", err)
	}
}
