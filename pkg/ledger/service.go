// Package ledger wraps the connection lifecycle to a ledger network and
// exposes account lookup, trust line enumeration, and transaction
// submission. The facade performs no retries; callers decide which
// failures are retryable.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/xoceanhq/xrplend/pkg/config"
	"github.com/xoceanhq/xrplend/pkg/types"
)

// Service is a ledger client facade for one network. Endpoints from the
// network configuration are tried in order until one accepts a
// connection.
//
// The default backend is the randomized mock dialer; production
// deployments install a WebSocketDialer via WithDialer. The method
// contracts are identical either way.
type Service struct {
	network string
	cfg     config.NetworkConfig
	logger  *slog.Logger
	dialer  Dialer

	conn          Conn
	currentServer string
}

// Option configures a Service.
type Option func(*Service)

// WithDialer sets the endpoint dialer.
func WithDialer(d Dialer) Option {
	return func(s *Service) {
		s.dialer = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithServers overrides the endpoint list from the network configuration.
func WithServers(servers []string) Option {
	return func(s *Service) {
		s.cfg.Servers = servers
	}
}

// New creates a Service for the named network.
func New(network string, opts ...Option) *Service {
	s := &Service{
		network: network,
		cfg:     config.Network(network),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.dialer == nil {
		s.dialer = NewMockDialer()
	}
	return s
}

// Connect tries each configured endpoint in order and keeps the first
// connection that succeeds. When all endpoints are exhausted it fails
// with NoServerAvailableError.
func (s *Service) Connect(ctx context.Context) error {
	var lastErr error
	for _, server := range s.cfg.Servers {
		conn, err := s.dialer.Dial(ctx, server)
		if err != nil {
			s.logger.Warn("failed to connect to ledger server", "server", server, "error", err)
			lastErr = err
			continue
		}
		s.conn = conn
		s.currentServer = server
		s.logger.Info("connected to ledger", "network", s.network, "server", server)
		return nil
	}
	return &NoServerAvailableError{Network: s.network, Err: lastErr}
}

// Disconnect closes the current connection. Disconnecting while already
// disconnected is a no-op.
func (s *Service) Disconnect() {
	if s.conn == nil {
		return
	}
	if err := s.conn.Close(); err != nil {
		s.logger.Warn("error closing ledger connection", "server", s.currentServer, "error", err)
	}
	s.conn = nil
	s.currentServer = ""
	s.logger.Info("disconnected from ledger", "network", s.network)
}

// IsConnected reports whether a connection is held.
func (s *Service) IsConnected() bool {
	return s.conn != nil
}

// CurrentServer returns the endpoint in use, or "".
func (s *Service) CurrentServer() string {
	return s.currentServer
}

// NetworkName returns the network this service targets.
func (s *Service) NetworkName() string {
	return s.network
}

// ExplorerURL returns the explorer link for a transaction hash, or the
// explorer base URL when hash is empty.
func (s *Service) ExplorerURL(hash string) string {
	return config.ExplorerTxURL(s.network, hash)
}

func (s *Service) ensureConnected(ctx context.Context) error {
	if s.conn != nil {
		return nil
	}
	return s.Connect(ctx)
}

// AccountInfo looks up the account root entry for address.
func (s *Service) AccountInfo(ctx context.Context, address string) (*types.AccountInfo, error) {
	if err := s.ensureConnected(ctx); err != nil {
		return nil, err
	}

	var info types.AccountInfo
	err := s.conn.Request(ctx, "account_info", map[string]any{
		"account":      address,
		"ledger_index": "current",
	}, &info)
	if err != nil {
		return nil, fmt.Errorf("account_info failed: %w", err)
	}
	return &info, nil
}

// AccountLines enumerates the trust lines held by address.
func (s *Service) AccountLines(ctx context.Context, address string) (*types.AccountLines, error) {
	if err := s.ensureConnected(ctx); err != nil {
		return nil, err
	}

	var lines types.AccountLines
	err := s.conn.Request(ctx, "account_lines", map[string]any{
		"account": address,
	}, &lines)
	if err != nil {
		return nil, fmt.Errorf("account_lines failed: %w", err)
	}
	return &lines, nil
}

// Submit sends a signed (or, against the mock backend, unsigned)
// transaction payload to the ledger and returns its result.
func (s *Service) Submit(ctx context.Context, tx types.Payload) (*types.TransactionResult, error) {
	if err := s.ensureConnected(ctx); err != nil {
		return nil, err
	}

	var result types.TransactionResult
	err := s.conn.Request(ctx, "submit", map[string]any{
		"tx_json": tx,
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("submit failed: %w", err)
	}

	s.logger.Info("transaction submitted",
		"type", tx.TransactionType(),
		"hash", result.Hash,
		"ledgerIndex", result.LedgerIndex)
	return &result, nil
}

// Transaction looks up a transaction by hash. It returns (nil, nil) when
// the ledger has no record of the hash.
func (s *Service) Transaction(ctx context.Context, hash string) (*types.TransactionResult, error) {
	if err := s.ensureConnected(ctx); err != nil {
		return nil, err
	}

	var result types.TransactionResult
	err := s.conn.Request(ctx, "tx", map[string]any{
		"transaction": hash,
	}, &result)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("tx lookup failed: %w", err)
	}
	return &result, nil
}
