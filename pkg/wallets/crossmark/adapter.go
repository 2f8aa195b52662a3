// Package crossmark adapts the Crossmark browser-extension provider to the
// wallets.Adapter interface.
package crossmark

import (
	"context"
	"fmt"

	"github.com/xoceanhq/xrplend/pkg/constants"
	"github.com/xoceanhq/xrplend/pkg/types"
	"github.com/xoceanhq/xrplend/pkg/wallets"
)

// Provider models the injected Crossmark global. Responses are raw maps
// because the extension's response shapes differ across versions; the
// adapter normalizes them in one place.
type Provider interface {
	Connect(ctx context.Context) (map[string]any, error)
	GetAddress(ctx context.Context) (map[string]any, error)
	GetNetwork(ctx context.Context) (map[string]any, error)
	Sign(ctx context.Context, tx types.Payload) (map[string]any, error)
	SignAndSubmit(ctx context.Context, tx types.Payload) (map[string]any, error)
}

// Adapter implements wallets.Adapter over a Crossmark provider.
type Adapter struct {
	provider Provider
}

// New creates a Crossmark adapter. A nil provider means the extension is
// not installed; the adapter reports unavailable.
func New(provider Provider) *Adapter {
	return &Adapter{provider: provider}
}

// Register adds a Crossmark adapter for provider to the global registry.
func Register(provider Provider) error {
	return wallets.InitGlobalRegistry().Register(New(provider))
}

// ID implements wallets.Adapter
func (a *Adapter) ID() string {
	return constants.WalletCrossmark
}

// Name implements wallets.Adapter
func (a *Adapter) Name() string {
	return "Crossmark"
}

// Available implements wallets.Adapter
func (a *Adapter) Available() bool {
	return a.provider != nil
}

// Connect implements wallets.Adapter
func (a *Adapter) Connect(ctx context.Context) (*wallets.ConnectResult, error) {
	if !a.Available() {
		return nil, fmt.Errorf("crossmark: %w", wallets.ErrAdapterUnavailable)
	}

	raw, err := a.provider.Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("crossmark connect failed: %w", err)
	}

	address, ok := normalizeAddress(raw)
	if !ok {
		// Older extension builds return the address only from the
		// dedicated call.
		fallback, fbErr := a.provider.GetAddress(ctx)
		if fbErr == nil {
			address, ok = normalizeAddress(fallback)
		}
	}
	if !ok {
		return nil, fmt.Errorf("crossmark: %w", wallets.ErrAddressUnavailable)
	}

	// Network is best effort; a provider that cannot report it still
	// yields a usable session.
	network := ""
	if rawNet, netErr := a.provider.GetNetwork(ctx); netErr == nil {
		network, _ = normalizeNetwork(rawNet)
	}

	return &wallets.ConnectResult{Address: address, Network: network}, nil
}

// Address implements wallets.Adapter
func (a *Adapter) Address(ctx context.Context) (string, error) {
	res, err := a.Connect(ctx)
	if err != nil {
		return "", err
	}
	return res.Address, nil
}

// SignAndSubmit implements wallets.Adapter
func (a *Adapter) SignAndSubmit(ctx context.Context, tx types.Payload) (*wallets.SubmitResult, error) {
	if !a.Available() {
		return nil, fmt.Errorf("crossmark: %w", wallets.ErrAdapterUnavailable)
	}

	raw, err := a.provider.SignAndSubmit(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("crossmark sign and submit failed: %w", err)
	}

	hash, ok := normalizeHash(raw)
	if !ok {
		return nil, fmt.Errorf("crossmark: %w", wallets.ErrNoTransactionHash)
	}
	return &wallets.SubmitResult{Hash: hash}, nil
}

// SignOnly implements wallets.Signer
func (a *Adapter) SignOnly(ctx context.Context, tx types.Payload) (string, error) {
	if !a.Available() {
		return "", fmt.Errorf("crossmark: %w", wallets.ErrAdapterUnavailable)
	}

	raw, err := a.provider.Sign(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("crossmark sign failed: %w", err)
	}

	blob, ok := normalizeBlob(raw)
	if !ok {
		return "", fmt.Errorf("crossmark: %w", wallets.ErrNoTransactionHash)
	}
	return blob, nil
}

// NetworkName implements wallets.NetworkReporter
func (a *Adapter) NetworkName(ctx context.Context) (string, error) {
	if !a.Available() {
		return "", fmt.Errorf("crossmark: %w", wallets.ErrAdapterUnavailable)
	}

	raw, err := a.provider.GetNetwork(ctx)
	if err != nil {
		return "", fmt.Errorf("crossmark get network failed: %w", err)
	}
	network, _ := normalizeNetwork(raw)
	return network, nil
}
