// Package gem adapts the Gem Wallet browser-extension provider to the
// wallets.Adapter interface.
package gem

import (
	"context"
	"fmt"

	"github.com/xoceanhq/xrplend/pkg/constants"
	"github.com/xoceanhq/xrplend/pkg/types"
	"github.com/xoceanhq/xrplend/pkg/wallets"
)

// Provider models the injected Gem Wallet global. Depending on the
// extension version, operations are exposed as dedicated methods or only
// through the generic Request call, and GetAddress returns either a plain
// string or an object. The adapter tolerates both.
type Provider interface {
	Connect(ctx context.Context) error
	GetAddress(ctx context.Context) (any, error)
	GetNetwork(ctx context.Context) (map[string]any, error)
	Request(ctx context.Context, method string, params map[string]any) (map[string]any, error)
	SignAndSubmit(ctx context.Context, tx types.Payload) (map[string]any, error)
}

// Adapter implements wallets.Adapter over a Gem Wallet provider.
type Adapter struct {
	provider Provider
}

// New creates a Gem Wallet adapter. A nil provider means the extension is
// not installed; the adapter reports unavailable.
func New(provider Provider) *Adapter {
	return &Adapter{provider: provider}
}

// Register adds a Gem Wallet adapter for provider to the global registry.
func Register(provider Provider) error {
	return wallets.InitGlobalRegistry().Register(New(provider))
}

// ID implements wallets.Adapter
func (a *Adapter) ID() string {
	return constants.WalletGem
}

// Name implements wallets.Adapter
func (a *Adapter) Name() string {
	return "Gem Wallet"
}

// Available implements wallets.Adapter
func (a *Adapter) Available() bool {
	return a.provider != nil
}

// Connect implements wallets.Adapter
func (a *Adapter) Connect(ctx context.Context) (*wallets.ConnectResult, error) {
	if !a.Available() {
		return nil, fmt.Errorf("gem wallet: %w", wallets.ErrAdapterUnavailable)
	}

	if err := a.provider.Connect(ctx); err != nil {
		return nil, fmt.Errorf("gem wallet connect failed: %w", err)
	}

	address, ok := "", false
	if raw, err := a.provider.GetAddress(ctx); err == nil {
		address, ok = normalizeAddress(raw)
	}
	if !ok {
		// Extension versions without a dedicated call answer through the
		// generic request channel.
		raw, err := a.provider.Request(ctx, "getAddress", nil)
		if err == nil {
			address, ok = normalizeAddress(raw)
		}
	}
	if !ok {
		return nil, fmt.Errorf("gem wallet: %w", wallets.ErrAddressUnavailable)
	}

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
		return nil, fmt.Errorf("gem wallet: %w", wallets.ErrAdapterUnavailable)
	}

	raw, err := a.provider.SignAndSubmit(ctx, tx)
	if err != nil || raw == nil {
		raw, err = a.provider.Request(ctx, "signAndSubmit", map[string]any{"tx": tx})
		if err != nil {
			return nil, fmt.Errorf("gem wallet sign and submit failed: %w", err)
		}
	}

	hash, ok := normalizeHash(raw)
	if !ok {
		return nil, fmt.Errorf("gem wallet: %w", wallets.ErrNoTransactionHash)
	}
	return &wallets.SubmitResult{Hash: hash}, nil
}

// NetworkName implements wallets.NetworkReporter
func (a *Adapter) NetworkName(ctx context.Context) (string, error) {
	if !a.Available() {
		return "", fmt.Errorf("gem wallet: %w", wallets.ErrAdapterUnavailable)
	}

	raw, err := a.provider.GetNetwork(ctx)
	if err != nil {
		return "", fmt.Errorf("gem wallet get network failed: %w", err)
	}
	network, _ := normalizeNetwork(raw)
	return network, nil
}
