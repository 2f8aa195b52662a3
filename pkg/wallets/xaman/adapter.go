// Package xaman is the deep-link (QR) wallet adapter. It has no injected
// provider: the user approves requests on a mobile device, so there is no
// local availability precondition.
//
// The signing flow is not wired up in this codebase. Connect yields an
// empty address and SignAndSubmit fails with wallets.ErrNotImplemented; a
// complete flow needs a pending/awaiting-approval state between deep-link
// dispatch and the mobile approval callback, which this adapter does not
// model yet.
package xaman

import (
	"context"
	"fmt"

	"github.com/xoceanhq/xrplend/pkg/constants"
	"github.com/xoceanhq/xrplend/pkg/types"
	"github.com/xoceanhq/xrplend/pkg/wallets"
)

// Adapter implements wallets.Adapter for the Xaman deep-link flow.
type Adapter struct{}

// New creates a Xaman adapter.
func New() *Adapter {
	return &Adapter{}
}

// Register adds a Xaman adapter to the global registry.
func Register() error {
	return wallets.InitGlobalRegistry().Register(New())
}

// ID implements wallets.Adapter
func (a *Adapter) ID() string {
	return constants.WalletXaman
}

// Name implements wallets.Adapter
func (a *Adapter) Name() string {
	return "Xaman (XUMM)"
}

// Available implements wallets.Adapter. The deep-link flow works without
// a local extension, so the adapter is always available.
func (a *Adapter) Available() bool {
	return true
}

// Connect implements wallets.Adapter. The address is resolved by the
// post-sign-in flow, not locally; until that flow exists the result
// carries an empty address.
func (a *Adapter) Connect(ctx context.Context) (*wallets.ConnectResult, error) {
	return &wallets.ConnectResult{}, nil
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
	return nil, fmt.Errorf("xaman deep-link signing: %w", wallets.ErrNotImplemented)
}
