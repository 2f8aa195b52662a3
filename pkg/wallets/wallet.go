package wallets

import (
	"context"

	"github.com/xoceanhq/xrplend/pkg/types"
)

// Adapter binds one signing provider (a browser extension or a deep-link
// flow) behind a uniform interface. Adapters are constructed once at
// process start and shared read-only by the registry and the session.
type Adapter interface {
	// ID returns the adapter identifier, one of the constants.Wallet* values
	ID() string

	// Name returns the human-readable wallet name
	Name() string

	// Available reports whether the provider can be used right now.
	// For extension adapters this is a synchronous probe for the injected
	// provider handle; the deep-link adapter has no local precondition and
	// always reports true.
	Available() bool

	// Connect establishes a session with the provider and returns the
	// account address and, when the provider reports it, the network
	Connect(ctx context.Context) (*ConnectResult, error)

	// Address re-invokes Connect and returns only the address. This may
	// re-trigger the provider's connect prompt; callers holding a session
	// should prefer the session's cached address
	Address(ctx context.Context) (string, error)

	// SignAndSubmit hands the payload to the provider for signing and
	// submission and returns the transaction hash
	SignAndSubmit(ctx context.Context, tx types.Payload) (*SubmitResult, error)
}

// ConnectResult is the normalized outcome of a provider connect call.
type ConnectResult struct {
	Address string
	Network string // empty when the provider does not report it
}

// SubmitResult is the normalized outcome of a sign-and-submit call.
type SubmitResult struct {
	Hash string
}

// Signer is an optional interface for adapters that can sign a payload
// without submitting it, returning the signed transaction blob.
type Signer interface {
	SignOnly(ctx context.Context, tx types.Payload) (string, error)
}

// NetworkReporter is an optional interface for adapters that can report
// the provider's active network without a full connect.
type NetworkReporter interface {
	NetworkName(ctx context.Context) (string, error)
}

// Disconnecter is an optional interface for adapters whose provider has
// an explicit disconnect call.
type Disconnecter interface {
	Disconnect(ctx context.Context) error
}
