package wallets

import (
	"errors"
	"fmt"
)

var (
	// ErrAdapterUnavailable is returned when the signing provider is not
	// present (extension not installed or removed mid-session).
	ErrAdapterUnavailable = errors.New("wallet provider not available")

	// ErrAddressUnavailable is returned when the provider responded to a
	// connect but no address could be extracted from any known field.
	ErrAddressUnavailable = errors.New("unable to extract address from wallet response")

	// ErrNoTransactionHash is returned when the provider's submit response
	// contains no extractable transaction hash.
	ErrNoTransactionHash = errors.New("wallet did not return a transaction hash")

	// ErrNotImplemented is returned by signing paths that are a known gap,
	// such as the deep-link flow.
	ErrNotImplemented = errors.New("not implemented")
)

// UnsupportedWalletError is returned when an unknown adapter id is requested.
type UnsupportedWalletError struct {
	ID string
}

func (e *UnsupportedWalletError) Error() string {
	return fmt.Sprintf("unsupported wallet: %s", e.ID)
}
