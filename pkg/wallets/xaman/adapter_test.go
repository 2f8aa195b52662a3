package xaman

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoceanhq/xrplend/pkg/types"
	"github.com/xoceanhq/xrplend/pkg/wallets"
)

func TestAdapterIdentity(t *testing.T) {
	a := New()
	assert.Equal(t, "xaman", a.ID())
	assert.Equal(t, "Xaman (XUMM)", a.Name())
}

func TestAlwaysAvailable(t *testing.T) {
	// The deep-link flow has no local precondition
	assert.True(t, New().Available())
}

func TestConnectReturnsEmptyAddress(t *testing.T) {
	res, err := New().Connect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Address)
	assert.Empty(t, res.Network)

	address, err := New().Address(context.Background())
	require.NoError(t, err)
	assert.Empty(t, address)
}

func TestSignAndSubmitNotImplemented(t *testing.T) {
	_, err := New().SignAndSubmit(context.Background(), types.Payload{"TransactionType": "Payment"})
	assert.ErrorIs(t, err, wallets.ErrNotImplemented)
}
