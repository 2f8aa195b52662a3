package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoceanhq/xrplend/pkg/types"
)

// reliableMock is a deterministic mock backend with failure injection and
// latency turned off.
func reliableMock(seed int64) *MockDialer {
	d := NewSeededMockDialer(seed)
	d.DialFailureRate = 0
	d.SubmitFailureRate = 0
	d.Latency = false
	return d
}

func TestMockDial(t *testing.T) {
	d := reliableMock(1)
	conn, err := d.Dial(context.Background(), "wss://s.altnet.rippletest.net:51233")
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.NoError(t, conn.Close())
}

func TestMockDialFailure(t *testing.T) {
	d := reliableMock(1)
	d.DialFailureRate = 1
	_, err := d.Dial(context.Background(), "wss://s.altnet.rippletest.net:51233")
	assert.Error(t, err)
}

func TestMockAccountInfoShape(t *testing.T) {
	d := reliableMock(42)
	conn, err := d.Dial(context.Background(), "wss://mock")
	require.NoError(t, err)

	// The per-request not-found roll makes individual lookups flaky by
	// design; at least one of a handful must succeed.
	var info types.AccountInfo
	var got bool
	for i := 0; i < 10; i++ {
		if err := conn.Request(context.Background(), "account_info", map[string]any{"account": "rABC"}, &info); err == nil {
			got = true
			break
		}
	}
	require.True(t, got)

	assert.Equal(t, "rABC", info.AccountData.Account)
	assert.NotEmpty(t, info.AccountData.Balance)
	assert.Equal(t, "AccountRoot", info.AccountData.LedgerEntryType)
	assert.True(t, info.Validated)
	assert.NotZero(t, info.LedgerCurrentIndex)
}

// mustSubmit submits against the mock, retrying past its residual
// random rejections.
func mustSubmit(t *testing.T, conn Conn) types.TransactionResult {
	t.Helper()
	var res types.TransactionResult
	for i := 0; i < 20; i++ {
		err := conn.Request(context.Background(), "submit", map[string]any{
			"tx_json": types.Payload{"TransactionType": "Payment"},
		}, &res)
		if err == nil {
			return res
		}
	}
	t.Fatal("mock rejected every submit attempt")
	return res
}

func TestMockSubmit(t *testing.T) {
	d := reliableMock(7)
	conn, err := d.Dial(context.Background(), "wss://mock")
	require.NoError(t, err)

	res := mustSubmit(t, conn)

	assert.Len(t, res.Hash, 64)
	assert.Regexp(t, "^[0-9A-F]{64}$", res.Hash)
	assert.True(t, res.Validated)
	assert.Equal(t, "tesSUCCESS", res.Meta["TransactionResult"])
	assert.NotZero(t, res.LedgerIndex)
}

func TestMockSubmitFailureRate(t *testing.T) {
	d := reliableMock(7)
	d.SubmitFailureRate = 1
	conn, err := d.Dial(context.Background(), "wss://mock")
	require.NoError(t, err)

	err = conn.Request(context.Background(), "submit", map[string]any{}, &types.TransactionResult{})
	require.Error(t, err)

	var serverErr *ServerError
	assert.ErrorAs(t, err, &serverErr)
}

func TestMockUnknownCommand(t *testing.T) {
	d := reliableMock(1)
	conn, err := d.Dial(context.Background(), "wss://mock")
	require.NoError(t, err)

	err = conn.Request(context.Background(), "ledger_closed", nil, nil)
	assert.Error(t, err)
}

func TestMockDeterministicForSeed(t *testing.T) {
	submit := func(seed int64) string {
		d := reliableMock(seed)
		conn, err := d.Dial(context.Background(), "wss://mock")
		require.NoError(t, err)
		return mustSubmit(t, conn).Hash
	}

	assert.Equal(t, submit(99), submit(99))
	assert.NotEqual(t, submit(99), submit(100))
}

func TestServiceOverMockEndToEnd(t *testing.T) {
	s := New("testnet", WithDialer(reliableMock(3)))

	require.NoError(t, s.Connect(context.Background()))
	assert.True(t, s.IsConnected())
	assert.NotEmpty(t, s.CurrentServer())
	assert.Equal(t, "testnet", s.NetworkName())

	lines, err := s.AccountLines(context.Background(), "rABC")
	require.NoError(t, err)
	assert.Equal(t, "rABC", lines.Account)

	var res *types.TransactionResult
	for i := 0; i < 20; i++ {
		res, err = s.Submit(context.Background(), types.Payload{"TransactionType": "TrustSet", "Account": "rABC"})
		if err == nil {
			break
		}
	}
	require.NoError(t, err)
	assert.Len(t, res.Hash, 64)

	s.Disconnect()
	assert.False(t, s.IsConnected())
}
