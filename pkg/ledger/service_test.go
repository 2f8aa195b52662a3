package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xoceanhq/xrplend/pkg/types"
)

// scriptDialer refuses the endpoints in failing and accepts the rest,
// recording the dial order.
type scriptDialer struct {
	failing map[string]bool
	dialed  []string
	conn    *scriptConn
}

func (d *scriptDialer) Dial(ctx context.Context, url string) (Conn, error) {
	d.dialed = append(d.dialed, url)
	if d.failing[url] {
		return nil, errors.New("connection refused")
	}
	if d.conn == nil {
		d.conn = &scriptConn{responses: map[string]any{}}
	}
	return d.conn, nil
}

// scriptConn answers each command from a canned response map.
type scriptConn struct {
	responses map[string]any
	errs      map[string]error
	requests  []scriptRequest
	closed    bool
}

type scriptRequest struct {
	command string
	params  map[string]any
}

func (c *scriptConn) Request(ctx context.Context, command string, params map[string]any, result any) error {
	c.requests = append(c.requests, scriptRequest{command: command, params: params})
	if err := c.errs[command]; err != nil {
		return err
	}
	raw, err := json.Marshal(c.responses[command])
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, result)
}

func (c *scriptConn) Close() error {
	c.closed = true
	return nil
}

func TestConnectFailover(t *testing.T) {
	dialer := &scriptDialer{failing: map[string]bool{
		"wss://a.example.com": true,
		"wss://b.example.com": true,
	}}
	s := New("testnet",
		WithDialer(dialer),
		WithServers([]string{"wss://a.example.com", "wss://b.example.com", "wss://c.example.com"}))

	require.NoError(t, s.Connect(context.Background()))

	// Endpoints are tried strictly in order
	assert.Equal(t, []string{"wss://a.example.com", "wss://b.example.com", "wss://c.example.com"}, dialer.dialed)
	assert.True(t, s.IsConnected())
	assert.Equal(t, "wss://c.example.com", s.CurrentServer())
}

func TestConnectAllServersDown(t *testing.T) {
	dialer := &scriptDialer{failing: map[string]bool{
		"wss://a.example.com": true,
		"wss://b.example.com": true,
	}}
	s := New("testnet",
		WithDialer(dialer),
		WithServers([]string{"wss://a.example.com", "wss://b.example.com"}))

	err := s.Connect(context.Background())
	require.Error(t, err)

	var noServer *NoServerAvailableError
	require.ErrorAs(t, err, &noServer)
	assert.Equal(t, "testnet", noServer.Network)
	assert.False(t, s.IsConnected())
	assert.Empty(t, s.CurrentServer())
}

func TestDisconnectIdempotent(t *testing.T) {
	dialer := &scriptDialer{}
	s := New("testnet", WithDialer(dialer), WithServers([]string{"wss://a.example.com"}))

	require.NoError(t, s.Connect(context.Background()))
	s.Disconnect()
	assert.False(t, s.IsConnected())
	assert.True(t, dialer.conn.closed)

	s.Disconnect() // no-op
}

func TestAccountInfoAutoConnects(t *testing.T) {
	dialer := &scriptDialer{conn: &scriptConn{responses: map[string]any{
		"account_info": map[string]any{
			"account_data": map[string]any{
				"Account": "rABC",
				"Balance": "25000000",
			},
		},
	}}}
	s := New("testnet", WithDialer(dialer), WithServers([]string{"wss://a.example.com"}))

	// No explicit Connect; the first request dials
	info, err := s.AccountInfo(context.Background(), "rABC")
	require.NoError(t, err)
	assert.True(t, s.IsConnected())
	assert.Equal(t, "rABC", info.AccountData.Account)
	assert.Equal(t, "25000000", info.AccountData.Balance)

	require.Len(t, dialer.conn.requests, 1)
	assert.Equal(t, "account_info", dialer.conn.requests[0].command)
	assert.Equal(t, "rABC", dialer.conn.requests[0].params["account"])
}

func TestAccountLines(t *testing.T) {
	dialer := &scriptDialer{conn: &scriptConn{responses: map[string]any{
		"account_lines": map[string]any{
			"account": "rABC",
			"lines": []map[string]any{
				{"account": "rIssuer", "currency": "RLUSD", "balance": "100", "limit": "1000000"},
			},
		},
	}}}
	s := New("testnet", WithDialer(dialer), WithServers([]string{"wss://a.example.com"}))

	lines, err := s.AccountLines(context.Background(), "rABC")
	require.NoError(t, err)
	require.Len(t, lines.Lines, 1)
	assert.Equal(t, "RLUSD", lines.Lines[0].Currency)
	assert.Equal(t, "rIssuer", lines.Lines[0].Account)
}

func TestSubmitWrapsTransaction(t *testing.T) {
	dialer := &scriptDialer{conn: &scriptConn{responses: map[string]any{
		"submit": map[string]any{
			"hash":         "ABCDEF",
			"ledger_index": 12345,
			"validated":    true,
			"meta":         map[string]any{"TransactionResult": "tesSUCCESS"},
		},
	}}}
	s := New("testnet", WithDialer(dialer), WithServers([]string{"wss://a.example.com"}))

	tx := types.Payload{"TransactionType": "Payment", "Account": "rABC"}
	res, err := s.Submit(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF", res.Hash)
	assert.Equal(t, uint32(12345), res.LedgerIndex)
	assert.Equal(t, "tesSUCCESS", res.Meta["TransactionResult"])

	require.Len(t, dialer.conn.requests, 1)
	req := dialer.conn.requests[0]
	assert.Equal(t, "submit", req.command)
	assert.Equal(t, tx, req.params["tx_json"])
}

func TestSubmitError(t *testing.T) {
	dialer := &scriptDialer{conn: &scriptConn{errs: map[string]error{
		"submit": &ServerError{Server: "wss://a.example.com", Err: errors.New("temporarily unavailable")},
	}}}
	s := New("testnet", WithDialer(dialer), WithServers([]string{"wss://a.example.com"}))

	_, err := s.Submit(context.Background(), types.Payload{})
	require.Error(t, err)

	var serverErr *ServerError
	assert.ErrorAs(t, err, &serverErr)
}

func TestTransactionNotFound(t *testing.T) {
	dialer := &scriptDialer{conn: &scriptConn{errs: map[string]error{
		"tx": &ServerError{Server: "wss://a.example.com", Err: ErrNotFound},
	}}}
	s := New("testnet", WithDialer(dialer), WithServers([]string{"wss://a.example.com"}))

	res, err := s.Transaction(context.Background(), "DEADBEEF")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestTransactionFound(t *testing.T) {
	dialer := &scriptDialer{conn: &scriptConn{responses: map[string]any{
		"tx": map[string]any{
			"hash":      "DEADBEEF",
			"validated": true,
		},
	}}}
	s := New("testnet", WithDialer(dialer), WithServers([]string{"wss://a.example.com"}))

	res, err := s.Transaction(context.Background(), "DEADBEEF")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "DEADBEEF", res.Hash)
	assert.True(t, res.Validated)
}

func TestNotFoundCodes(t *testing.T) {
	for _, code := range []string{"actNotFound", "txnNotFound", "entryNotFound"} {
		assert.True(t, isNotFoundCode(code), code)
	}
	assert.False(t, isNotFoundCode("temMALFORMED"))
}
