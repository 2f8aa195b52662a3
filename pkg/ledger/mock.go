package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/xoceanhq/xrplend/pkg/constants"
	"github.com/xoceanhq/xrplend/pkg/types"
)

// MockDialer simulates ledger endpoints with randomized data and latency.
// It is the backend this codebase ships with; swapping in a real client is
// a WithDialer call away and changes no method contract.
type MockDialer struct {
	// DialFailureRate is the probability that a dial attempt fails,
	// exercising the service's endpoint failover.
	DialFailureRate float64

	// SubmitFailureRate is the probability that a submit is rejected.
	SubmitFailureRate float64

	// Latency enables simulated network delays.
	Latency bool

	rng *rand.Rand
}

// NewMockDialer creates a mock dialer with time-seeded randomness and the
// default failure rates.
func NewMockDialer() *MockDialer {
	return NewSeededMockDialer(time.Now().UnixNano())
}

// NewSeededMockDialer creates a mock dialer with deterministic randomness
// for a given seed.
func NewSeededMockDialer(seed int64) *MockDialer {
	return &MockDialer{
		DialFailureRate:   0.1,
		SubmitFailureRate: 0.05,
		Latency:           true,
		rng:               rand.New(rand.NewSource(seed)),
	}
}

// Dial implements Dialer
func (d *MockDialer) Dial(ctx context.Context, url string) (Conn, error) {
	if err := d.sleep(ctx, 500, 1000); err != nil {
		return nil, err
	}
	if d.rng.Float64() < d.DialFailureRate {
		return nil, fmt.Errorf("failed to connect to %s", url)
	}
	return &mockConn{dialer: d, server: url}, nil
}

func (d *MockDialer) sleep(ctx context.Context, baseMillis, jitterMillis int) error {
	if !d.Latency {
		return nil
	}
	delay := time.Duration(baseMillis+d.rng.Intn(jitterMillis)) * time.Millisecond
	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type mockConn struct {
	dialer *MockDialer
	server string
}

// Request implements Conn
func (c *mockConn) Request(ctx context.Context, command string, params map[string]any, result any) error {
	d := c.dialer
	if err := d.sleep(ctx, 400, 600); err != nil {
		return err
	}

	switch command {
	case "account_info":
		account, _ := params["account"].(string)
		if d.rng.Float64() < 0.05 {
			return &ServerError{Server: c.server, Err: ErrNotFound}
		}
		return assign(result, c.mockAccountInfo(account))

	case "account_lines":
		account, _ := params["account"].(string)
		return assign(result, c.mockAccountLines(account))

	case "submit":
		if d.rng.Float64() < d.SubmitFailureRate {
			return &ServerError{Server: c.server, Err: fmt.Errorf("transaction failed: insufficient balance")}
		}
		if d.rng.Float64() < 0.03 {
			return &ServerError{Server: c.server, Err: fmt.Errorf("transaction failed: invalid sequence number")}
		}
		return assign(result, types.TransactionResult{
			Hash:        c.mockHash(),
			LedgerIndex: c.mockLedgerIndex(),
			Meta: map[string]any{
				"TransactionResult": "tesSUCCESS",
				"TransactionIndex":  d.rng.Intn(100),
			},
			Validated: true,
			Date:      time.Now().Unix(),
		})

	case "tx":
		if d.rng.Float64() < 0.1 {
			return &ServerError{Server: c.server, Err: ErrNotFound}
		}
		hash, _ := params["transaction"].(string)
		return assign(result, types.TransactionResult{
			Hash:        hash,
			LedgerIndex: c.mockLedgerIndex(),
			Meta: map[string]any{
				"TransactionResult": "tesSUCCESS",
				"TransactionIndex":  d.rng.Intn(100),
			},
			Validated: true,
			Date:      time.Now().Unix() - int64(d.rng.Intn(86400)),
		})

	default:
		return &ServerError{Server: c.server, Err: fmt.Errorf("unknown command: %s", command)}
	}
}

// Close implements Conn
func (c *mockConn) Close() error {
	return nil
}

func (c *mockConn) mockAccountInfo(account string) types.AccountInfo {
	d := c.dialer
	return types.AccountInfo{
		AccountData: types.AccountData{
			Account:           account,
			Balance:           fmt.Sprintf("%d", 500_000_000+d.rng.Int63n(2_000_000_000)),
			LedgerEntryType:   "AccountRoot",
			OwnerCount:        uint32(d.rng.Intn(10)),
			PreviousTxnID:     zeroHash,
			PreviousTxnLgrSeq: c.mockLedgerIndex(),
			Sequence:          uint32(d.rng.Intn(1000) + 1),
			Index:             zeroHash,
		},
		LedgerCurrentIndex: c.mockLedgerIndex(),
		Validated:          true,
	}
}

func (c *mockConn) mockAccountLines(account string) types.AccountLines {
	d := c.dialer
	lines := []types.TrustLine{}
	if d.rng.Float64() > 0.3 {
		lines = append(lines, types.TrustLine{
			Account:    "rhub8VRN55s94qWKDv6jmDy1pUykJzF3wq",
			Balance:    fmt.Sprintf("%.2f", 100+d.rng.Float64()*1000),
			Currency:   constants.RLUSDCurrency,
			Limit:      constants.DefaultTrustLimit,
			LimitPeer:  "0",
			Authorized: true,
		})
	}
	return types.AccountLines{
		Account:            account,
		Lines:              lines,
		LedgerCurrentIndex: c.mockLedgerIndex(),
		Validated:          true,
	}
}

const zeroHash = "0000000000000000000000000000000000000000000000000000000000000000"

const hexDigits = "0123456789ABCDEF"

func (c *mockConn) mockHash() string {
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = hexDigits[c.dialer.rng.Intn(len(hexDigits))]
	}
	return string(buf)
}

func (c *mockConn) mockLedgerIndex() uint32 {
	return uint32(80_000_000 + c.dialer.rng.Intn(1_000_000))
}

// assign copies a mock value into the caller's result the same way a real
// connection would: through JSON.
func assign(result, value any) error {
	if result == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, result)
}
