package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/xoceanhq/xrplend/pkg/constants"
)

// Conn is a single request/response connection to a ledger endpoint.
// Implementations are not required to be safe for concurrent use; the
// service issues one request at a time.
type Conn interface {
	// Request sends a command with params and decodes the result field of
	// the response into result
	Request(ctx context.Context, command string, params map[string]any, result any) error

	// Close releases the connection
	Close() error
}

// Dialer opens connections to ledger endpoints.
type Dialer interface {
	Dial(ctx context.Context, url string) (Conn, error)
}

// WebSocketDialer dials real ledger endpoints over the WebSocket command
// protocol.
type WebSocketDialer struct{}

// NewWebSocketDialer creates a dialer for real ledger endpoints.
func NewWebSocketDialer() *WebSocketDialer {
	return &WebSocketDialer{}
}

// Dial implements Dialer
func (d *WebSocketDialer) Dial(ctx context.Context, url string) (Conn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, constants.DialTimeout)
	defer cancel()

	ws, _, err := websocket.DefaultDialer.DialContext(dialCtx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", url, err)
	}
	return &wsConn{ws: ws, server: url}, nil
}

// wsConn speaks the ledger's command envelope: every request carries an
// id and a command name, every response echoes the id with a status and
// either a result object or an error code.
type wsConn struct {
	ws     *websocket.Conn
	server string
	nextID int
}

type wsResponse struct {
	ID           int             `json:"id"`
	Status       string          `json:"status"`
	Result       json.RawMessage `json:"result"`
	Error        string          `json:"error"`
	ErrorMessage string          `json:"error_message"`
}

// Request implements Conn
func (c *wsConn) Request(ctx context.Context, command string, params map[string]any, result any) error {
	c.nextID++
	req := map[string]any{
		"id":      c.nextID,
		"command": command,
	}
	for k, v := range params {
		req[k] = v
	}

	deadline := time.Now().Add(constants.RequestTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := c.ws.SetWriteDeadline(deadline); err != nil {
		return &ServerError{Server: c.server, Err: err}
	}
	if err := c.ws.WriteJSON(req); err != nil {
		return &ServerError{Server: c.server, Err: err}
	}
	if err := c.ws.SetReadDeadline(deadline); err != nil {
		return &ServerError{Server: c.server, Err: err}
	}

	// Skip unsolicited stream messages until the matching id arrives.
	for {
		var resp wsResponse
		if err := c.ws.ReadJSON(&resp); err != nil {
			return &ServerError{Server: c.server, Err: err}
		}
		if resp.ID != c.nextID {
			continue
		}

		if resp.Status != "success" {
			if isNotFoundCode(resp.Error) {
				return &ServerError{Server: c.server, Err: ErrNotFound}
			}
			msg := resp.ErrorMessage
			if msg == "" {
				msg = resp.Error
			}
			return &ServerError{Server: c.server, Err: fmt.Errorf("%s: %s", command, msg)}
		}

		if result != nil && len(resp.Result) > 0 {
			if err := json.Unmarshal(resp.Result, result); err != nil {
				return &ServerError{Server: c.server, Err: fmt.Errorf("failed to decode %s result: %w", command, err)}
			}
		}
		return nil
	}
}

// Close implements Conn
func (c *wsConn) Close() error {
	return c.ws.Close()
}

func isNotFoundCode(code string) bool {
	switch strings.ToLower(code) {
	case "actnotfound", "txnnotfound", "entrynotfound":
		return true
	}
	return false
}
