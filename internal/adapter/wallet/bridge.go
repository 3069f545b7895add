package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"protect-connect/internal/config"
	"protect-connect/internal/pkg/apperrors"
	"protect-connect/internal/usecase"
)

// Compile-time checks
var (
	_ usecase.WalletConnector = (*Bridge)(nil)
	_ usecase.WalletProvider  = (*Bridge)(nil)
)

// rpcRequest is the JSON-RPC envelope sent to the wallet bridge.
type rpcRequest struct {
	Jsonrpc string      `json:"jsonrpc"`
	ID      uint64      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

// rpcResponse is the JSON-RPC envelope received from the wallet bridge.
type rpcResponse struct {
	Jsonrpc string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("wallet error %d: %s", e.Code, e.Message)
}

// Bridge reaches the user's wallet extension over a websocket JSON-RPC
// session. Connect dials the bridge and performs the user-mediated wallet
// connection; Request issues arbitrary wallet RPC calls on the established
// session. Calls are serialized: the wallet prompts the user one request at
// a time anyway.
type Bridge struct {
	cfg    config.WalletConfig
	dialer websocket.Dialer
	logger *zap.Logger

	mu     sync.Mutex
	conn   *websocket.Conn
	nextID uint64
}

// NewBridge creates a wallet bridge for the configured websocket URL. No
// connection is made until Connect is called.
func NewBridge(cfg config.WalletConfig, logger *zap.Logger) *Bridge {
	handshakeTimeout := cfg.HandshakeTimeout
	if handshakeTimeout <= 0 {
		handshakeTimeout = 10 * time.Second
	}

	return &Bridge{
		cfg: cfg,
		dialer: websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		logger: logger.Named("WalletBridge"),
	}
}

// Connect dials the wallet bridge and waits for the extension to accept the
// connection. Suspends until the wallet responds or the user dismisses the
// prompt. Reconnecting over an existing session replaces it.
func (b *Bridge) Connect(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn != nil {
		_ = b.conn.Close()
		b.conn = nil
	}

	b.logger.Debug("Dialing wallet bridge", zap.String("url", b.cfg.BridgeURL))

	conn, _, err := b.dialer.DialContext(ctx, b.cfg.BridgeURL, nil)
	if err != nil {
		return fmt.Errorf("%w: wallet bridge dial to %s failed: %v",
			apperrors.ErrExternalServiceFailure, b.cfg.BridgeURL, err)
	}
	b.conn = conn

	// The extension side treats wallet_connect as the user-facing
	// connection prompt; the call blocks until accepted or dismissed.
	if _, err := b.doLocked(ctx, "wallet_connect", nil); err != nil {
		_ = b.conn.Close()
		b.conn = nil
		return err
	}

	b.logger.Info("Wallet bridge connected", zap.String("url", b.cfg.BridgeURL))
	return nil
}

// Request issues a single JSON-RPC call over the established session.
func (b *Bridge) Request(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil {
		return nil, apperrors.ErrNotConnected
	}

	return b.doLocked(ctx, method, params)
}

// doLocked performs one request/response exchange. Caller must hold b.mu.
func (b *Bridge) doLocked(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	b.nextID++
	req := rpcRequest{
		Jsonrpc: "2.0",
		ID:      b.nextID,
		Method:  method,
		Params:  params,
	}

	timeout := b.cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	_ = b.conn.SetWriteDeadline(deadline)
	_ = b.conn.SetReadDeadline(deadline)

	if err := b.conn.WriteJSON(req); err != nil {
		b.logger.Debug("Wallet bridge write failed",
			zap.String("method", method), zap.Error(err))
		return nil, fmt.Errorf("%w: wallet bridge write failed: %v",
			apperrors.ErrExternalServiceFailure, err)
	}

	// Responses arrive in order for a serialized session, but notifications
	// and stale replies are skipped until the matching id shows up.
	for {
		var resp rpcResponse
		if err := b.conn.ReadJSON(&resp); err != nil {
			b.logger.Debug("Wallet bridge read failed",
				zap.String("method", method), zap.Error(err))
			return nil, fmt.Errorf("%w: wallet bridge read failed: %v",
				apperrors.ErrExternalServiceFailure, err)
		}
		if resp.ID != req.ID {
			b.logger.Debug("Skipping non-matching bridge message",
				zap.Uint64("wantId", req.ID), zap.Uint64("gotId", resp.ID))
			continue
		}
		if resp.Error != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrWalletRejected, resp.Error)
		}
		return resp.Result, nil
	}
}

// Close tears down the bridge session if one exists.
func (b *Bridge) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	return err
}
