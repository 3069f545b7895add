package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"protect-connect/internal/entity"
	"protect-connect/internal/pkg/apperrors"
	"protect-connect/internal/usecase"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Compile-time check
var _ usecase.EndpointChecker = (*Checker)(nil)

// Checker probes Protect endpoints with a JSON-RPC health request.
type Checker struct {
	client *fasthttp.Client
	logger *zap.Logger
}

// NewChecker creates a new endpoint checker instance.
func NewChecker(timeout time.Duration, logger *zap.Logger) *Checker {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Checker{
		client: &fasthttp.Client{
			ReadTimeout: timeout,
		},
		logger: logger.Named("EndpointChecker"),
	}
}

// checkPayload is the standard JSON-RPC request to check endpoint health.
var checkPayload = []byte(`{"jsonrpc":"2.0","method":"eth_blockNumber","params":[],"id":1}`)

// JSONRPCResponse defines the basic structure for a JSON-RPC response.
type JSONRPCResponse struct {
	ID      interface{}     `json:"id"`
	Jsonrpc string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *JSONRPCError   `json:"error,omitempty"`
}

// JSONRPCError defines the structure for a JSON-RPC error.
type JSONRPCError struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// CheckEndpoint POSTs an eth_blockNumber request to the endpoint and
// validates the JSON-RPC envelope of the response.
func (c *Checker) CheckEndpoint(
	ctx context.Context,
	endpoint entity.EndpointURL,
) (isWorking bool, latency time.Duration, err error) {
	rawURL := endpoint.String()

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(checkPayload)

	startTime := time.Now()

	deadline, hasDeadline := ctx.Deadline()
	timeout := c.client.ReadTimeout
	if hasDeadline {
		requestTimeout := time.Until(deadline)
		if requestTimeout > 0 && (timeout <= 0 || requestTimeout < timeout) {
			timeout = requestTimeout
		}
	}

	var requestErr error
	if timeout <= 0 {
		requestErr = c.client.Do(req, resp)
	} else {
		requestErr = c.client.DoTimeout(req, resp, timeout)
	}

	latency = time.Since(startTime)

	if requestErr != nil {
		if errors.Is(requestErr, fasthttp.ErrTimeout) {
			c.logger.Debug("Endpoint probe timed out",
				zap.String("url", rawURL),
				zap.Duration("timeout", timeout),
				zap.Error(requestErr))
			return false, latency, fmt.Errorf("%w: probe of %s timed out after %v: %v",
				apperrors.ErrTimeout, rawURL, timeout, requestErr)
		}
		c.logger.Debug("Endpoint probe request failed", zap.String("url", rawURL), zap.Error(requestErr))
		return false, latency, fmt.Errorf("%w: probe of %s failed: %v",
			apperrors.ErrExternalServiceFailure, rawURL, requestErr)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Debug("Endpoint probe returned non-OK status",
			zap.String("url", rawURL),
			zap.Int("statusCode", resp.StatusCode()))
		return false, latency, fmt.Errorf("%w: endpoint %s returned non-OK http status: %d",
			apperrors.ErrExternalServiceFailure, rawURL, resp.StatusCode())
	}

	isValid, jsonErr := c.validateJSONRPCResponse(rawURL, resp.Body())
	return isValid, latency, jsonErr
}

// validateJSONRPCResponse checks if the response body is a valid, successful JSON-RPC response.
func (c *Checker) validateJSONRPCResponse(rawURL string, body []byte) (bool, error) {
	var rpcResp JSONRPCResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		c.logger.Debug("Endpoint probe failed to unmarshal JSON response",
			zap.String("url", rawURL),
			zap.ByteString("body", body),
			zap.Error(err))
		return false, fmt.Errorf("%w: endpoint %s returned invalid JSON response: %v",
			apperrors.ErrExternalServiceFailure, rawURL, err)
	}

	if rpcResp.Error != nil {
		c.logger.Debug("Endpoint probe returned JSON-RPC error",
			zap.String("url", rawURL),
			zap.Int("errorCode", rpcResp.Error.Code),
			zap.String("errorMessage", rpcResp.Error.Message))
		return false, fmt.Errorf("%w: endpoint %s returned json-rpc error: %d %s",
			apperrors.ErrExternalServiceFailure, rawURL, rpcResp.Error.Code, rpcResp.Error.Message)
	}

	if rpcResp.Jsonrpc != "2.0" || rpcResp.Result == nil {
		c.logger.Debug("Endpoint probe returned invalid JSON-RPC structure",
			zap.String("url", rawURL),
			zap.ByteString("body", body))
		return false, fmt.Errorf("%w: endpoint %s returned invalid JSON-RPC structure",
			apperrors.ErrExternalServiceFailure, rawURL)
	}

	return true, nil
}
