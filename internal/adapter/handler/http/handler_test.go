package http

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"protect-connect/internal/entity"
)

type recordedConnect struct {
	chain entity.ChainID
	hints entity.HintPreferences
	sel   entity.BuilderSelection
}

type stubUseCase struct {
	connects []recordedConnect
	copies   []entity.EndpointURL
	status   entity.EndpointStatus
}

func (s *stubUseCase) Endpoint(chain entity.ChainID, hints entity.HintPreferences, sel entity.BuilderSelection) entity.EndpointURL {
	return entity.BuildEndpointURL(chain, hints, sel)
}

func (s *stubUseCase) Connect(_ context.Context, chain entity.ChainID, hints entity.HintPreferences, sel entity.BuilderSelection) {
	s.connects = append(s.connects, recordedConnect{chain: chain, hints: hints, sel: sel})
}

func (s *stubUseCase) CopyEndpoint(chain entity.ChainID, hints entity.HintPreferences, sel entity.BuilderSelection) {
	s.copies = append(s.copies, entity.BuildEndpointURL(chain, hints, sel))
}

func (s *stubUseCase) EndpointStatus(_ context.Context, chain entity.ChainID, hints entity.HintPreferences, sel entity.BuilderSelection) entity.EndpointStatus {
	status := s.status
	status.Endpoint = entity.BuildEndpointURL(chain, hints, sel)
	return status
}

func doRequest(t *testing.T, handler fasthttp.RequestHandler, method, uri string, body []byte) *fasthttp.RequestCtx {
	t.Helper()

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	handler(ctx)
	return ctx
}

func TestGetEndpoint(t *testing.T) {
	uc := &stubUseCase{}
	h := NewProtectHandler(uc, zap.NewNop())

	ctx := doRequest(t, h.GetEndpoint, fasthttp.MethodGet,
		"/endpoint?chainId=0x5&hint=calldata&hint=logs", nil)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var resp endpointResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, entity.ChainGoerli, resp.ChainID)
	assert.Equal(t, "Goerli", resp.ChainName)
	assert.Equal(t,
		"https://rpc-goerli.flashbots.net/?hint=calldata&hint=logs",
		resp.RPCURL.String())
}

func TestGetEndpoint_DefaultsToMainnet(t *testing.T) {
	h := NewProtectHandler(&stubUseCase{}, zap.NewNop())

	ctx := doRequest(t, h.GetEndpoint, fasthttp.MethodGet, "/endpoint", nil)

	var resp endpointResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, entity.ChainMainnet, resp.ChainID)
	assert.Equal(t, "https://rpc.flashbots.net/", resp.RPCURL.String())
}

func TestGetEndpoint_FastAndBuilders(t *testing.T) {
	h := NewProtectHandler(&stubUseCase{}, zap.NewNop())

	ctx := doRequest(t, h.GetEndpoint, fasthttp.MethodGet,
		"/endpoint?fast=true&builder=Flashbots", nil)

	var resp endpointResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &resp))
	assert.Equal(t, "https://rpc.flashbots.net/fast", resp.RPCURL.String())
}

func TestGetEndpoint_UnknownHintRejected(t *testing.T) {
	h := NewProtectHandler(&stubUseCase{}, zap.NewNop())

	ctx := doRequest(t, h.GetEndpoint, fasthttp.MethodGet, "/endpoint?hint=bogus", nil)

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestConnect(t *testing.T) {
	uc := &stubUseCase{}
	h := NewProtectHandler(uc, zap.NewNop())

	body := []byte(`{"chainId":"0xaa36a7","hints":{"logs":true},"builders":["Titan","rsync"]}`)
	ctx := doRequest(t, h.Connect, fasthttp.MethodPost, "/connect", body)

	assert.Equal(t, fasthttp.StatusAccepted, ctx.Response.StatusCode())
	require.Len(t, uc.connects, 1)
	assert.Equal(t, entity.ChainSepolia, uc.connects[0].chain)
	assert.True(t, uc.connects[0].hints.Logs)
	assert.Equal(t, []string{"Titan", "rsync"}, uc.connects[0].sel.Builders)
	assert.False(t, uc.connects[0].sel.Fast)
}

func TestConnect_EmptyChainDefaultsToMainnet(t *testing.T) {
	uc := &stubUseCase{}
	h := NewProtectHandler(uc, zap.NewNop())

	ctx := doRequest(t, h.Connect, fasthttp.MethodPost, "/connect", []byte(`{}`))

	assert.Equal(t, fasthttp.StatusAccepted, ctx.Response.StatusCode())
	require.Len(t, uc.connects, 1)
	assert.Equal(t, entity.ChainMainnet, uc.connects[0].chain)
}

func TestConnect_InvalidBodyRejected(t *testing.T) {
	uc := &stubUseCase{}
	h := NewProtectHandler(uc, zap.NewNop())

	ctx := doRequest(t, h.Connect, fasthttp.MethodPost, "/connect", []byte(`{not json`))

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Empty(t, uc.connects)
}

func TestCopyEndpoint(t *testing.T) {
	uc := &stubUseCase{}
	h := NewProtectHandler(uc, zap.NewNop())

	ctx := doRequest(t, h.CopyEndpoint, fasthttp.MethodPost,
		"/endpoint/copy?chainId=0x5&hint=hash", nil)

	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
	require.Len(t, uc.copies, 1)
	assert.Equal(t, "https://rpc-goerli.flashbots.net/?hint=hash", uc.copies[0].String())
}

func TestGetEndpointStatus(t *testing.T) {
	uc := &stubUseCase{status: entity.EndpointStatus{Reachable: true, LatencyMs: 12}}
	h := NewProtectHandler(uc, zap.NewNop())

	ctx := doRequest(t, h.GetEndpointStatus, fasthttp.MethodGet, "/endpoint/status?chainId=0x1", nil)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var status entity.EndpointStatus
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &status))
	assert.True(t, status.Reachable)
	assert.Equal(t, int64(12), status.LatencyMs)
	assert.Equal(t, "https://rpc.flashbots.net/", status.Endpoint.String())
}
