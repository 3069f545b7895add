package http

import (
	"encoding/json"
	"fmt"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"protect-connect/internal/entity"
	"protect-connect/internal/usecase"
)

type ProtectHandler struct {
	useCase usecase.ConnectUseCase
	logger  *zap.Logger
}

func NewProtectHandler(uc usecase.ConnectUseCase, logger *zap.Logger) *ProtectHandler {
	return &ProtectHandler{
		useCase: uc,
		logger:  logger.Named("ProtectHandler"),
	}
}

// endpointResponse is the JSON body returned for endpoint lookups.
type endpointResponse struct {
	ChainID   entity.ChainID     `json:"chainId"`
	ChainName string             `json:"chainName"`
	RPCURL    entity.EndpointURL `json:"rpcUrl"`
}

// connectRequest is the JSON body accepted by the connect route.
type connectRequest struct {
	ChainID  entity.ChainID         `json:"chainId"`
	Hints    entity.HintPreferences `json:"hints"`
	Fast     bool                   `json:"fast"`
	Builders []string               `json:"builders"`
}

// GetEndpoint builds and returns the Protect endpoint URL for the
// query-supplied chain id and preferences.
func (h *ProtectHandler) GetEndpoint(ctx *fasthttp.RequestCtx) {
	chain, hints, sel, err := parseQuery(ctx)
	if err != nil {
		h.logger.Warn("Invalid endpoint query", zap.Error(err))
		ctx.Error("Bad Request: "+err.Error(), fasthttp.StatusBadRequest)
		return
	}

	endpoint := h.useCase.Endpoint(chain, hints, sel)

	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(endpointResponse{
		ChainID:   chain,
		ChainName: chain.Name(),
		RPCURL:    endpoint,
	}); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

// Connect triggers the wallet connection sequence. The sequence reports
// nothing back on failure, so the route always accepts the trigger.
func (h *ProtectHandler) Connect(ctx *fasthttp.RequestCtx) {
	var req connectRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.logger.Warn("Invalid connect request body", zap.Error(err))
		ctx.Error("Bad Request: invalid JSON body", fasthttp.StatusBadRequest)
		return
	}
	if req.ChainID == "" {
		req.ChainID = entity.ChainMainnet
	}

	h.useCase.Connect(ctx, req.ChainID, req.Hints, entity.BuilderSelection{
		Fast:     req.Fast,
		Builders: req.Builders,
	})

	ctx.SetStatusCode(fasthttp.StatusAccepted)
}

// CopyEndpoint writes the built endpoint URL to the system clipboard.
func (h *ProtectHandler) CopyEndpoint(ctx *fasthttp.RequestCtx) {
	chain, hints, sel, err := parseQuery(ctx)
	if err != nil {
		h.logger.Warn("Invalid copy query", zap.Error(err))
		ctx.Error("Bad Request: "+err.Error(), fasthttp.StatusBadRequest)
		return
	}

	h.useCase.CopyEndpoint(chain, hints, sel)
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

// GetEndpointStatus reports reachability of the built endpoint.
func (h *ProtectHandler) GetEndpointStatus(ctx *fasthttp.RequestCtx) {
	chain, hints, sel, err := parseQuery(ctx)
	if err != nil {
		h.logger.Warn("Invalid status query", zap.Error(err))
		ctx.Error("Bad Request: "+err.Error(), fasthttp.StatusBadRequest)
		return
	}

	status := h.useCase.EndpointStatus(ctx, chain, hints, sel)

	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(status); err != nil {
		h.logger.Error("Failed to encode status response", zap.Error(err))
	}
}

// parseQuery reads the chain id and preferences from query arguments.
// Hints arrive as repeated hint=<snake_case-name> parameters, builders as
// repeated builder=<name> parameters, mirroring the produced URL shape.
func parseQuery(ctx *fasthttp.RequestCtx) (entity.ChainID, entity.HintPreferences, entity.BuilderSelection, error) {
	args := ctx.QueryArgs()

	chain := entity.ChainID(args.Peek("chainId"))
	if chain == "" {
		chain = entity.ChainMainnet
	}

	var hints entity.HintPreferences
	for _, raw := range args.PeekMulti("hint") {
		switch string(raw) {
		case "calldata":
			hints.Calldata = true
		case "contract_address":
			hints.ContractAddress = true
		case "function_selector":
			hints.FunctionSelector = true
		case "logs":
			hints.Logs = true
		case "default_logs":
			hints.DefaultLogs = true
		case "hash":
			hints.Hash = true
		default:
			return "", entity.HintPreferences{}, entity.BuilderSelection{},
				fmt.Errorf("unknown hint %q", raw)
		}
	}

	sel := entity.BuilderSelection{
		Fast: args.GetBool("fast"),
	}
	for _, raw := range args.PeekMulti("builder") {
		sel.Builders = append(sel.Builders, string(raw))
	}

	return chain, hints, sel, nil
}
