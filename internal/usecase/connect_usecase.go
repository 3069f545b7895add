package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"protect-connect/internal/config"
	"protect-connect/internal/entity"
)

// Compile-time check to ensure connectUseCase implements ConnectUseCase
var _ ConnectUseCase = (*connectUseCase)(nil)

type connectUseCase struct {
	connector   WalletConnector
	provider    WalletProvider
	prefs       PreferenceStore
	clipboard   Clipboard
	checker     EndpointChecker
	statusCache StatusCache
	logger      *zap.Logger
	cfg         config.Config
}

func NewConnectUseCase(
	connector WalletConnector,
	provider WalletProvider,
	prefs PreferenceStore,
	clipboard Clipboard,
	checker EndpointChecker,
	statusCache StatusCache,
	logger *zap.Logger,
	cfg config.Config,
) ConnectUseCase {
	return &connectUseCase{
		connector:   connector,
		provider:    provider,
		prefs:       prefs,
		clipboard:   clipboard,
		checker:     checker,
		statusCache: statusCache,
		logger:      logger.Named("ConnectUseCase"),
		cfg:         cfg,
	}
}

func (uc *connectUseCase) Endpoint(
	chain entity.ChainID,
	hints entity.HintPreferences,
	sel entity.BuilderSelection,
) entity.EndpointURL {
	return entity.BuildEndpointURL(chain, hints, sel)
}

// Connect sequences the connection attempt: precondition check, wallet
// connect, preference reset, add-network request. The sequence has a single
// path with no retries, and no error is returned to the caller.
func (uc *connectUseCase) Connect(
	ctx context.Context,
	chain entity.ChainID,
	hints entity.HintPreferences,
	sel entity.BuilderSelection,
) {
	if uc.connector == nil || uc.provider == nil {
		uc.logger.Error("provider not found")
		return
	}

	endpoint := entity.BuildEndpointURL(chain, hints, sel)
	uc.logger.Debug("Starting connection sequence",
		zap.String("chainId", string(chain)),
		zap.String("endpoint", endpoint.String()))

	if err := uc.connector.Connect(ctx); err != nil {
		uc.logger.Error("Wallet connection failed", zap.Error(err))
		return
	}

	// Cleared unconditionally so a later attempt does not skip the
	// extension/mobile selection prompt.
	uc.prefs.Delete(ctx, ProviderTypeKey)

	params := entity.ProtectChainParams(chain, endpoint)
	_, err := uc.provider.Request(ctx, MethodAddEthereumChain, []entity.AddChainParams{params})
	if err != nil {
		// User declines and extension errors land here. Logged and
		// swallowed: no retry, no rollback, no user-facing error.
		uc.logger.Error("Add network request rejected",
			zap.String("chainId", string(chain)), zap.Error(err))
		return
	}

	uc.logger.Info("Protect network registered with wallet",
		zap.String("chainId", string(chain)),
		zap.String("chainName", params.ChainName))
}

func (uc *connectUseCase) CopyEndpoint(
	chain entity.ChainID,
	hints entity.HintPreferences,
	sel entity.BuilderSelection,
) {
	endpoint := entity.BuildEndpointURL(chain, hints, sel)
	if err := uc.clipboard.WriteText(endpoint.String()); err != nil {
		uc.logger.Debug("Clipboard write failed", zap.Error(err))
	}
}

func (uc *connectUseCase) EndpointStatus(
	ctx context.Context,
	chain entity.ChainID,
	hints entity.HintPreferences,
	sel entity.BuilderSelection,
) entity.EndpointStatus {
	endpoint := entity.BuildEndpointURL(chain, hints, sel)

	cached, found, err := uc.statusCache.GetStatus(ctx, endpoint)
	if err != nil {
		uc.logger.Warn("Status cache error", zap.Error(err))
	}
	if found {
		uc.logger.Debug("Status cache hit", zap.String("endpoint", endpoint.String()))
		return cached
	}

	reachable, latency, err := uc.checker.CheckEndpoint(ctx, endpoint)
	if err != nil {
		uc.logger.Debug("Endpoint probe failed",
			zap.String("endpoint", endpoint.String()), zap.Error(err))
	}

	status := entity.EndpointStatus{
		Endpoint:  endpoint,
		Reachable: reachable,
		LatencyMs: latency.Milliseconds(),
		CheckedAt: time.Now().UTC(),
	}

	if err := uc.statusCache.SetStatus(ctx, endpoint, status, uc.cfg.Checker.GetStatusTTL()); err != nil {
		uc.logger.Error("Failed to cache endpoint status",
			zap.String("endpoint", endpoint.String()), zap.Error(err))
	}

	return status
}
