package main

import (
	"log"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"protect-connect/internal/adapter/clipboard"
	delivery "protect-connect/internal/adapter/delivery/http"
	handler "protect-connect/internal/adapter/handler/http"
	"protect-connect/internal/adapter/repository"
	"protect-connect/internal/adapter/rpc"
	"protect-connect/internal/adapter/wallet"
	"protect-connect/internal/config"
	applogger "protect-connect/internal/logger"
	"protect-connect/internal/usecase"
)

func main() {
	// --- Configuration ---
	cfgPath := "configs"
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration from %s: %v", cfgPath, err)
	}

	// --- Logger ---
	logger, err := applogger.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logger.Sync() // Ensure logs are flushed before exiting
	logger.Info("Logger initialized", zap.Any("config", cfg.Logger))

	// --- Dependency Injection (Manual) ---
	logger.Info("Initializing dependencies...")

	// Wallet bridge, stores and checker
	bridge := wallet.NewBridge(cfg.Wallet, logger)
	defer bridge.Close()
	prefStore := repository.NewPreferenceStore(cfg.Cache, logger)
	statusCache := repository.NewStatusCache(cfg.Cache, logger)
	checker := rpc.NewChecker(cfg.Checker.GetProbeTimeout(), logger)
	sysClipboard := clipboard.NewSystemClipboard(logger)

	// Use Cases
	connectUseCase := usecase.NewConnectUseCase(
		bridge, bridge, prefStore, sysClipboard, checker, statusCache, logger, *cfg)

	// Handlers
	protectHandler := handler.NewProtectHandler(connectUseCase, logger)

	// --- HTTP Router & Server ---
	logger.Info("Setting up HTTP router...")
	r := router.New()
	delivery.RegisterRoutes(r, protectHandler, logger)

	// Middleware (example: logging)
	loggingMiddleware := func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			logger.Info("Request received",
				zap.ByteString("method", ctx.Method()),
				zap.ByteString("uri", ctx.RequestURI()))
			next(ctx)
		}
	}

	serverAddr := ":" + cfg.Server.Port
	logger.Info("Starting HTTP server", zap.String("address", serverAddr))

	if err := fasthttp.ListenAndServe(serverAddr, loggingMiddleware(r.Handler)); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
