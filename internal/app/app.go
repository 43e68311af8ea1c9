package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mnestswap/internal/adapters/cache"
	"mnestswap/internal/adapters/httpclient"
	"mnestswap/internal/api"
	"mnestswap/internal/config"
	httpserver "mnestswap/internal/platform/http"
	"mnestswap/internal/swap"
	"mnestswap/internal/swap/handler"
	"mnestswap/internal/wallet"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// SetupLogger points logrus at stdout with the configured level, falling back to info.
func SetupLogger(level string) {
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
}

// NewConverter builds the converter the config asks for.
func NewConverter(cfg config.Swap) *swap.Converter {
	return swap.NewConverter(swap.WithPrecision(cfg.Precision), swap.WithStrict(cfg.Strict))
}

// Components is everything Run wires before serving.
type Components struct {
	Router    *chi.Mux
	Scheduler *wallet.Scheduler
	Sessions  *cache.RistrettoSessionCache
}

func Build(appCfg *config.AppConfig) (*Components, error) {
	// Session store
	sessions, err := cache.NewSessionCache(appCfg.Session.MaxItems, appCfg.Session.TTL())
	if err != nil {
		return nil, err
	}

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	manifestClient := httpclient.NewManifestClient(&http.Client{Timeout: httpTimeout})

	// Services
	swapService := swap.NewService(NewConverter(appCfg.Swap), appCfg.Swap.Account(), sessions)
	tonConnect := wallet.NewTonConnect(
		wallet.Mount{ElementID: appCfg.Wallet.MountID, ManifestURL: appCfg.Wallet.ManifestURL},
		sessions,
		manifestClient,
	)
	scheduler := wallet.NewScheduler(tonConnect, time.Duration(appCfg.Wallet.CheckIntervalSeconds)*time.Second)

	// Handlers and router
	swapHandler := handler.NewSwapHandler(swapService, tonConnect)
	return &Components{
		Router:    api.NewRouter(swapHandler),
		Scheduler: scheduler,
		Sessions:  sessions,
	}, nil
}

// Run wires the application components, starts HTTP server and scheduler
func Run(configFile string) error {
	appCfg, err := config.Init(configFile)
	if err != nil {
		return err
	}
	SetupLogger(appCfg.Logging.Level)
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, err := Build(appCfg)
	if err != nil {
		logrus.WithError(err).Error("Failed to build application")
		return err
	}
	defer components.Sessions.Close()
	logrus.WithFields(logrus.Fields{
		"exchange_rate": appCfg.Swap.ExchangeRate,
		"strict":        appCfg.Swap.Strict,
	}).Info("✅ Swap service ready")

	// Ensure scheduler stops before sessions close
	defer func() {
		if shutDownErr := components.Scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	if startErr := components.Scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Wallet manifest scheduler activation successful")

	logrus.Info("Starting http server")
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, components.Router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
