// Package bootstrap owns the service lifecycle: configuration, logging,
// storage, store factories, the auth service, and the HTTP and gRPC servers
// under one errgroup with graceful shutdown.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	domainauth "github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/banstore"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/twofa"
	"github.com/GuillemIscla/live-bootcamp-project/internal/domain/auth/userstore"
	platformconfig "github.com/GuillemIscla/live-bootcamp-project/internal/platform/config"
	platformerrors "github.com/GuillemIscla/live-bootcamp-project/internal/platform/errors"
	platformlogging "github.com/GuillemIscla/live-bootcamp-project/internal/platform/logging"
	platformstorage "github.com/GuillemIscla/live-bootcamp-project/internal/platform/storage"
	grpctransport "github.com/GuillemIscla/live-bootcamp-project/internal/transport/grpc"
	httptransport "github.com/GuillemIscla/live-bootcamp-project/internal/transport/http"
	"github.com/GuillemIscla/live-bootcamp-project/internal/transport/http/authapi"
)

type stepFn func(context.Context, *appState) error

type initStep struct {
	ID        string
	Title     string
	DependsOn []string
	Kind      platformerrors.Kind
	Execute   stepFn
}

type appState struct {
	config     *platformconfig.Config
	configPath string
	logger     *platformlogging.Logger

	db     *gorm.DB
	users  userstore.Store
	banned banstore.Store
	codes  twofa.Store

	authService *domainauth.Service
}

// Run drives the whole service lifecycle: init steps, serving, and graceful
// shutdown on SIGINT/SIGTERM.
func Run(ctx context.Context) error {
	state := &appState{}

	steps := InitGraph()
	if err := executeInitSteps(ctx, steps, state); err != nil {
		return err
	}

	config := state.config
	logger := state.logger
	if config == nil || logger == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"bootstrap state validation",
			"config/logger not initialised",
		)
	}
	if state.authService == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"bootstrap state validation",
			"auth service not initialised",
		)
	}

	defer func() {
		_ = logger.Sync()
	}()
	defer closeStores(state, logger)

	logBootstrapGraph(steps, logger)

	rootCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCtx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(rootCtx)

	if err := startServices(state, group, groupCtx); err != nil {
		cancel()
		return err
	}

	if err := waitForShutdown(signalCtx, cancel, logger, group); err != nil {
		return err
	}

	logger.Info("all services stopped cleanly")
	return nil
}

func closeStores(state *appState, logger *platformlogging.Logger) {
	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if state.codes != nil {
		if err := state.codes.Close(closeCtx); err != nil {
			logger.Warn("2FA code store close failed: %v", err)
		}
	}
	if state.banned != nil {
		if err := state.banned.Close(closeCtx); err != nil {
			logger.Warn("banned token store close failed: %v", err)
		}
	}
	if state.users != nil {
		if err := state.users.Close(closeCtx); err != nil {
			logger.Warn("user store close failed: %v", err)
		}
	}
}

func logBootstrapGraph(steps []initStep, logger *platformlogging.Logger) {
	logger.Info("initialisation order:")
	for _, step := range steps {
		logger.Info("  %s (%s)", step.ID, step.Title)
	}
}

func executeInitSteps(ctx context.Context, steps []initStep, state *appState) error {
	if state == nil {
		return platformerrors.New(
			platformerrors.KindBootstrap,
			"execute init steps",
			"nil bootstrap state",
		)
	}

	completed := make(map[string]struct{}, len(steps))
	for _, step := range steps {
		for _, dep := range step.DependsOn {
			if _, ok := completed[dep]; !ok {
				return platformerrors.New(
					platformerrors.KindBootstrap,
					step.ID,
					fmt.Sprintf("dependency %s not satisfied", dep),
				)
			}
		}
		if step.Execute == nil {
			return platformerrors.New(
				platformerrors.KindBootstrap,
				step.ID,
				"missing execute function",
			)
		}
		if err := step.Execute(ctx, state); err != nil {
			var typed *platformerrors.Error
			if errors.As(err, &typed) {
				return err
			}

			kind := step.Kind
			if kind == "" {
				kind = platformerrors.KindBootstrap
			}
			return platformerrors.Wrap(kind, step.ID, "bootstrap step failed", err)
		}
		completed[step.ID] = struct{}{}
	}
	return nil
}

// InitGraph declares the init steps in dependency order.
func InitGraph() []initStep {
	return []initStep{
		{
			ID:      "config:load",
			Title:   "Load configuration",
			Kind:    platformerrors.KindConfig,
			Execute: loadConfigStep,
		},
		{
			ID:        "logging:init",
			Title:     "Initialise logging",
			DependsOn: []string{"config:load"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initLoggingStep,
		},
		{
			ID:        "storage:init-database",
			Title:     "Open and migrate the relational database",
			DependsOn: []string{"config:load", "logging:init"},
			Kind:      platformerrors.KindStorage,
			Execute:   initDatabaseStep,
		},
		{
			ID:        "stores:init",
			Title:     "Construct store backends",
			DependsOn: []string{"storage:init-database"},
			Kind:      platformerrors.KindStorage,
			Execute:   initStoresStep,
		},
		{
			ID:        "auth:init-service",
			Title:     "Wire the auth service",
			DependsOn: []string{"stores:init"},
			Kind:      platformerrors.KindBootstrap,
			Execute:   initAuthServiceStep,
		},
	}
}

func loadConfigStep(_ context.Context, state *appState) error {
	result, err := platformconfig.NewLoader().WithDotEnv(true).Load()
	if err != nil {
		return err
	}
	state.config = result.Config
	state.configPath = result.Path
	return nil
}

func initLoggingStep(_ context.Context, state *appState) error {
	logger, err := platformlogging.New(platformlogging.Config{
		Level:  state.config.Log.Level,
		Format: state.config.Log.Format,
		Output: state.config.Log.Output,
	})
	if err != nil {
		return err
	}
	state.logger = logger
	logger.Info("configuration loaded from %s", state.configPath)
	return nil
}

func initDatabaseStep(_ context.Context, state *appState) error {
	if state.config.Stores.Users.Driver != userstore.DriverSQLite {
		return nil
	}

	db, err := platformstorage.Open(state.config.Stores.Users.DSN)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindStorage, "storage:init-database", "open database", err)
	}
	state.db = db
	state.logger.Info("database ready at %s", state.config.Stores.Users.DSN)
	return nil
}

func initStoresStep(_ context.Context, state *appState) error {
	cfg := state.config

	hasher := domainauth.NewArgonHasher(domainauth.HasherParams{
		Time:    cfg.Auth.Argon2.Time,
		Memory:  cfg.Auth.Argon2.Memory,
		Threads: cfg.Auth.Argon2.Threads,
	})

	users, err := userstore.New(
		userstore.Config{Driver: cfg.Stores.Users.Driver},
		userstore.Dependencies{DB: state.db, Hasher: hasher},
	)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindStorage, "stores:init", "user store", err)
	}
	state.users = users

	banned, err := banstore.New(banstore.Config{
		Driver: cfg.Stores.BannedTokens.Driver,
		TTL:    cfg.Auth.TokenTTL,
		Redis:  redisOptions(cfg.Stores.BannedTokens),
	})
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindStorage, "stores:init", "banned token store", err)
	}
	state.banned = banned

	codes, err := twofa.New(twofa.Config{
		Driver: cfg.Stores.TwoFACodes.Driver,
		TTL:    cfg.Auth.TwoFATTL,
		Redis:  twoFARedisOptions(cfg.Stores.TwoFACodes),
	})
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindStorage, "stores:init", "2FA code store", err)
	}
	state.codes = codes
	return nil
}

func redisOptions(cfg platformconfig.KeyValueStoreConfig) *banstore.RedisConfig {
	if cfg.Driver != banstore.DriverRedis {
		return nil
	}
	return &banstore.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	}
}

func twoFARedisOptions(cfg platformconfig.KeyValueStoreConfig) *twofa.RedisConfig {
	if cfg.Driver != twofa.DriverRedis {
		return nil
	}
	return &twofa.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		Prefix:   cfg.Redis.Prefix,
	}
}

func initAuthServiceStep(_ context.Context, state *appState) error {
	cfg := state.config

	tokens, err := domainauth.NewTokenService(domainauth.TokenConfig{
		Secret:       cfg.Auth.JWTSecret,
		TTL:          cfg.Auth.TokenTTL,
		CookieName:   cfg.Auth.CookieName,
		CookieDomain: cfg.Auth.CookieDomain,
	}, state.banned)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindBootstrap, "auth:init-service", "token service", err)
	}

	service, err := domainauth.NewService(domainauth.Options{
		Users:    state.users,
		Codes:    state.codes,
		Tokens:   tokens,
		Notifier: domainauth.NewLogNotifier(state.logger.Named("notifier")),
		Logger:   state.logger.Named("auth"),
	})
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindBootstrap, "auth:init-service", "auth service", err)
	}
	state.authService = service
	return nil
}

func startServices(state *appState, g *errgroup.Group, groupCtx context.Context) error {
	if err := startHTTPServer(state, g, groupCtx); err != nil {
		return err
	}

	grpcServer, err := grpctransport.NewServer(
		state.config.Server.GRPCAddress,
		state.authService,
		state.logger.Named("grpc"),
	)
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindTransport, "grpc:new-server", "build gRPC server", err)
	}
	g.Go(func() error {
		return grpcServer.Run(groupCtx)
	})
	return nil
}

func startHTTPServer(state *appState, g *errgroup.Group, groupCtx context.Context) error {
	logger := state.logger

	router, err := httptransport.Build(httptransport.Options{
		Logger:   logger.Named("http"),
		LogLevel: state.config.Log.Level,
	})
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindTransport, "http:build-router", "build router", err)
	}

	apiService, err := authapi.NewService(state.authService, logger.Named("authapi"))
	if err != nil {
		return platformerrors.Wrap(platformerrors.KindTransport, "authapi:new-service", "build auth API", err)
	}
	apiService.Register(router.API)

	httpServer := &http.Server{
		Addr:    state.config.Server.HTTPAddress,
		Handler: router.Engine,
	}

	g.Go(func() error {
		logger.Info("HTTP server listening on %s", httpServer.Addr)

		go func() {
			<-groupCtx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logger.Error("HTTP server shutdown failed: %v", err)
			} else {
				logger.Info("HTTP server stopped")
			}
		}()

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed: %v", err)
			return err
		}
		return nil
	})
	return nil
}

func waitForShutdown(
	ctx context.Context,
	cancel context.CancelFunc,
	logger *platformlogging.Logger,
	g *errgroup.Group,
) error {
	<-ctx.Done()
	logger.Info("shutdown signal received: %v", context.Cause(ctx))

	cancel()

	done := make(chan error, 1)
	go func() {
		done <- g.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			logger.Error("error during shutdown: %v", err)
			return err
		}
	case <-time.After(15 * time.Second):
		logger.Error("shutdown timed out")
		return errors.New("shutdown timed out")
	}
	return nil
}
