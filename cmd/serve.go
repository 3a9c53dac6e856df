package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nutrilog/config"
	"nutrilog/controllers"
	"nutrilog/metrics"
	"nutrilog/repositories"
	"nutrilog/routes"
	"nutrilog/services"
	"nutrilog/utils"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

type stores struct {
	products repositories.ProductRepository
	users    repositories.UserRepository
	eaten    repositories.EatenProductRepository
	close    func() error
}

func openStores(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*stores, error) {
	if cfg.Store == config.StoreMemory {
		return openMemoryStores(cfg, logger)
	}

	db, err := config.InitDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}
	return &stores{
		products: repositories.NewGormProductRepository(db),
		users:    repositories.NewGormUserRepository(db),
		eaten:    repositories.NewGormEatenProductRepository(db),
		close:    func() error { return config.CloseDB(db) },
	}, nil
}

func openMemoryStores(cfg *config.Config, logger *zap.Logger) (*stores, error) {
	seed, err := config.LoadSeed(cfg.SeedFile)
	if err != nil {
		return nil, err
	}
	products, err := seed.CatalogProducts()
	if err != nil {
		return nil, err
	}
	users, err := seed.AccountUsers()
	if err != nil {
		return nil, err
	}

	logger.Warn("using in-memory store; data is lost on restart",
		zap.String("seed", cfg.SeedFile),
		zap.Int("products", len(products)),
		zap.Int("users", len(users)))

	return &stores{
		products: repositories.NewMemoryProductRepository(products...),
		users:    repositories.NewMemoryUserRepository(users...),
		eaten:    repositories.NewMemoryEatenProductRepository(),
		close:    func() error { return nil },
	}, nil
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := utils.RegisterValidators(); err != nil {
		return err
	}

	policy, err := config.LoadNormPolicy(cfg.NormPolicyFile)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	productSvc := services.NewProductService(st.products, logger)
	calorieSvc := services.NewCalorieService(productSvc, st.users, policy, m, logger)
	eatenSvc := services.NewEatenProductService(productSvc, st.eaten, st.users, cfg.Location, m, logger)

	router := routes.SetupRouter(routes.Dependencies{
		Products:    controllers.NewProductController(productSvc),
		Users:       controllers.NewUserController(calorieSvc),
		Eaten:       controllers.NewEatenProductController(eatenSvc),
		UserRepo:    st.users,
		JWTSecret:   []byte(cfg.JWTSecret),
		Logger:      logger,
		Metrics:     m,
		Gatherer:    reg,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: router}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("store", cfg.Store))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
