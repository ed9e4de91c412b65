package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"golang.org/x/sync/errgroup"

	grpcapi "library-backend/internal/api/grpc"
	httpapi "library-backend/internal/api/http"
	"library-backend/internal/config"
	"library-backend/internal/jobs"
	"library-backend/internal/logger"
	"library-backend/internal/repository/postgres"
	"library-backend/internal/scheduler"
	"library-backend/internal/service"
)

const healthProbeInterval = 10 * time.Second

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Library Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "health_address", cfg.GetHealthAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Database
	db, err := postgres.Open(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Error("Failed to migrate database", "error", err)
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	loc := cfg.Location()
	bookSvc := service.NewBookService(store)
	customerSvc := service.NewCustomerService(store)
	loanSvc := service.NewLoanService(store, func() time.Time { return time.Now().In(loc) })

	// Set up HTTP server
	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      httpapi.NewRouter(bookSvc, customerSvc, loanSvc, store),
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Set up gRPC health probe
	var health *grpcapi.HealthServer
	if cfg.Server.HealthPort != 0 {
		lis, err := net.Listen("tcp", cfg.GetHealthAddress())
		if err != nil {
			logger.Error("Failed to listen", "error", err, "address", cfg.GetHealthAddress())
			log.Fatalf("Failed to listen: %v", err)
		}
		health = grpcapi.NewHealthServer(store, healthProbeInterval)
		g.Go(func() error {
			return health.Serve(lis)
		})
		g.Go(func() error {
			health.Monitor(gctx)
			return nil
		})
	}

	// Set up scheduler
	var cronScheduler *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		cronScheduler, err = scheduler.NewScheduler(jobs.NewJobRunner(loanSvc, cfg))
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		cronScheduler.Start()
	}

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()

		if cronScheduler != nil {
			cronScheduler.Stop()
		}
		if health != nil {
			health.Stop()
		}
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
