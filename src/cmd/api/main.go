package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/corebank-client/src/internal/adapter/http/client"
	"github.com/api-sage/corebank-client/src/internal/adapter/http/controller"
	"github.com/api-sage/corebank-client/src/internal/adapter/http/middleware"
	"github.com/api-sage/corebank-client/src/internal/adapter/http/router"
	"github.com/api-sage/corebank-client/src/internal/config"
	"github.com/api-sage/corebank-client/src/internal/logger"
	"github.com/api-sage/corebank-client/src/internal/session"
	"github.com/api-sage/corebank-client/src/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	var opts []session.Option
	if cfg.SeedDemoData {
		opts = append(opts, session.WithDemoData())
	}
	sess, err := session.New(opts...)
	if err != nil {
		log.Fatalf("build session: %v", err)
	}

	bank := client.NewBankClient(
		cfg.BankServiceURL,
		client.WithHTTPClient(client.NewHTTPClient(client.TransportConfig{ClientTimeout: cfg.RequestTimeout})),
		client.WithRateLimit(cfg.RemoteRateLimit, cfg.RemoteRateBurst),
	)

	queries := services.NewQueryService(sess)
	mux := router.New(
		controller.NewAccountController(services.NewAccountService(sess, bank), queries),
		controller.NewTransactionController(services.NewTransactionService(sess), queries),
		middleware.CorrelationID(),
	)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2*cfg.RequestTimeout + 5*time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("http server listening", logger.Fields{
			"addr":        cfg.HTTPAddr,
			"bankService": cfg.BankServiceURL,
			"environment": cfg.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", err, nil)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", err, nil)
	}
	logger.Info("http server stopped", nil)
}
