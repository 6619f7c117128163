package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Igbinosa-Christian/scissorapp/internal/api/rest"
	"github.com/Igbinosa-Christian/scissorapp/internal/config"
	"github.com/Igbinosa-Christian/scissorapp/internal/limiter"
	limiterInmemory "github.com/Igbinosa-Christian/scissorapp/internal/limiter/inmemory"
	"github.com/Igbinosa-Christian/scissorapp/internal/limiter/inredis"
	"github.com/Igbinosa-Christian/scissorapp/internal/logging"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage/inmemory"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage/inpsql"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger := logging.NewLogger()
	defer logger.Sync()
	// get configuration
	cfg, err := config.NewDefaultConfiguration()
	if err != nil {
		logger.Fatal("Configuration failed", zap.Error(err))
	}
	cfg.ParseFlags()
	// add a waiting group for the PSQL closure goroutine
	wg := &sync.WaitGroup{}
	// initialize storage, switch between "inmemory" and "inpsql" modules
	var store storage.Storage
	switch cfg.StorageConfig.DatabaseDSN {
	case "":
		store = inmemory.InitStorage(logger)
	default:
		wg.Add(1)
		store, err = inpsql.InitStorage(ctx, wg, logger, cfg.StorageConfig)
		if err != nil {
			logger.Fatal("Storage initialization failed", zap.Error(err))
		}
	}
	// initialize the creation quota counter, shared via Redis when configured
	var quotaCounter limiter.Counter
	switch cfg.LimiterConfig.RedisDSN {
	case "":
		quotaCounter = limiterInmemory.InitCounter()
	default:
		quotaCounter, err = inredis.InitCounter(cfg.LimiterConfig.RedisDSN, logger)
		if err != nil {
			logger.Fatal("Quota counter initialization failed", zap.Error(err))
		}
	}
	// initialize server
	server, err := rest.InitServer(ctx, cfg, store, quotaCounter, logger)
	if err != nil {
		logger.Fatal("Server initialization failed", zap.Error(err))
	}
	// set a listener for os.Signal
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-done
		logger.Info("Server shutdown attempted")
		ctxTO, cancelTO := context.WithTimeout(ctx, 5*time.Second)
		defer cancelTO()
		if err := server.Shutdown(ctxTO); err != nil {
			logger.Fatal("Server shutdown failed", zap.Error(err))
		}
		cancel()
	}()
	// start up the server
	logger.Info("Server start attempted", zap.String("address", cfg.ServerConfig.ServerAddress))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Server failed", zap.Error(err))
	}
	// wait for the goroutine in InitStorage to finish before exiting
	wg.Wait()
	logger.Info("Server shutdown succeeded")
}
