package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ilya-burinskiy/utilapi/internal/app/configs"
	"github.com/ilya-burinskiy/utilapi/internal/app/handlers"
	"github.com/ilya-burinskiy/utilapi/internal/app/logger"
	"github.com/ilya-burinskiy/utilapi/internal/app/services"
	"github.com/ilya-burinskiy/utilapi/internal/app/storage"
)

const shutdownTimeout = 10 * time.Second

var (
	buildVersion string = "N/A"
	buildDate    string = "N/A"
	buildCommit  string = "N/A"
)

func main() {
	config := configs.Parse()
	err := logger.Initialize(logger.Options{
		Level:    config.LogLevel,
		Encoding: config.LogEncoding,
		Service:  "utilapi",
		Version:  buildVersion,
	})
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	showBuildInfo()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	store, err := configureStorage(ctx, config)
	if err != nil {
		logger.Log.Fatal("failed to configure storage", zap.Error(err))
	}

	analyser, err := services.NewFileAnalyser(store, config.UploadsDir)
	if err != nil {
		logger.Log.Fatal("failed to configure file analyser", zap.Error(err))
	}
	h := handlers.NewHandlers(
		services.NewURLShortener(store),
		services.NewExerciseTracker(store),
		analyser,
	)

	startHTTPServer(ctx, config, handlers.NewRouter(h), store)
}

func startHTTPServer(ctx context.Context, config configs.Config, handler http.Handler, store storage.Storage) {
	server := http.Server{
		Handler: handler,
		Addr:    config.ServerAddress,
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		onExit(ctx, &server, store)
		close(done)
	}()

	logger.Log.Info("starting server", zap.String("address", config.ServerAddress))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Error("server error", zap.Error(err))
	}
	cancel()
	<-done
}

// onExit shuts server down and closes storage once ctx is done
func onExit(ctx context.Context, server *http.Server, store storage.Storage) {
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Info("failed to shutdown", zap.Error(err))
	}
	if err := store.Close(); err != nil {
		logger.Log.Info("failed to close storage", zap.Error(err))
	}
}

func configureStorage(ctx context.Context, config configs.Config) (storage.Storage, error) {
	randGen := storage.StdRandHexStringGenerator{}
	if config.UseDBStorage() {
		store, err := storage.NewDBStorage(config.DatabaseDSN, randGen)
		if err != nil {
			return nil, err
		}
		return store, nil
	}

	if !config.UseFileStorage() {
		return storage.NewMapStorage(nil, randGen), nil
	}

	fs := storage.NewFileStorage(config.FileStoragePath)
	entries, err := fs.Snapshot()
	if err != nil {
		return nil, err
	}
	store := storage.NewMapStorage(fs, randGen)
	store.Restore(entries)
	services.NewStorageCompactor(store, config.CompactInterval).Start(ctx)

	return store, nil
}

func showBuildInfo() {
	logger.Log.Info("build info", zap.String("build version", buildVersion))
	logger.Log.Info("build info", zap.String("build date", buildDate))
	logger.Log.Info("build info", zap.String("build commit", buildCommit))
}
