package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"mortgage-engine/config"
	"mortgage-engine/domain"
	"mortgage-engine/logger"
	"mortgage-engine/repository"
	"mortgage-engine/service"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run reads one JSON calculation request from in and writes its report to out.
func run(in io.Reader, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
	logger.SetGlobalLogger(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
	defer cancel()

	cache, closeCache := newCache(ctx, cfg, log)
	defer closeCache()

	calculations := service.NewCalculationService(
		repository.NewCalculationRepositoryMemory(),
		cache,
		log,
		cfg.ScenarioWorkers,
	)

	var req domain.CalculationRequest
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	record, err := calculations.Run(ctx, req)
	if err != nil {
		return err
	}

	log.Debug().Str("id", record.ID).Bool("cached", record.Cached).Msg("writing report")
	if _, err := out.Write(append(record.Report, '\n')); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// newCache picks the configured backend. An unreachable Redis falls back to
// the in-process cache.
func newCache(ctx context.Context, cfg *config.Config, log zerolog.Logger) (repository.CacheRepository, func()) {
	if cfg.CacheBackend == config.CacheBackendRedis {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		err := redisCache.Ping(ctx)
		if err == nil {
			return redisCache, func() { _ = redisCache.Close() }
		}
		log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, using memory cache")
		_ = redisCache.Close()
	}
	return repository.NewMemoryCache(cfg.CacheTTL), func() {}
}
