package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"content-desk/config"
	"content-desk/driver"
	"content-desk/driver/contentapi"
	"content-desk/gateway"
	"content-desk/logger"
	"content-desk/rest"
	"content-desk/usecase"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	log := logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	log.Info("configuration loaded",
		"api_url", cfg.API.BaseURL,
		"http_addr", cfg.HTTP.Addr,
		"cache_ttl", cfg.Cache.TTL)

	cache, err := driver.NewRedisCache(cfg.Cache.RedisURL, cfg.Cache.TTL)
	if err != nil {
		log.Error("failed to configure redis cache", "err", err)
		os.Exit(1)
	}
	defer cache.Close()

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := cache.Ping(pingCtx); err != nil {
		// The cache is an accelerator, not a dependency; start degraded.
		log.Warn("redis unreachable at startup, serving without cache hits", "err", err)
	}
	cancel()

	client := contentapi.NewClient(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout)

	articles := gateway.NewArticleGateway(client, cache)
	categories := gateway.NewCategoryGateway(client, cache)
	networks := gateway.NewNetworkGateway(client, cache)
	notifications := gateway.NewNotificationGateway(client, cache)

	handler := rest.NewHandler(
		usecase.NewListArticlesUsecase(articles, cfg.PageSize),
		usecase.NewGetArticleUsecase(articles),
		usecase.NewMutateArticleUsecase(articles),
		usecase.NewArticleStatsUsecase(articles, categories, networks),
		usecase.NewManageCategoryUsecase(categories, articles),
		usecase.NewManageNetworkUsecase(networks, articles),
		usecase.NewNotifySubscribersUsecase(articles),
		usecase.NewImportArticlesUsecase(articles),
		usecase.NewListNotificationsUsecase(notifications),
	)

	e := rest.NewRouter(handler)
	e.Server.ReadHeaderTimeout = cfg.HTTP.ReadHeaderTimeout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", "addr", cfg.HTTP.Addr)
		if err := e.Start(cfg.HTTP.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "err", err)
	}
}
