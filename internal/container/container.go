package container

import (
	"context"

	"ytlens/internal/cache"
	"ytlens/internal/config"
	"ytlens/internal/service"
	"ytlens/internal/service/ai"
	"ytlens/internal/service/youtube"
	"ytlens/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *logger.Logger
	Store      cache.Store
	RedisStore *cache.Redis
	Services   *service.Services
}

// New creates a new dependency injection container. The cache store is
// Redis when REDIS_URL is configured and reachable, in-memory otherwise.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	var store cache.Store
	var redisStore *cache.Redis

	if cfg.RedisURL != "" {
		rs, err := cache.NewRedis(cfg.RedisURL, log)
		if err != nil {
			log.WithError(err).Warn("Failed to initialize Redis cache, falling back to in-memory cache")
		} else {
			redisStore = rs
			store = rs
			log.Info("Redis cache initialized successfully")
		}
	}
	if store == nil {
		store = cache.NewMemory()
		log.Info("Using in-memory cache")
	}

	apiClient, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey, log)
	if err != nil {
		return nil, err
	}

	youtubeService := youtube.NewService(apiClient, store, cfg.CacheTTL, log)
	aiService := ai.NewService(ai.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL), log)

	return &Container{
		Config:     cfg,
		Logger:     log,
		Store:      store,
		RedisStore: redisStore,
		Services: &service.Services{
			YouTube: youtubeService,
			AI:      aiService,
		},
	}, nil
}

// GetYouTubeService returns the channel analytics service
func (c *Container) GetYouTubeService() service.ChannelAnalytics {
	return c.Services.YouTube
}

// GetAIService returns the script assistant service
func (c *Container) GetAIService() service.ScriptAssistant {
	return c.Services.AI
}

// GetLogger returns the logger
func (c *Container) GetLogger() *logger.Logger {
	return c.Logger
}

// GetConfig returns the configuration
func (c *Container) GetConfig() *config.Config {
	return c.Config
}

// GetCacheStore returns the active cache store
func (c *Container) GetCacheStore() cache.Store {
	return c.Store
}

// Close releases container-held resources
func (c *Container) Close() error {
	if c.RedisStore != nil {
		return c.RedisStore.Close()
	}
	return nil
}
