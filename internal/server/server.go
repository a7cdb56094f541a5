// Package server assembles the HTTP server from configuration.
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/mamasaathi/backend/config"
	"github.com/mamasaathi/backend/internal/api"
	"github.com/mamasaathi/backend/internal/logger"
	"github.com/mamasaathi/backend/internal/middleware"
	"github.com/mamasaathi/backend/internal/service"
	"github.com/mamasaathi/backend/internal/store"
)

// Server owns the HTTP listener and the wired-up application.
type Server struct {
	http   *http.Server
	logger *logger.Logger
}

// New wires the store, services and routes. With no redis address configured,
// sessions and the recent-search cache live in process memory.
func New(cfg *config.Config, log *logger.Logger) *Server {
	profiles := store.New(store.WithLatency(cfg.StoreLatency))

	var (
		sessions service.SessionStore
		searches service.RecentSearchCache
	)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		sessions = service.NewRedisSessionStore(client)
		searches = service.NewRedisSearchCache(client)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, sessions will not survive a restart")
		sessions = service.NewMemorySessionStore()
		searches = service.NewMemorySearchCache()
	}

	gen := service.NewGenAIService(cfg.GeminiAPIURL, cfg.GeminiAPIKey, cfg.GeminiModel, log.With("component", "genai"))
	if cfg.GeminiAPIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, generation features are disabled")
	}

	sessionSvc := service.NewSessionService(profiles, sessions, cfg.JWTSecret, cfg.SessionTTL, log.With("component", "session"))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	api.SetupAPI(router, api.Services{
		Sessions: sessionSvc,
		Planner:  service.NewPlannerService(gen, log.With("component", "planner")),
		Meals:    service.NewMealPlanService(gen, searches, log.With("component", "mealplan")),
		Emotions: service.NewEmotionService(gen, log.With("component", "emotion")),
		Store:    profiles,
	})

	return &Server{
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: router,
		},
		logger: log,
	}
}

// Start blocks serving requests until the listener fails or is shut down.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
