package main

import (
	"context"
	"fmt"
	"time"

	"github.com/clipvault/clipvault/internal/auth"
	"github.com/clipvault/clipvault/internal/channel"
	"github.com/clipvault/clipvault/internal/health"
	"github.com/clipvault/clipvault/internal/httpx"
	"github.com/clipvault/clipvault/internal/ratelimit"
	"github.com/clipvault/clipvault/internal/session"
	"github.com/clipvault/clipvault/internal/storage"
	"github.com/clipvault/clipvault/internal/store"
	"github.com/clipvault/clipvault/internal/video"
	"github.com/gin-gonic/gin"
)

// sessionTTL bounds both the cookie and the server-side session record.
const sessionTTL = 7 * 24 * time.Hour

// App holds all application dependencies
type App struct {
	ctx           context.Context
	Config        *Config
	logger        *Logger
	store         *store.Store
	sessions      session.Store
	redisSessions *session.RedisStore
	uploader      storage.Uploader
	uploadLimiter *ratelimit.Limiter
	responses     *httpx.ResponseHandler
	router        *gin.Engine
}

// NewApp creates a new application instance with all dependencies
func NewApp(ctx context.Context, config *Config) (*App, error) {
	logger, err := NewLogger(config.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %v", err)
	}

	st, err := store.Open(config.Data.Dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %v", err)
	}

	app := &App{
		ctx:       ctx,
		Config:    config,
		logger:    logger,
		store:     st,
		responses: httpx.NewResponseHandler(logger),
		uploadLimiter: ratelimit.New(
			time.Duration(config.RateLimit.WindowSeconds)*time.Second,
			config.RateLimit.Max,
		),
	}

	if err := app.initSessions(ctx, config); err != nil {
		return nil, err
	}
	if err := app.initUploader(config); err != nil {
		return nil, err
	}

	app.router = gin.New()
	app.router.Use(gin.Recovery())
	app.setupRoutes()

	return app, nil
}

func (a *App) initSessions(ctx context.Context, config *Config) error {
	switch config.Session.Backend {
	case "redis":
		rs, err := session.NewRedisStore(ctx, config.Session.Redis.Addr,
			config.Session.Redis.Password, config.Session.Redis.DB, sessionTTL)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis session store: %v", err)
		}
		a.redisSessions = rs
		a.sessions = rs
	case "memory":
		a.sessions = session.NewMemoryStore(sessionTTL)
	default:
		return fmt.Errorf("unknown session backend %q", config.Session.Backend)
	}
	return nil
}

func (a *App) initUploader(config *Config) error {
	switch config.Storage.Backend {
	case "s3":
		up, err := storage.NewS3Uploader(storage.S3Options{
			Region:          config.Storage.S3.Region,
			Bucket:          config.Storage.S3.Bucket,
			Prefix:          config.Storage.S3.Prefix,
			AccessKeyID:     config.Storage.S3.AccessKeyId,
			SecretAccessKey: config.Storage.S3.SecretAccessKey,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize S3 uploader: %v", err)
		}
		a.uploader = up
	case "local":
		up, err := storage.NewLocalUploader(config.Storage.UploadDir)
		if err != nil {
			return fmt.Errorf("failed to initialize local uploader: %v", err)
		}
		a.uploader = up
	default:
		return fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}
	return nil
}

// handlers builds the feature handlers against the app's dependencies.
func (a *App) handlers() (*auth.Handler, *video.Handler, *channel.Handler, *health.Handler) {
	return auth.NewHandler(a.store, a.sessions, a.responses, a.logger),
		video.NewHandler(a.store, a.uploader, a.sessions, a.responses, a.logger),
		channel.NewHandler(a.store, a.responses),
		health.NewHandler(a.responses)
}

// Run starts the application
func (a *App) Run() error {
	port := a.Config.Server.Port
	a.logger.LogInfo(fmt.Sprintf("Starting server on port %d", port), nil)
	if err := a.router.Run(fmt.Sprintf(":%d", port)); err != nil {
		return a.logger.LogError(err, "server failed to start")
	}
	return nil
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	a.logger.LogInfo("Initiating graceful shutdown", nil)

	if a.redisSessions != nil {
		if err := a.redisSessions.Close(); err != nil {
			a.logger.LogWarn("Error closing session store", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	a.logger.LogInfo("Application shutdown complete", nil)
	return nil
}
