package main

import (
	"github.com/clipvault/clipvault/internal/auth"
	"github.com/clipvault/clipvault/internal/csrf"
	"github.com/clipvault/clipvault/internal/httpx"
	"github.com/clipvault/clipvault/internal/ratelimit"
	"github.com/clipvault/clipvault/internal/session"
)

// setupRoutes wires the route table. Mutating routes compose the
// security middlewares in a fixed order: auth gate, then rate limiter,
// then CSRF guard, then the handler that touches the store.
func (a *App) setupRoutes() {
	authHandler, videoHandler, channelHandler, healthHandler := a.handlers()

	a.router.Use(httpx.CORSMiddleware())
	a.router.Use(httpx.RequestLoggerMiddleware(a.logger))
	a.router.Use(session.Middleware(a.sessions, a.Config.Session.SecureCookies, a.logger))
	a.router.Use(csrf.Issue(a.sessions, a.responses))

	requireAuth := auth.RequireAuth(a.sessions, a.responses)
	redirectIfAuth := auth.RedirectIfAuth()
	guard := csrf.Guard(a.responses)
	uploadLimiter := ratelimit.Middleware(a.uploadLimiter, nil, a.sessions, a.responses)

	// Health check
	a.router.GET("/health", healthHandler.HandleHealthCheck)

	// Home listing with optional ?q= search
	a.router.GET("/", videoHandler.HandleHome)

	// Auth flows
	authGroup := a.router.Group("/auth")
	{
		authGroup.GET("/login", redirectIfAuth, authHandler.HandleLoginPage)
		authGroup.POST("/login", redirectIfAuth, guard, authHandler.HandleLogin)
		authGroup.GET("/register", redirectIfAuth, authHandler.HandleRegisterPage)
		authGroup.POST("/register", redirectIfAuth, guard, authHandler.HandleRegister)
		authGroup.GET("/logout", authHandler.HandleLogout)
	}

	// Video routes
	videos := a.router.Group("/videos")
	{
		videos.GET("/upload", requireAuth, uploadLimiter, videoHandler.HandleUploadPage)
		videos.POST("/upload", requireAuth, uploadLimiter, guard, videoHandler.HandleUpload)
		videos.GET("/:id", videoHandler.HandleWatch)
		videos.POST("/:id/comment", requireAuth, guard, videoHandler.HandleComment)
		videos.POST("/:id/like", requireAuth, guard, videoHandler.HandleLike)
	}

	// Channel pages
	a.router.GET("/channel/:username", channelHandler.HandleChannel)

	// Static media when storing locally
	if a.Config.Storage.Backend == "local" {
		a.router.Static("/uploads", a.Config.Storage.UploadDir)
	}
}
