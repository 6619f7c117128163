// Package rest provides functionality for initializing a server for the URL shortening web application.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/Igbinosa-Christian/scissorapp/internal/api/rest/handlers"
	"github.com/Igbinosa-Christian/scissorapp/internal/api/rest/middleware"
	"github.com/Igbinosa-Christian/scissorapp/internal/config"
	"github.com/Igbinosa-Christian/scissorapp/internal/limiter"
	geo "github.com/Igbinosa-Christian/scissorapp/internal/service/geo/v1"
	identity "github.com/Igbinosa-Christian/scissorapp/internal/service/identity/v1"
	ledger "github.com/Igbinosa-Christian/scissorapp/internal/service/ledger/v1"
	qr "github.com/Igbinosa-Christian/scissorapp/internal/service/qr/v1"
	secretary "github.com/Igbinosa-Christian/scissorapp/internal/service/secretary/v1"
	shortener "github.com/Igbinosa-Christian/scissorapp/internal/service/shortener/v1"
	"github.com/Igbinosa-Christian/scissorapp/internal/storage"
)

// InitServer returns a http.Server object ready to be listening and serving.
func InitServer(ctx context.Context, cfg *config.Config, store storage.Storage, quotaCounter limiter.Counter, logger *zap.Logger) (*http.Server, error) {
	qrGenerator, err := qr.InitGenerator(cfg.ServerConfig.UploadPath, logger)
	if err != nil {
		return nil, err
	}
	registryService, err := shortener.InitShortener(store, qrGenerator, cfg.ServerConfig.BaseURL, logger)
	if err != nil {
		return nil, err
	}
	ledgerService, err := ledger.InitLedger(store, logger)
	if err != nil {
		return nil, err
	}
	identityService, err := identity.InitIdentity(store, logger)
	if err != nil {
		return nil, err
	}
	geoResolver := geo.InitResolver(cfg.GeoConfig, logger)
	secretaryService, err := secretary.NewSecretaryService(cfg.SecretConfig)
	if err != nil {
		return nil, err
	}
	sessionHandler, err := middleware.NewSessionHandler(secretaryService, cfg.SecretConfig)
	if err != nil {
		return nil, err
	}
	rateLimitHandler := middleware.NewRateLimitHandler(quotaCounter, cfg.LimiterConfig.DayQuota, logger)
	pageHandler, err := handlers.InitPageHandler(registryService, ledgerService, identityService,
		geoResolver, sessionHandler, store, cfg.ServerConfig, logger)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.LoggingHandle(logger))
	r.Use(sessionHandler.SessionHandle)

	r.Get("/", pageHandler.HandleIndex())
	r.Post("/", pageHandler.HandleIndex())
	r.Get("/register", pageHandler.HandleRegisterForm())
	r.Post("/register", pageHandler.HandleRegister())
	r.Get("/login", pageHandler.HandleLoginForm())
	r.Post("/login", pageHandler.HandleLogin())
	r.Get("/ping", pageHandler.HandlePingDB())
	r.Get("/{shortURL}", pageHandler.HandleRedirect())

	r.Group(func(r chi.Router) {
		r.Use(sessionHandler.RequireAuth)
		r.Get("/logout", pageHandler.HandleLogout())
		r.Get("/dashboard", pageHandler.HandleDashboard())
		r.With(rateLimitHandler.RateLimitHandle).Post("/dashboard", pageHandler.HandleCreateLink())
		r.Get("/history/{user}", pageHandler.HandleHistory())
		r.Get("/analytics/{id}", pageHandler.HandleAnalytics())
		r.Get("/delete/{id}", pageHandler.HandleDelete())
	})

	// QR artifacts are served from the upload path under opaque names
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.ServerConfig.UploadPath)))
	r.Get("/static/*", fileServer.ServeHTTP)

	srv := &http.Server{
		Addr:         cfg.ServerConfig.ServerAddress,
		Handler:      r,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return srv, nil
}
