// Package server exposes the prediction service over HTTP
package server

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type RouterDeps struct {
	Handler        *Handler
	Logger         *slog.Logger
	AllowedOrigins []string

	// Limiter throttles POST /predict when set
	Limiter *rate.Limiter
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	logger := dep.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(
		RequestIDMiddleware(),
		AccessLogMiddleware(logger),
		RecoveryMiddleware(logger),
		cors.New(corsConfig(dep.AllowedOrigins)),
	)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
	})

	h := dep.Handler
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
	r.GET("/model", h.Model)
	r.GET("/plot", h.Plot)

	predict := []gin.HandlerFunc{h.Predict}
	if dep.Limiter != nil {
		predict = append([]gin.HandlerFunc{RateLimitMiddleware(dep.Limiter)}, predict...)
	}
	r.POST("/predict", predict...)

	return r
}
