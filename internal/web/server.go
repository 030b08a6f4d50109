// Package web serves the tracker's HTML and JSON surface over HTTP.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodTracker/internal/auth"
	"foodTracker/internal/config"
	"foodTracker/internal/tracker"
	"foodTracker/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"totalCalories": func(list []models.Consumption) int64 {
		var sum int64
		for _, c := range list {
			if c.Food != nil {
				sum += c.Food.Calories
			}
		}
		return sum
	},
}

// Deps bundles what the router needs.
type Deps struct {
	Tracker *tracker.Service
	Users   auth.UserLookup
	Auth    config.AuthConfig
	Health  HealthChecker
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(), gin.Recovery())
	r.SetHTMLTemplate(template.Must(template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")))

	if deps.Health != nil {
		r.GET("/healthz", healthHandler(deps.Health))
	}

	h := &handlers{tracker: deps.Tracker}
	authed := r.Group("/")
	authed.Use(auth.Middleware(deps.Auth.JWTSecret, deps.Auth.CookieName, deps.Users))
	{
		authed.GET("/", withUser(h.index))
		authed.POST("/", withUser(h.index))
		authed.GET("/delete/:id", withUser(h.remove))
		authed.POST("/delete/:id", withUser(h.remove))
	}
	return r
}

// StartHTTP starts serving handler on the configured address and returns a shutdown function.
func StartHTTP(cfg *config.Config, handler http.Handler) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}
	addr := cfg.HTTP.Address
	if addr == "" {
		addr = ":8080"
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	srv := &http.Server{Handler: handler}
	go func() {
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http serve: %v", err)
		}
	}()
	return srv.Shutdown, nil
}
