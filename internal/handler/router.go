package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zhouzirui/shopfront/backend/internal/config"
	"github.com/zhouzirui/shopfront/backend/internal/handler/dispatch"
	"github.com/zhouzirui/shopfront/backend/internal/handler/live"
	middlewarePkg "github.com/zhouzirui/shopfront/backend/internal/middleware"
	"github.com/zhouzirui/shopfront/backend/internal/service/search"
)

// NewRouter wires HTTP routes to the search service.
func NewRouter(searchSvc *search.Service, searchCfg config.SearchConfig, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewarePkg.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.Logger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	// Live search is opt-in so the default route table stays "/" and "/search".
	if searchCfg.LiveEnabled {
		live.New(searchSvc, logger).RegisterRoutes(r)
	}

	dispatch.New(searchSvc, logger).RegisterRoutes(r)

	return r
}
