package whoami

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	middlewarePkg "github.com/zhouzirui/shopfront/backend/internal/middleware"
	"github.com/zhouzirui/shopfront/backend/pkg/utils"
)

// ClientIP reports the caller's address: the raw X-Forwarded-For header when
// a proxy set one, otherwise the host part of the connection address.
func ClientIP(r *http.Request) string {
	if fwd := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); fwd != "" {
		return fwd
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// Handler answers every request with the detected client IP.
func Handler(w http.ResponseWriter, r *http.Request) {
	_ = utils.RespondText(w, http.StatusOK, "Detected IP address: "+ClientIP(r))
}

// RegisterRoutes mounts Handler on every path of r.
func RegisterRoutes(r chi.Router) {
	r.HandleFunc("/*", Handler)
	r.NotFound(Handler)
}

// NewRouter answers every path with Handler, behind request IDs, access
// logs and panic recovery. RealIP is left out on purpose: Handler reads
// X-Forwarded-For itself and must see the original RemoteAddr.
func NewRouter(logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middlewarePkg.RequestID)
	r.Use(middlewarePkg.Logger(logger))
	r.Use(middleware.Recoverer)
	RegisterRoutes(r)
	return r
}
