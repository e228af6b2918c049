package pages

import (
	"html"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	middlewarePkg "github.com/zhouzirui/shopfront/backend/internal/middleware"
	"github.com/zhouzirui/shopfront/backend/pkg/utils"
)

// DefaultGuest is greeted when /greet has no name.
const DefaultGuest = "Guest"

// Handler serves the static site pages.
type Handler struct{}

// New creates the page handler.
func New() *Handler {
	return &Handler{}
}

// RegisterRoutes mounts the site pages and the HTML 404.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Handle("/", staticPage("<h1>Welcome to Home Page</h1>"))
	r.Handle("/about", staticPage("<h1>About Us</h1>"))
	r.Handle("/contact", staticPage("<h1>Contact Us at contact@example.com</h1>"))
	r.Handle("/greet", http.HandlerFunc(h.handleGreet))
	r.NotFound(h.handleNotFound)
	r.MethodNotAllowed(h.handleNotFound)
}

// NewRouter returns the page site with request IDs, access logs and panic
// recovery.
func NewRouter(logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middlewarePkg.RequestID)
	r.Use(middlewarePkg.Logger(logger))
	r.Use(middleware.Recoverer)
	New().RegisterRoutes(r)
	return r
}

func staticPage(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = utils.RespondHTML(w, http.StatusOK, body)
	})
}

func (h *Handler) handleGreet(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = DefaultGuest
	}
	_ = utils.RespondHTML(w, http.StatusOK, "<h1>Hello, "+html.EscapeString(name)+"!</h1>")
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	_ = utils.RespondHTML(w, http.StatusNotFound, "<h1>404 Not Found</h1>")
}
