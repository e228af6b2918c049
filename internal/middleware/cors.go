package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CORS allows browser clients from any origin to call the API. Preflight
// requests are answered here only for paths the router serves; anything
// else falls through so unknown paths still get the router's 404.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, HEAD, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		h.Set("Access-Control-Expose-Headers", "X-Request-ID")

		method := r.Header.Get("Access-Control-Request-Method")
		if r.Method == http.MethodOptions && method != "" && routed(r, method) {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// routed reports whether the enclosing chi router has a route for the
// preflighted method and path. Outside a chi router every path counts.
func routed(r *http.Request, method string) bool {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return true
	}

	path := rctx.RoutePath
	if path == "" {
		path = r.URL.RawPath
	}
	if path == "" {
		path = r.URL.Path
	}
	return rctx.Routes.Match(chi.NewRouteContext(), method, path)
}
