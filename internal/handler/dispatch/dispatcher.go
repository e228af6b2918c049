package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zhouzirui/shopfront/backend/internal/service/search"
	"github.com/zhouzirui/shopfront/backend/pkg/utils"
)

// WelcomeText is the heading served on the home route.
const WelcomeText = "Welcome to Product Search"

const welcomeBody = `<h1>` + WelcomeText + `</h1>
<p>Try <code>/search?name=mouse</code></p>
`

const notFoundBody = "404 Not Found"

// Response is what a route produces for the transport to send.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

type routeFunc func(ctx context.Context, req Request) (Response, error)

// Dispatcher owns the fixed route table of the search API.
type Dispatcher struct {
	routes map[string]routeFunc
	search *search.Service
	logger *zap.Logger
	encode func(interface{}) ([]byte, error)
}

// New builds a dispatcher around the search service.
func New(searchSvc *search.Service, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		search: searchSvc,
		logger: logger,
		encode: utils.EncodeJSON,
	}
	d.routes = map[string]routeFunc{
		"/":       d.handleHome,
		"/search": d.handleSearch,
	}
	return d
}

// Paths lists the routed paths in lexical order.
func (d *Dispatcher) Paths() []string {
	paths := make([]string, 0, len(d.routes))
	for path := range d.routes {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// RegisterRoutes mounts every table path on r, for any method, and makes the
// dispatcher the router's fallback so unknown paths get the same 404.
func (d *Dispatcher) RegisterRoutes(r chi.Router) {
	for _, path := range d.Paths() {
		r.Handle(path, d)
	}
	r.NotFound(d.ServeHTTP)
	r.MethodNotAllowed(d.ServeHTTP)
}

// Route matches req.Path exactly against the table. Handler errors become a
// generic 500 so nothing escapes to the transport.
func (d *Dispatcher) Route(ctx context.Context, req Request) Response {
	route, ok := d.routes[req.Path]
	if !ok {
		return notFound()
	}

	resp, err := route(ctx, req)
	if err != nil {
		d.logger.Error("route failed",
			zap.String("path", req.Path),
			zap.String("request_id", chimw.GetReqID(ctx)),
			zap.Error(err))
		return internalError()
	}
	return resp
}

// ServeHTTP parses, routes and writes one response.
func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	target := r.RequestURI
	if target == "" {
		target = r.URL.RequestURI()
	}

	resp := d.Route(r.Context(), ParseTarget(target))

	if err := r.Context().Err(); err != nil {
		d.logger.Debug("client gone before response", zap.String("path", r.URL.Path), zap.Error(err))
		return
	}
	if err := utils.Respond(w, resp.StatusCode, resp.ContentType, resp.Body); err != nil {
		d.logger.Debug("response write failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (d *Dispatcher) handleHome(_ context.Context, _ Request) (Response, error) {
	return Response{
		StatusCode:  http.StatusOK,
		ContentType: utils.ContentTypeHTML,
		Body:        []byte(welcomeBody),
	}, nil
}

func (d *Dispatcher) handleSearch(ctx context.Context, req Request) (Response, error) {
	result := d.search.Search(ctx, req.Query["name"])

	body, err := d.encode(result)
	if err != nil {
		return Response{}, fmt.Errorf("encode search result: %w", err)
	}

	return Response{
		StatusCode:  http.StatusOK,
		ContentType: utils.ContentTypeJSON,
		Body:        body,
	}, nil
}

func notFound() Response {
	return Response{
		StatusCode:  http.StatusNotFound,
		ContentType: utils.ContentTypeText,
		Body:        []byte(notFoundBody),
	}
}

func internalError() Response {
	return Response{
		StatusCode:  http.StatusInternalServerError,
		ContentType: utils.ContentTypeText,
		Body:        []byte(utils.InternalErrorBody),
	}
}
