package pages

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zhouzirui/shopfront/backend/internal/middleware"
)

func get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewRouter(zap.NewNop()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestStaticPages(t *testing.T) {
	cases := map[string]string{
		"/":        "<h1>Welcome to Home Page</h1>",
		"/about":   "<h1>About Us</h1>",
		"/contact": "<h1>Contact Us at contact@example.com</h1>",
	}

	for path, body := range cases {
		resp := get(path)
		if resp.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, resp.Code)
		}
		if resp.Body.String() != body {
			t.Fatalf("%s: unexpected body %q", path, resp.Body.String())
		}
		if ct := resp.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
			t.Fatalf("%s: unexpected content type %q", path, ct)
		}
	}
}

func TestGreetDefaultsToGuest(t *testing.T) {
	resp := get("/greet")
	if got := resp.Body.String(); got != "<h1>Hello, Guest!</h1>" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestGreetUsesName(t *testing.T) {
	resp := get("/greet?name=Ada+Lovelace")
	if got := resp.Body.String(); got != "<h1>Hello, Ada Lovelace!</h1>" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestGreetEscapesName(t *testing.T) {
	resp := get("/greet?name=%3Cscript%3E")
	if got := resp.Body.String(); got != "<h1>Hello, &lt;script&gt;!</h1>" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestUnknownPage(t *testing.T) {
	resp := get("/missing")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "<h1>404 Not Found</h1>" {
		t.Fatalf("unexpected body %q", got)
	}
}

func TestNewRouterLogsRequests(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	rec := httptest.NewRecorder()
	NewRouter(zap.New(core)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))

	if rec.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatalf("expected %s header", middleware.RequestIDHeader)
	}
	if logs.Len() != 1 {
		t.Fatalf("expected one access log entry, got %d", logs.Len())
	}
}
