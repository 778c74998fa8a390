package ginacl_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/gwkit/acl"
	"github.com/kbukum/gwkit/acl/ginacl"
	"github.com/kbukum/gwkit/errors"
	"github.com/kbukum/gwkit/logger"
)

func newRouter(t *testing.T, cfg acl.Config, opts ...ginacl.Option) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	policy, err := acl.NewPolicy(cfg)
	if err != nil {
		t.Fatalf("NewPolicy: %v", err)
	}
	r := gin.New()
	r.Use(ginacl.Middleware(policy, opts...))
	r.GET("/*path", func(c *gin.Context) {
		d, _ := c.Get(ginacl.ContextKeyDecision)
		c.String(http.StatusOK, d.(acl.Decision).String())
	})
	return r
}

func serve(r *gin.Engine, remoteAddr, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	req.RemoteAddr = remoteAddr
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

// ---------------------------------------------------------------------------
// Decisions
// ---------------------------------------------------------------------------

func TestMiddleware_Allowed(t *testing.T) {
	r := newRouter(t, acl.Config{AllowIP: "10.0.0.*", DenyIP: "*.*.*.*"})
	rr := serve(r, "10.0.0.5:1234", "/", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if rr.Body.String() != "allow" {
		t.Errorf("expected decision in context, got %q", rr.Body.String())
	}
}

func TestMiddleware_Denied(t *testing.T) {
	r := newRouter(t, acl.Config{AllowIP: "10.0.0.*", DenyIP: "*.*.*.*"})
	rr := serve(r, "192.168.1.9:4000", "/", nil)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
	var body errors.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Error.Code != errors.ErrCodeForbidden {
		t.Errorf("expected FORBIDDEN, got %s", body.Error.Code)
	}
	if body.Error.Message == "" {
		t.Error("expected a message")
	}
}

func TestMiddleware_NoDenyListAllowsAll(t *testing.T) {
	r := newRouter(t, acl.Config{})
	if rr := serve(r, "203.0.113.1:80", "/", nil); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestMiddleware_Indeterminate(t *testing.T) {
	cfg := acl.Config{DenyIP: "192.168.*.*"}

	r := newRouter(t, cfg)
	if rr := serve(r, "not-an-address", "/", nil); rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for unknown client address, got %d", rr.Code)
	}

	r = newRouter(t, cfg, ginacl.WithAllowIndeterminate(true))
	rr := serve(r, "not-an-address", "/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with indeterminate allowed, got %d", rr.Code)
	}
	if rr.Body.String() != "indeterminate" {
		t.Errorf("expected indeterminate decision, got %q", rr.Body.String())
	}
}

func TestMiddleware_SkipPaths(t *testing.T) {
	r := gin.New()
	policy, _ := acl.NewPolicy(acl.Config{DenyIP: "*.*.*.*"})
	r.Use(ginacl.Middleware(policy, ginacl.WithSkipPaths("/health")))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/data", func(c *gin.Context) { c.Status(http.StatusOK) })

	if rr := serve(r, "192.168.1.1:1", "/health", nil); rr.Code != http.StatusNoContent {
		t.Errorf("expected skipped path to pass, got %d", rr.Code)
	}
	if rr := serve(r, "192.168.1.1:1", "/data", nil); rr.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rr.Code)
	}
}

// ---------------------------------------------------------------------------
// Request ids and logging
// ---------------------------------------------------------------------------

func TestMiddleware_RequestID(t *testing.T) {
	r := newRouter(t, acl.Config{})

	rr := serve(r, "10.0.0.1:1", "/", nil)
	if id := rr.Header().Get(ginacl.HeaderRequestID); len(id) != 36 {
		t.Errorf("expected generated uuid, got %q", id)
	}

	rr = serve(r, "10.0.0.1:1", "/", http.Header{ginacl.HeaderRequestID: {"req-42"}})
	if id := rr.Header().Get(ginacl.HeaderRequestID); id != "req-42" {
		t.Errorf("expected propagated id, got %q", id)
	}
}

func TestMiddleware_ReplacesUnsafeRequestID(t *testing.T) {
	r := newRouter(t, acl.Config{})

	tests := map[string]string{
		"too long":       strings.Repeat("a", 129),
		"control chars":  "req-1\x1b[31m",
		"embedded space": "req 1",
		"non ascii":      "req-\u00e9",
	}
	for name, id := range tests {
		t.Run(name, func(t *testing.T) {
			rr := serve(r, "10.0.0.1:1", "/", http.Header{ginacl.HeaderRequestID: {id}})
			got := rr.Header().Get(ginacl.HeaderRequestID)
			if got == id || len(got) != 36 {
				t.Errorf("expected a generated uuid in place of %q, got %q", id, got)
			}
		})
	}

	limit := strings.Repeat("b", 128)
	rr := serve(r, "10.0.0.1:1", "/", http.Header{ginacl.HeaderRequestID: {limit}})
	if got := rr.Header().Get(ginacl.HeaderRequestID); got != limit {
		t.Errorf("expected id at the length limit to be kept, got %q", got)
	}
}

func TestMiddleware_LogsRejection(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&logger.Config{Level: "info", Format: "json"}, "test", &buf)
	r := newRouter(t, acl.Config{DenyIP: "*.*.*.*"}, ginacl.WithLogger(log))

	serve(r, "192.168.1.1:1", "/secret", http.Header{ginacl.HeaderRequestID: {"req-7"}})

	out := buf.String()
	for _, want := range []string{`"request rejected"`, `"component":"acl.http"`, `"request_id":"req-7"`, `"subject":"192.168.1.1"`, `"path":"/secret"`, `"decision":"deny"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in log, got %q", want, out)
		}
	}
}
