// Package ginacl enforces an acl.Policy on incoming Gin requests by client
// address.
package ginacl

import (
	"net/netip"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kbukum/gwkit/acl"
	"github.com/kbukum/gwkit/errors"
	"github.com/kbukum/gwkit/logger"
)

// component names the middleware's logger; debug places can select it
// with "acl.*" or exclude it with "-acl.http".
const component = "acl.http"

// maxRequestIDLen bounds a client-supplied request id.
const maxRequestIDLen = 128

const (
	// HeaderRequestID carries the request id in and out.
	HeaderRequestID = "X-Request-Id"
	// ContextKeyDecision holds the acl.Decision in the Gin context.
	ContextKeyDecision = "acl.decision"
	// ContextKeyRequestID holds the request id in the Gin context.
	ContextKeyRequestID = "request_id"
)

type options struct {
	allowIndeterminate bool
	skipPaths          []string
	log                *logger.Logger
}

// Option configures the middleware.
type Option func(*options)

// WithAllowIndeterminate lets requests without a usable client address
// through. They are rejected by default.
func WithAllowIndeterminate(allow bool) Option {
	return func(o *options) { o.allowIndeterminate = allow }
}

// WithSkipPaths exempts URL path prefixes from the check.
func WithSkipPaths(prefixes ...string) Option {
	return func(o *options) { o.skipPaths = append(o.skipPaths, prefixes...) }
}

// WithLogger sets the logger used for rejections.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// Middleware checks c.ClientIP() against policy. Denied requests are
// aborted with 403 and an errors.ErrorResponse body.
func Middleware(policy *acl.Policy, opts ...Option) gin.HandlerFunc {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range o.skipPaths {
			if strings.HasPrefix(path, skip) {
				c.Next()
				return
			}
		}

		id := c.GetHeader(HeaderRequestID)
		if !validRequestID(id) {
			id = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		ctx := logger.ContextWithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)

		// An unparsable client address yields the zero Addr, which the
		// policy treats as indeterminate.
		clientIP := c.ClientIP()
		addr, _ := netip.ParseAddr(clientIP)
		decision := policy.CheckAddr(ctx, addr)
		c.Set(ContextKeyDecision, decision)

		if decision == acl.Allow || (decision == acl.Indeterminate && o.allowIndeterminate) {
			c.Next()
			return
		}

		appErr := errors.Forbidden("")
		log := logger.Get(component)
		if o.log != nil {
			log = o.log.WithComponent(component)
		}
		log.WithContext(ctx).Warn("request rejected", logger.Fields(
			logger.FieldSubject, clientIP,
			logger.FieldDecision, decision.String(),
			"path", path,
		))
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
	}
}

// validRequestID accepts a non-empty run of visible ASCII characters no
// longer than maxRequestIDLen. Anything else is replaced before it reaches
// the response headers or the logs.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}
