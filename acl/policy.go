package acl

import (
	"context"
	"net/netip"

	"github.com/kbukum/gwkit/logger"
	"github.com/kbukum/gwkit/observability"
	"github.com/kbukum/gwkit/util"
	"github.com/kbukum/gwkit/wildcard"
)

const (
	component = "acl"
	noSubject = "<none>"
)

// IsAllowed decides access for subject. A nil subject is Indeterminate; a
// nil or empty deny list allows everything; a match on the allow list wins
// over a match on the deny list.
func IsAllowed(allowList, denyList, subject *string) Decision {
	d, _ := decide(allowList, denyList, subject)
	return d
}

// decide returns the decision and the pattern alternative that caused it,
// if any.
func decide(allowList, denyList, subject *string) (Decision, string) {
	if subject == nil {
		return Indeterminate, ""
	}
	if util.Deref(denyList) == "" {
		return Allow, ""
	}
	if allowList != nil {
		if alt, ok := wildcard.Match(*allowList, *subject); ok {
			return Allow, alt
		}
	}
	if alt, ok := wildcard.Match(*denyList, *subject); ok {
		return Deny, alt
	}
	return Allow, ""
}

// Policy is a configured allow/deny pair with tracing, metrics and debug
// logging around each decision. It is safe for concurrent use.
type Policy struct {
	allow   *string
	deny    *string
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures a Policy.
type Option func(*Policy)

// WithLogger sets the logger; decisions are logged at debug level under
// the "acl" component. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(p *Policy) { p.log = l }
}

// WithMetrics counts decisions on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(p *Policy) { p.metrics = m }
}

// NewPolicy validates cfg and builds a Policy. An empty AllowIP means no
// allow list.
func NewPolicy(cfg Config, opts ...Option) (*Policy, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	p := &Policy{allow: util.NonEmpty(cfg.AllowIP), deny: util.Ptr(cfg.DenyIP)}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Check decides access for subject.
func (p *Policy) Check(ctx context.Context, subject string) Decision {
	return p.evaluate(ctx, &subject)
}

// CheckAddr decides access for addr in its textual form. IPv4-mapped IPv6
// addresses are checked as IPv4. An invalid addr is Indeterminate.
func (p *Policy) CheckAddr(ctx context.Context, addr netip.Addr) Decision {
	if !addr.IsValid() {
		return p.evaluate(ctx, nil)
	}
	subject := addr.Unmap().String()
	return p.evaluate(ctx, &subject)
}

func (p *Policy) evaluate(ctx context.Context, subject *string) Decision {
	ctx, span := observability.StartSpan(ctx, observability.SpanACLCheck)
	defer span.End()

	d, pattern := decide(p.allow, p.deny, subject)

	observability.SetSpanAttribute(ctx, observability.AttrDecision, d.String())
	if subject != nil {
		observability.SetSpanAttribute(ctx, observability.AttrSubject, *subject)
	}
	if pattern != "" {
		observability.SetSpanAttribute(ctx, observability.AttrPattern, pattern)
	}
	p.metrics.RecordDecision(ctx, d.String())

	p.logger().WithContext(ctx).Debug("access checked", logger.Fields(
		logger.FieldSubject, util.DerefOr(subject, noSubject),
		logger.FieldDecision, d.String(),
		logger.FieldPattern, pattern,
	))
	return d
}

func (p *Policy) logger() *logger.Logger {
	if p.log != nil {
		return p.log.WithComponent(component)
	}
	return logger.Get(component)
}
