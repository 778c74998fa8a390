package dialprefix

import (
	"context"

	"github.com/kbukum/gwkit/logger"
	"github.com/kbukum/gwkit/observability"
)

const component = "dialprefix"

// Outcomes reported to metrics and logs.
const (
	OutcomeRewritten   = "rewritten"
	OutcomeCanonical   = "canonical"
	OutcomePassthrough = "passthrough"
)

// Normalizer applies configured rules with tracing, metrics and debug
// logging. It is safe for concurrent use.
type Normalizer struct {
	rules   string
	log     *logger.Logger
	metrics *observability.Metrics
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithLogger sets the logger. Defaults to the global logger.
func WithLogger(l *logger.Logger) Option {
	return func(n *Normalizer) { n.log = l }
}

// WithMetrics counts normalizations on m.
func WithMetrics(m *observability.Metrics) Option {
	return func(n *Normalizer) { n.metrics = m }
}

// NewNormalizer validates cfg and builds a Normalizer.
func NewNormalizer(cfg Config, opts ...Option) (*Normalizer, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	n := &Normalizer{rules: cfg.Prefixes}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// Rules returns the configured rule text.
func (n *Normalizer) Rules() string {
	return n.rules
}

// Normalize rewrites number like the package-level Normalize.
func (n *Normalizer) Normalize(ctx context.Context, number string) (string, bool) {
	ctx, span := observability.StartSpan(ctx, observability.SpanDialPrefixNormalize)
	defer span.End()

	result, ok := Normalize(n.rules, number)
	outcome := outcomeOf(number, result, ok)

	observability.SetSpanAttribute(ctx, observability.AttrNumber, number)
	observability.SetSpanAttribute(ctx, observability.AttrResult, result)
	observability.SetSpanAttribute(ctx, observability.AttrRewritten, outcome == OutcomeRewritten)
	n.metrics.RecordNormalization(ctx, outcome)

	n.logger().WithContext(ctx).Debug("number normalized", logger.Fields(
		"number", number,
		"result", result,
		logger.FieldStatus, outcome,
	))
	return result, ok
}

// NormalizeAll normalizes each number in order. Numbers no rule matches
// are passed through.
func (n *Normalizer) NormalizeAll(ctx context.Context, numbers []string) []string {
	out := make([]string, len(numbers))
	for i, number := range numbers {
		out[i], _ = n.Normalize(ctx, number)
	}
	return out
}

func outcomeOf(number, result string, ok bool) string {
	switch {
	case !ok:
		return OutcomePassthrough
	case result == number:
		return OutcomeCanonical
	default:
		return OutcomeRewritten
	}
}

func (n *Normalizer) logger() *logger.Logger {
	if n.log != nil {
		return n.log.WithComponent(component)
	}
	return logger.Get(component)
}
