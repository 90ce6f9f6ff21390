// Package engine implements the pricing workflows on top of the store:
// cached recommendations, guarded price application, seller config upserts,
// price history, and batch auto-repricing.
package engine

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/donaldgifford/dataset-pricer/internal/auditlog"
	"github.com/donaldgifford/dataset-pricer/internal/store"
	domain "github.com/donaldgifford/dataset-pricer/pkg/types"
)

const (
	defaultCacheMaxAge      = time.Hour
	defaultMinPeers         = 3
	defaultHistorySnapshots = 30
	defaultHistoryAudits    = 20
	demandWindow            = 30 * 24 * time.Hour
	tracerName              = "github.com/donaldgifford/dataset-pricer/internal/engine"
)

// Assessment holds the quality signals used when an item has not been
// assessed yet.
type Assessment struct {
	QualityPercent  int
	ComplexityTag   domain.ComplexityTag
	CleaningCostUSD decimal.Decimal
}

// DefaultAssessment is the fallback for items without recorded assessment
// values.
var DefaultAssessment = Assessment{
	QualityPercent:  62,
	ComplexityTag:   domain.ComplexityB,
	CleaningCostUSD: decimal.NewFromInt(50),
}

// Engine orchestrates recommendation, apply, and repricing workflows.
type Engine struct {
	store store.Store
	audit auditlog.Sink
	log   *slog.Logger

	now              func() time.Time
	tracer           trace.Tracer
	limiter          *rate.Limiter
	cacheMaxAge      time.Duration
	minPeers         int
	historySnapshots int
	historyAudits    int
	defaults         Assessment
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(s store.Store, a auditlog.Sink, opts ...EngineOption) *Engine {
	eng := &Engine{
		store:            s,
		audit:            a,
		log:              slog.Default(),
		now:              time.Now,
		tracer:           otel.Tracer(tracerName),
		limiter:          rate.NewLimiter(rate.Inf, 1),
		cacheMaxAge:      defaultCacheMaxAge,
		minPeers:         defaultMinPeers,
		historySnapshots: defaultHistorySnapshots,
		historyAudits:    defaultHistoryAudits,
		defaults:         DefaultAssessment,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithTracer sets the tracer used for workflow spans.
func WithTracer(t trace.Tracer) EngineOption {
	return func(e *Engine) {
		e.tracer = t
	}
}

// WithCacheMaxAge sets how long a snapshot is served before recomputing.
func WithCacheMaxAge(d time.Duration) EngineOption {
	return func(e *Engine) {
		if d > 0 {
			e.cacheMaxAge = d
		}
	}
}

// WithMinPeers sets how many peer prices are required before a peer median
// is blended in.
func WithMinPeers(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.minPeers = n
		}
	}
}

// WithHistoryLimits sets how many snapshots and audits GetPriceHistory returns.
func WithHistoryLimits(snapshots, audits int) EngineOption {
	return func(e *Engine) {
		if snapshots > 0 {
			e.historySnapshots = snapshots
		}
		if audits > 0 {
			e.historyAudits = audits
		}
	}
}

// WithDefaultAssessment sets the fallback assessment for unassessed items.
func WithDefaultAssessment(a Assessment) EngineOption {
	return func(e *Engine) {
		e.defaults = a
	}
}

// WithRepriceRate throttles the batch repricer to r items per second with
// the given burst. A non-positive r disables throttling.
func WithRepriceRate(r float64, burst int) EngineOption {
	return func(e *Engine) {
		if r <= 0 {
			e.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		e.limiter = rate.NewLimiter(rate.Limit(r), max(burst, 1))
	}
}
