// Package model provides the risk scorer: a process-scoped handle that
// serves predictions from the trained model when it is available and from
// the fallback heuristic otherwise. The handle's external contract is
// identical either way; callers cannot observe which implementation ran.
package model

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/hamstring-risk-server/internal/domain"
)

// Scorer produces a risk score in [0,100] from the fixed 7-field feature
// vector. Provenance is carried for implementations that use selection
// detail (the heuristic); the trained model consumes only the vector.
type Scorer interface {
	Score(ctx context.Context, vector domain.FeatureVector, prov *domain.Provenance) (float64, error)
}

// Handle is the process-scoped scorer instance shared by all requests.
// The trained model is loaded exactly once on first use; after that the
// handle is immutable and safe for concurrent use. Load failure and
// per-request inference failure both fall back to the heuristic, logged
// but never surfaced.
type Handle struct {
	logger   *logrus.Logger
	cfg      domain.ModelConfig
	fallback Scorer

	once    sync.Once
	trained Scorer
	breaker *gobreaker.CircuitBreaker
}

// NewHandle creates a scorer handle. The trained model at cfg.Path is
// loaded lazily on the first Score call; construction never fails.
func NewHandle(cfg domain.ModelConfig, logger *logrus.Logger) *Handle {
	return &Handle{
		logger:   logger,
		cfg:      cfg,
		fallback: NewHeuristicScorer(),
	}
}

// init loads the trained scorer and builds its circuit breaker. Runs under
// sync.Once so concurrent first access cannot double-load the model file.
func (h *Handle) init() {
	trained, err := LoadLinearScorer(h.cfg.Path)
	if err != nil {
		h.logger.WithError(err).WithField("path", h.cfg.Path).
			Warn("Trained risk model unavailable, serving fallback heuristic")
		return
	}

	h.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "RiskModel",
		MaxRequests: h.cfg.BreakerMaxRequests,
		Interval:    h.cfg.BreakerInterval,
		Timeout:     h.cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			h.logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Risk model circuit breaker state changed")
		},
	})
	h.trained = trained

	h.logger.WithField("path", h.cfg.Path).Info("Trained risk model loaded")
}

// Score runs the trained model when loaded and healthy, the heuristic
// otherwise. It never returns an error: all scorer failures are absorbed
// here so the pipeline's external contract is unaffected by the trained
// model's presence or absence.
func (h *Handle) Score(ctx context.Context, vector domain.FeatureVector, prov *domain.Provenance) float64 {
	h.once.Do(h.init)

	if h.trained != nil {
		result, err := h.breaker.Execute(func() (interface{}, error) {
			return h.scoreTrained(ctx, vector, prov)
		})
		if err == nil {
			return result.(float64)
		}
		h.logger.WithError(err).Warn("Trained risk model inference failed, falling back to heuristic for this request")
	}

	score, err := h.fallback.Score(ctx, vector, prov)
	if err != nil {
		// The heuristic is a total function; this path is unreachable with
		// well-formed inputs but a neutral score beats a crash.
		h.logger.WithError(err).Error("Fallback heuristic failed")
		return 50
	}
	return score
}

func (h *Handle) scoreTrained(ctx context.Context, vector domain.FeatureVector, prov *domain.Provenance) (float64, error) {
	return h.trained.Score(ctx, vector, prov)
}

// TrainedLoaded reports whether the trained model is serving predictions.
// Triggers lazy initialization so health checks reflect the real state.
func (h *Handle) TrainedLoaded() bool {
	h.once.Do(h.init)
	return h.trained != nil
}
