package model

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/hamstring-risk-server/internal/domain"
)

// linearWeights is the on-disk format of the trained model: a logistic
// model over the 7 canonical features.
type linearWeights struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
	Version string    `json:"version"`
}

// LinearScorer is the trained risk scorer. It is opaque to the pipeline:
// vector in, probability out, consuming only the 7-field vector and never
// the provenance. Immutable after load, safe for concurrent use.
type LinearScorer struct {
	weights [7]float64
	bias    float64
	version string
}

// LoadLinearScorer reads model weights from the given path. Returns
// domain.ErrScorerUnavailable (wrapped) when the file is absent or
// malformed so callers can absorb the failure and fall back.
func LoadLinearScorer(path string) (*LinearScorer, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no model path configured", domain.ErrScorerUnavailable)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScorerUnavailable, err)
	}

	var w linearWeights
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("%w: malformed weights file: %v", domain.ErrScorerUnavailable, err)
	}
	if len(w.Weights) != 7 {
		return nil, fmt.Errorf("%w: expected 7 weights, got %d", domain.ErrScorerUnavailable, len(w.Weights))
	}

	scorer := &LinearScorer{bias: w.Bias, version: w.Version}
	copy(scorer.weights[:], w.Weights)
	return scorer, nil
}

// Score implements the Scorer interface: sigmoid of the weighted feature
// sum, scaled to a 0-100 percentage.
func (s *LinearScorer) Score(_ context.Context, vector domain.FeatureVector, _ *domain.Provenance) (float64, error) {
	values := vector.Values()

	z := s.bias
	for i, v := range values {
		z += s.weights[i] * v
	}

	probability := 1 / (1 + math.Exp(-z))
	if math.IsNaN(probability) {
		return 0, fmt.Errorf("risk model produced NaN for input %v", values)
	}

	return probability * 100, nil
}

// Version returns the loaded model's version label.
func (s *LinearScorer) Version() string {
	return s.version
}
