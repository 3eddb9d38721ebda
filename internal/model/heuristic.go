package model

import (
	"context"
	"math/rand"

	"github.com/hamstring-risk-server/internal/domain"
)

// HeuristicScorer is the always-available fallback risk scorer. It is a
// first-class implementation, not an error path: whenever the trained
// model is absent or failing, every request is served by this heuristic
// with an unchanged external contract.
//
// The score combines a molecular-weight base (smaller metabolites like
// lactate indicate higher metabolic stress), a tissue contribution derived
// from the selected tissue's flags, the selected tissue's average
// deviation, and a small activity-signal bump, plus a symmetric random
// perturbation. Deterministic modulo that explicit perturbation.
type HeuristicScorer struct {
	// noise returns the perturbation added to the deterministic score,
	// uniform in [-3, 3] by default. Injected so tests can pin it.
	noise func() float64
}

// NewHeuristicScorer creates a heuristic scorer with the default
// randomness source.
func NewHeuristicScorer() *HeuristicScorer {
	return &HeuristicScorer{
		noise: func() float64 { return rand.Float64()*6 - 3 },
	}
}

// NewHeuristicScorerWithNoise creates a heuristic scorer with an injected
// perturbation source, for reproducible testing.
func NewHeuristicScorerWithNoise(noise func() float64) *HeuristicScorer {
	return &HeuristicScorer{noise: noise}
}

// Score implements the Scorer interface. The result is clamped to [5, 95].
func (h *HeuristicScorer) Score(_ context.Context, vector domain.FeatureVector, prov *domain.Provenance) (float64, error) {
	total := mwScore(vector.MolecularWeight)
	total += tissueScore(vector)
	total += elevationScore(prov)

	// Higher RMS activity suggests muscle fatigue.
	if vector.RMS > 0.6 {
		total += 5
	}

	total += h.noise()

	if total < 5 {
		total = 5
	}
	if total > 95 {
		total = 95
	}

	return total, nil
}

// mwScore buckets the selected metabolite's molecular weight. Smaller
// molecules typically indicate higher metabolic stress.
func mwScore(mw float64) float64 {
	switch {
	case mw < 100:
		return 40
	case mw < 200:
		return 30
	case mw < 400:
		return 20
	default:
		return 15
	}
}

// tissueScore reads the baseline-relative tissue flags. The flags are
// always derived from the one selected tissue, never supplied
// independently, so at most one can be set.
func tissueScore(vector domain.FeatureVector) float64 {
	switch {
	case vector.TissueSweat == 1:
		return 15 // sweat biomarkers most indicative for muscle injury
	case vector.TissueUrine == 1:
		return 10
	default:
		return 5 // saliva baseline
	}
}

// elevationScore converts the selected tissue's average deviation (0-2)
// into a risk contribution (0-30).
func elevationScore(prov *domain.Provenance) float64 {
	if prov == nil {
		return 0
	}
	score, ok := prov.TissueScores[prov.PrimaryTissue]
	if !ok {
		return 0
	}
	return score.Elevation * 15
}
