// Package domain contains core business entities and types for hamstring
// injury risk assessment from multi-tissue biomarker panels.
//
// The assessment reduces a sparse set of saliva/sweat/urine biomarker
// readings to a fixed 7-feature vector for the risk model while keeping
// full provenance of which tissue and metabolite drove the selection.
package domain

import "errors"

// Tissue identifies a sampled body fluid type. Exactly three tissues are
// recognized; all tissue-keyed logic iterates TissueOrder so behavior never
// depends on map iteration order.
type Tissue string

const (
	Saliva Tissue = "saliva"
	Sweat  Tissue = "sweat"
	Urine  Tissue = "urine"
)

// TissueOrder is the canonical iteration order for tissues. Tissue selection
// tie-breaks resolve to the first-encountered tissue in this order.
var TissueOrder = [3]Tissue{Saliva, Sweat, Urine}

// IsValid reports whether the tissue is one of the recognized fluid types.
func (t Tissue) IsValid() bool {
	switch t {
	case Saliva, Sweat, Urine:
		return true
	default:
		return false
	}
}

// String returns the string representation of the tissue.
func (t Tissue) String() string {
	return string(t)
}

// RiskTier represents the step classification of a risk score.
type RiskTier string

const (
	RiskLow      RiskTier = "LOW"
	RiskModerate RiskTier = "MODERATE"
	RiskHigh     RiskTier = "HIGH"
	RiskCritical RiskTier = "CRITICAL"
)

// ClassifyRisk maps a rounded risk score to its tier. Boundaries are
// half-open on the low end: exactly 25 is MODERATE, exactly 75 is CRITICAL.
func ClassifyRisk(score float64) RiskTier {
	switch {
	case score < 25:
		return RiskLow
	case score < 50:
		return RiskModerate
	case score < 75:
		return RiskHigh
	default:
		return RiskCritical
	}
}

// IsValid reports whether the tier is one of the defined classifications.
func (r RiskTier) IsValid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh, RiskCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the risk tier.
func (r RiskTier) String() string {
	return string(r)
}

// Sentinel errors for the assessment pipeline.
var (
	// ErrNoUsableData indicates that no tissue in the payload contained a
	// single resolvable, numeric biomarker value. Recoverable at the request
	// boundary: it signals insufficient input, not a system fault.
	ErrNoUsableData = errors.New("no valid biomarker data provided")

	// ErrNoUsableMetabolite indicates that the selected tissue yielded no
	// scoreable metabolite. The tissue selector guarantees usability, so
	// this is an invariant violation between the two selection stages.
	ErrNoUsableMetabolite = errors.New("no valid metabolites in selected tissue")

	// ErrScorerUnavailable indicates the trained risk model could not be
	// loaded. Never surfaced to callers: the fallback heuristic substitutes.
	ErrScorerUnavailable = errors.New("trained risk scorer unavailable")

	// ErrUnknownBiomarker indicates a biomarker key with no reference entry.
	ErrUnknownBiomarker = errors.New("unknown biomarker")
)
