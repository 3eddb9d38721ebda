package service

import (
	"github.com/hamstring-risk-server/internal/domain"
)

// AssembleFeatures combines the selection outputs and optional activity
// overrides into the fixed 7-field model input vector. Deterministic, no
// branching on uncertain data: the tissue flags are a fixed lookup on the
// selected tissue and activity features merge per-field over 0.0 defaults.
func AssembleFeatures(tissue domain.Tissue, molecularWeight float64, activity *domain.ActivityOverrides) domain.FeatureVector {
	vector := domain.FeatureVector{
		MolecularWeight: molecularWeight,
	}

	// Baseline-relative tissue encoding: saliva is the implicit reference
	// category (0,0), so the two flags can never both be set.
	switch tissue {
	case domain.Sweat:
		vector.TissueSweat = 1
	case domain.Urine:
		vector.TissueUrine = 1
	case domain.Saliva:
		// baseline
	}

	if activity != nil {
		if activity.RMS != nil {
			vector.RMS = *activity.RMS
		}
		if activity.ZeroCrossings != nil {
			vector.ZeroCrossings = *activity.ZeroCrossings
		}
		if activity.Skewness != nil {
			vector.Skewness = *activity.Skewness
		}
		if activity.WaveformLength != nil {
			vector.WaveformLength = *activity.WaveformLength
		}
	}

	return vector
}
