package service

import (
	"github.com/hamstring-risk-server/internal/domain"
)

// EstimateConfidence derives a confidence percentage from data quality
// signals in the provenance plus the score itself. The scorer exposes no
// native uncertainty, so confidence reflects how much and how relevant the
// input data was: sweat and lactate selections raise it, broad tissue
// coverage raises it, extreme scores lower it. Result is clamped to
// [60, 95].
func EstimateConfidence(prov *domain.Provenance, riskScore float64) int {
	confidence := 70

	switch prov.PrimaryTissue {
	case domain.Sweat:
		confidence += 10
	case domain.Urine:
		confidence += 5
	}

	if prov.PrimaryBiomarker == "lactate" {
		confidence += 10
	}

	if len(prov.TissueScores) >= 2 {
		confidence += 5
	}
	if len(prov.TissueScores) >= 3 {
		confidence += 2
	}

	// Extreme scores carry less certainty.
	if riskScore < 10 || riskScore > 90 {
		confidence -= 5
	}

	if confidence < 60 {
		confidence = 60
	}
	if confidence > 95 {
		confidence = 95
	}

	return confidence
}
