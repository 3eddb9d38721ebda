package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamstring-risk-server/internal/domain"
)

func provenance(tissue domain.Tissue, biomarker string, tissueCount int) *domain.Provenance {
	scores := make(map[domain.Tissue]domain.TissueScore, tissueCount)
	for i := 0; i < tissueCount && i < len(domain.TissueOrder); i++ {
		scores[domain.TissueOrder[i]] = domain.TissueScore{}
	}
	return &domain.Provenance{
		PrimaryTissue:    tissue,
		PrimaryBiomarker: biomarker,
		TissueScores:     scores,
	}
}

func TestEstimateConfidence(t *testing.T) {
	tests := []struct {
		name     string
		prov     *domain.Provenance
		score    float64
		expected int
	}{
		{"Saliva single tissue baseline", provenance(domain.Saliva, "cortisol", 1), 50, 70},
		{"Urine adds five", provenance(domain.Urine, "creatinine", 1), 50, 75},
		{"Sweat adds ten", provenance(domain.Sweat, "glucose", 1), 50, 80},
		{"Sweat plus lactate", provenance(domain.Sweat, "lactate", 1), 50, 90},
		{"Two tissues add five more", provenance(domain.Sweat, "lactate", 2), 50, 95},
		{"Three tissues clamp at ninety-five", provenance(domain.Sweat, "lactate", 3), 50, 95},
		{"All tissues at midpoint", provenance(domain.Sweat, "sodium", 3), 12, 87},
		{"Extremely low score loses five", provenance(domain.Saliva, "cortisol", 1), 5, 65},
		{"Extremely high score loses five", provenance(domain.Sweat, "lactate", 1), 95, 85},
		{"Boundary score ten keeps full confidence", provenance(domain.Saliva, "cortisol", 1), 10, 70},
		{"Boundary score ninety keeps full confidence", provenance(domain.Saliva, "cortisol", 1), 90, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateConfidence(tt.prov, tt.score))
		})
	}
}

func TestEstimateConfidenceBounds(t *testing.T) {
	// Sweep every combination to assert the [60, 95] clamp holds.
	for _, tissue := range domain.TissueOrder {
		for _, biomarker := range domain.BiomarkerOrder(tissue) {
			for count := 1; count <= 3; count++ {
				for _, score := range []float64{0, 5, 10, 50, 90, 95, 100} {
					c := EstimateConfidence(provenance(tissue, biomarker, count), score)
					assert.GreaterOrEqual(t, c, 60)
					assert.LessOrEqual(t, c, 95)
				}
			}
		}
	}
}
