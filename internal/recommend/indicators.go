package recommend

import (
	"fmt"

	"github.com/hamstring-risk-server/internal/domain"
)

// biomarkerIndicators describes what an abnormal reading of each biomarker
// means for the subject, used in the key-indicator sentence.
var biomarkerIndicators = map[string]string{
	"lactate":      "elevated lactate levels detected in your biomarkers, indicating significant muscle fatigue and increased hamstring injury risk",
	"cortisol":     "elevated cortisol levels detected, suggesting high stress and potential overtraining",
	"protein":      "elevated protein levels in urine, potentially indicating muscle damage",
	"creatinine":   "elevated creatinine levels, suggesting muscle breakdown",
	"testosterone": "abnormal testosterone levels, which may affect muscle recovery",
	"glucose":      "abnormal glucose levels, indicating potential metabolic stress",
	"sodium":       "abnormal sodium levels, suggesting electrolyte imbalance",
	"iga":          "abnormal immunoglobulin A levels, potentially indicating immune stress",
}

// KeyIndicators builds the human-readable sentence describing which
// tissue and biomarker drove the assessment.
func KeyIndicators(prov *domain.Provenance) string {
	description, ok := biomarkerIndicators[prov.PrimaryBiomarker]
	if !ok {
		description = fmt.Sprintf("abnormal %s levels detected in %s biomarkers",
			prov.PrimaryBiomarker, prov.PrimaryTissue)
	}

	return fmt.Sprintf("Analysis of your %s biomarkers shows %s.", prov.PrimaryTissue, description)
}
