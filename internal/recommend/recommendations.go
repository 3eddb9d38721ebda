// Package recommend maps risk tiers and selected biomarkers to tiered
// guidance text. This is static data plus a merge: tier-base items come
// first, biomarker-specific addenda are appended, within each of the three
// categories independently.
package recommend

import (
	"github.com/hamstring-risk-server/internal/domain"
)

// tierBase holds the base recommendation lists keyed by risk tier.
var tierBase = map[domain.RiskTier]domain.Recommendations{
	domain.RiskLow: {
		Immediate: []string{
			"Continue current training regimen with caution",
			"Maintain proper warm-up and cool-down routines",
			"Stay hydrated and maintain balanced nutrition",
			"Monitor for any unusual muscle soreness or tightness",
		},
		FollowUp: []string{
			"Re-test biomarkers in 2-3 weeks",
			"Consider preventive stretching exercises",
			"Ensure adequate sleep and recovery time",
		},
		Monitoring: []string{
			"Track training intensity and volume",
			"Log any discomfort or unusual fatigue",
			"Monthly biomarker monitoring recommended",
		},
	},
	domain.RiskModerate: {
		Immediate: []string{
			"Reduce training intensity by 25-30%",
			"Increase rest intervals between sessions",
			"Apply ice after training if discomfort present",
			"Avoid explosive movements and sprinting",
			"Consult with sports medicine professional",
		},
		FollowUp: []string{
			"Re-test biomarkers within 1 week",
			"Schedule physiotherapy assessment",
			"Implement targeted hamstring strengthening",
			"Review and adjust training load",
		},
		Monitoring: []string{
			"Daily check for pain, stiffness, or reduced flexibility",
			"Track recovery time between sessions",
			"Weekly biomarker monitoring recommended",
			"Log all symptoms and training modifications",
		},
	},
	domain.RiskHigh: {
		Immediate: []string{
			"Rest hamstring muscles for 24-48 hours",
			"Apply ice/compression if pain present",
			"Schedule sports medicine evaluation",
			"Reduce training intensity by 50%",
			"Avoid high-intensity sprinting or jumping",
		},
		FollowUp: []string{
			"Re-test biomarkers to monitor improvement within 3-5 days",
			"Consider physiotherapy assessment",
			"Implement targeted hamstring strengthening",
			"Review training load and recovery protocols",
		},
		Monitoring: []string{
			"Monitor for pain, tightness, or reduced flexibility",
			"Track daily hamstring comfort levels",
			"Log any discomfort during activities",
			"Weekly biomarker monitoring recommended",
		},
	},
	domain.RiskCritical: {
		Immediate: []string{
			"STOP all high-intensity training immediately",
			"Seek immediate sports medicine evaluation",
			"Complete rest for hamstring muscles (48-72 hours minimum)",
			"Apply RICE protocol (Rest, Ice, Compression, Elevation)",
			"Avoid ANY activities that stress hamstrings",
		},
		FollowUp: []string{
			"Medical examination within 24 hours",
			"Re-test biomarkers within 2-3 days",
			"MRI or ultrasound imaging may be necessary",
			"Develop comprehensive rehabilitation plan",
			"Work with physical therapist on recovery protocol",
		},
		Monitoring: []string{
			"Hourly pain and mobility checks initially",
			"Document all symptoms and changes",
			"Daily biomarker monitoring if possible",
			"Track response to rest and treatment",
			"Do not resume training without medical clearance",
		},
	},
}

// biomarkerAddenda holds recommendations specific to the selected
// biomarker. Biomarkers without an entry contribute nothing.
var biomarkerAddenda = map[string]domain.Recommendations{
	"lactate": {
		Immediate:  []string{"Elevated lactate indicates muscle fatigue - ensure adequate recovery"},
		FollowUp:   []string{"Consider lactate threshold training to improve clearance"},
		Monitoring: []string{"Track post-exercise lactate levels if possible"},
	},
	"cortisol": {
		Immediate:  []string{"Elevated cortisol suggests high stress - prioritize recovery and sleep"},
		FollowUp:   []string{"Implement stress management techniques (meditation, breathing exercises)"},
		Monitoring: []string{"Monitor sleep quality and overall stress levels"},
	},
	"protein": {
		Immediate: []string{"Elevated protein may indicate muscle damage - avoid intense exercise"},
		FollowUp:  []string{"Ensure adequate protein intake for muscle repair (1.6-2.2g/kg body weight)"},
	},
	"creatinine": {
		Immediate: []string{"Monitor hydration status carefully"},
		FollowUp:  []string{"Consider kidney function evaluation if levels remain elevated"},
	},
}

// ForAssessment merges the tier-base lists with the selected biomarker's
// addenda. Within each category, tier items come first and biomarker items
// are appended; biomarkers without addenda yield the base lists unchanged.
func ForAssessment(tier domain.RiskTier, prov *domain.Provenance) domain.Recommendations {
	base := tierBase[tier]
	addenda := biomarkerAddenda[prov.PrimaryBiomarker]

	return domain.Recommendations{
		Immediate:  mergeLists(base.Immediate, addenda.Immediate),
		FollowUp:   mergeLists(base.FollowUp, addenda.FollowUp),
		Monitoring: mergeLists(base.Monitoring, addenda.Monitoring),
	}
}

// mergeLists concatenates base then extra into a fresh slice so the static
// tables are never aliased or mutated.
func mergeLists(base, extra []string) []string {
	merged := make([]string, 0, len(base)+len(extra))
	merged = append(merged, base...)
	merged = append(merged, extra...)
	return merged
}
