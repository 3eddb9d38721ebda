package domain

// NormalRange is the clinically normal interval for a biomarker.
// Reference data guarantees Low < High.
type NormalRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Mid returns the midpoint of the range.
func (r NormalRange) Mid() float64 {
	return (r.Low + r.High) / 2
}

// Deviation computes how far a value sits from the range midpoint,
// normalized by the half-range and capped at 2.0. A value at the midpoint
// scores 0, a value at either boundary scores 1.0, and values at 200% of
// the half-range or beyond saturate at 2.0 so outliers cannot dominate
// downstream sums unboundedly.
func (r NormalRange) Deviation(value float64) float64 {
	mid := r.Mid()
	halfRange := (r.High - r.Low) / 2

	deviation := abs(value-mid) / halfRange
	if deviation > 2.0 {
		return 2.0
	}
	return deviation
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ReferenceEntry describes one biomarker within one tissue: its molecular
// weight, clinically normal range, and importance weight for injury
// prediction. Entries are immutable reference data.
type ReferenceEntry struct {
	Name            string      `json:"name"`
	MolecularWeight float64     `json:"molecular_weight"` // Daltons
	Formula         string      `json:"formula"`
	NormalRange     NormalRange `json:"normal_range"`
	Unit            string      `json:"unit"`
	Importance      float64     `json:"importance"` // 0-1 weight for injury prediction
	Description     string      `json:"description"`
}

// referenceTable maps (tissue, biomarker) to its reference entry. Every
// biomarker key appearing in input must resolve here or be rejected by
// validation before the pipeline runs.
var referenceTable = map[Tissue]map[string]ReferenceEntry{
	Saliva: {
		"cortisol": {
			Name:            "Cortisol",
			MolecularWeight: 362.46,
			Formula:         "C21H30O5",
			NormalRange:     NormalRange{Low: 0.1, High: 15.0},
			Unit:            "μg/dL",
			Importance:      0.8,
			Description:     "Stress hormone indicator",
		},
		"testosterone": {
			Name:            "Testosterone",
			MolecularWeight: 288.42,
			Formula:         "C19H28O2",
			NormalRange:     NormalRange{Low: 10.0, High: 200.0},
			Unit:            "pg/mL",
			Importance:      0.6,
			Description:     "Anabolic hormone, muscle recovery",
		},
		"iga": {
			Name:            "Immunoglobulin A",
			MolecularWeight: 385.0,
			Formula:         "Variable",
			NormalRange:     NormalRange{Low: 10.0, High: 500.0},
			Unit:            "μg/mL",
			Importance:      0.5,
			Description:     "Immune function indicator",
		},
	},
	Sweat: {
		"sodium": {
			Name:            "Sodium",
			MolecularWeight: 22.99,
			Formula:         "Na+",
			NormalRange:     NormalRange{Low: 0.5, High: 3.0},
			Unit:            "mmol/L",
			Importance:      0.4,
			Description:     "Electrolyte balance",
		},
		"lactate": {
			Name:            "Lactate",
			MolecularWeight: 89.07,
			Formula:         "C3H5O3-",
			NormalRange:     NormalRange{Low: 0.5, High: 4.0},
			Unit:            "mmol/L",
			Importance:      1.0, // highest importance for injury prediction
			Description:     "Muscle fatigue and metabolic stress indicator",
		},
		"glucose": {
			Name:            "Glucose",
			MolecularWeight: 180.16,
			Formula:         "C6H12O6",
			NormalRange:     NormalRange{Low: 50.0, High: 150.0},
			Unit:            "mg/dL",
			Importance:      0.7,
			Description:     "Energy metabolism",
		},
	},
	Urine: {
		"creatinine": {
			Name:            "Creatinine",
			MolecularWeight: 113.12,
			Formula:         "C4H7N3O",
			NormalRange:     NormalRange{Low: 20.0, High: 400.0},
			Unit:            "mg/dL",
			Importance:      0.6,
			Description:     "Muscle breakdown product",
		},
		"protein": {
			Name:            "Protein",
			MolecularWeight: 66500.0, // approximate, albumin
			Formula:         "Variable",
			NormalRange:     NormalRange{Low: 0.0, High: 20.0},
			Unit:            "mg/dL",
			Importance:      0.7,
			Description:     "Muscle damage indicator",
		},
		"ph": {
			Name:            "pH",
			MolecularWeight: 1.0, // not applicable, dummy value
			Formula:         "H+",
			NormalRange:     NormalRange{Low: 4.5, High: 8.0},
			Unit:            "pH",
			Importance:      0.3,
			Description:     "Acid-base balance",
		},
	},
}

// referenceOrder is the declared key order per tissue. Metabolite selection
// tie-breaks resolve to the first-encountered biomarker in this order; Go
// maps don't preserve declaration order, so the order is explicit.
var referenceOrder = map[Tissue][]string{
	Saliva: {"cortisol", "testosterone", "iga"},
	Sweat:  {"sodium", "lactate", "glucose"},
	Urine:  {"creatinine", "protein", "ph"},
}

// tissueRelevance holds the fixed clinical relevance weight per tissue for
// athletic injury prediction.
var tissueRelevance = map[Tissue]float64{
	Sweat:  1.0, // most relevant for athletic injury prediction
	Urine:  0.7, // moderately relevant
	Saliva: 0.5, // less relevant but still useful
}

// LookupBiomarker resolves a (tissue, biomarker) pair to its reference
// entry. The second return is false for unknown tissues or biomarkers.
func LookupBiomarker(tissue Tissue, biomarker string) (ReferenceEntry, bool) {
	entries, ok := referenceTable[tissue]
	if !ok {
		return ReferenceEntry{}, false
	}
	entry, ok := entries[biomarker]
	return entry, ok
}

// BiomarkerOrder returns the declared biomarker key order for a tissue.
func BiomarkerOrder(tissue Tissue) []string {
	return referenceOrder[tissue]
}

// BiomarkerCount returns the number of biomarkers defined for a tissue,
// used as the denominator of the data-completeness bonus.
func BiomarkerCount(tissue Tissue) int {
	return len(referenceTable[tissue])
}

// TissueRelevance returns the fixed clinical relevance weight for a tissue.
// Unknown tissues fall back to the saliva baseline.
func TissueRelevance(tissue Tissue) float64 {
	if w, ok := tissueRelevance[tissue]; ok {
		return w
	}
	return 0.5
}

// ReferenceTable returns a copy of the full reference table keyed by tissue
// name, for the read-only listing endpoint.
func ReferenceTable() map[string]map[string]ReferenceEntry {
	out := make(map[string]map[string]ReferenceEntry, len(referenceTable))
	for tissue, entries := range referenceTable {
		tissueOut := make(map[string]ReferenceEntry, len(entries))
		for name, entry := range entries {
			tissueOut[name] = entry
		}
		out[tissue.String()] = tissueOut
	}
	return out
}
