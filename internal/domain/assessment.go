package domain

// TissueScore captures why a tissue ranked the way it did during tissue
// selection. Computed fresh per request, never persisted.
type TissueScore struct {
	// Composite = Elevation + Relevance + Completeness.
	Composite float64 `json:"score"`
	// Elevation is the average deviation across valid biomarkers, in [0,2].
	Elevation float64 `json:"elevation"`
	// Relevance is the fixed clinical relevance weight for the tissue.
	Relevance float64 `json:"relevance"`
	// Completeness is the data-completeness bonus in [0,0.3].
	Completeness float64 `json:"completeness"`
	// ValidBiomarkers counts the readings that contributed.
	ValidBiomarkers int `json:"valid_biomarkers"`
}

// MetaboliteScore captures why a biomarker ranked the way it did during
// metabolite selection within the chosen tissue.
type MetaboliteScore struct {
	// Score = Importance × Deviation.
	Score           float64     `json:"score"`
	Value           float64     `json:"value"`
	MolecularWeight float64     `json:"molecular_weight"`
	Importance      float64     `json:"importance"`
	Deviation       float64     `json:"deviation"`
	NormalRange     NormalRange `json:"normal_range"`
}

// Provenance records which tissue and biomarker the pipeline selected and
// the full scoring detail behind the selection. It is constructed once per
// request, passed downstream read-only for explainability and
// recommendations, and discarded after the response is built. The scorer's
// numeric core never sees it.
type Provenance struct {
	PrimaryTissue    Tissue                     `json:"primary_tissue"`
	PrimaryBiomarker string                     `json:"primary_biomarker"`
	TissueScores     map[Tissue]TissueScore     `json:"tissue_scores"`
	MetaboliteScores map[string]MetaboliteScore `json:"metabolite_scores"`
	MolecularWeight  float64                    `json:"molecular_weight"`
}

// FeatureVector is the fixed model contract: exactly 7 named numeric
// fields. Shape and field identity never vary; only the values do. The two
// tissue flags are a baseline-relative encoding derived from the selected
// tissue (saliva is the implicit reference category), so they can never
// legally both be 1.
type FeatureVector struct {
	MolecularWeight float64 `json:"mw"`
	TissueSweat     float64 `json:"tissue_sweat"`
	TissueUrine     float64 `json:"tissue_urine"`
	RMS             float64 `json:"rms_feat"`
	ZeroCrossings   float64 `json:"zero_crossings"`
	Skewness        float64 `json:"skewness"`
	WaveformLength  float64 `json:"waveform_length"`
}

// Values returns the features in the model's canonical input order.
func (v FeatureVector) Values() [7]float64 {
	return [7]float64{
		v.MolecularWeight,
		v.TissueSweat,
		v.TissueUrine,
		v.RMS,
		v.ZeroCrossings,
		v.Skewness,
		v.WaveformLength,
	}
}

// Recommendations holds the three named guidance lists returned to callers.
type Recommendations struct {
	Immediate  []string `json:"immediate"`
	FollowUp   []string `json:"followUp"`
	Monitoring []string `json:"monitoring"`
}

// AssessmentResult is the downstream boundary produced by the core and
// consumed by the presentation layer.
type AssessmentResult struct {
	RiskScore       int             `json:"riskScore"`
	RiskLevel       RiskTier        `json:"riskLevel"`
	Confidence      int             `json:"confidence"`
	KeyIndicators   string          `json:"keyIndicators"`
	Recommendations Recommendations `json:"recommendations"`
}
