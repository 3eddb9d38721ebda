package service

import (
	"github.com/sirupsen/logrus"

	"github.com/hamstring-risk-server/internal/domain"
)

// MetaboliteSelector picks the single most diagnostically relevant
// biomarker within an already-selected tissue.
type MetaboliteSelector struct {
	logger *logrus.Logger
}

// NewMetaboliteSelector creates a new metabolite selector
func NewMetaboliteSelector(logger *logrus.Logger) *MetaboliteSelector {
	return &MetaboliteSelector{logger: logger}
}

// Select scores every valid biomarker in the reading by
// importance × deviation and returns the biomarker with the strictly
// greatest score, its molecular weight, and the full per-biomarker score
// map. Ties resolve to the first-encountered biomarker in the reference
// table's declared key order for the tissue.
//
// Returns domain.ErrNoUsableMetabolite when nothing scores. The tissue
// selector guarantees at least one usable reading for the tissue it picked,
// so an empty result here is an invariant violation, not an input problem.
func (s *MetaboliteSelector) Select(tissue domain.Tissue, reading domain.TissueReading) (string, float64, map[string]domain.MetaboliteScore, error) {
	scores := make(map[string]domain.MetaboliteScore)

	var (
		primary  string
		best     domain.MetaboliteScore
		selected bool
	)

	for _, biomarker := range domain.BiomarkerOrder(tissue) {
		m, present := reading[biomarker]
		if !present || !m.Valid {
			continue
		}

		entry, ok := domain.LookupBiomarker(tissue, biomarker)
		if !ok {
			continue
		}

		deviation := entry.NormalRange.Deviation(m.Value)
		score := domain.MetaboliteScore{
			Score:           entry.Importance * deviation,
			Value:           m.Value,
			MolecularWeight: entry.MolecularWeight,
			Importance:      entry.Importance,
			Deviation:       deviation,
			NormalRange:     entry.NormalRange,
		}
		scores[biomarker] = score

		if !selected || score.Score > best.Score {
			primary = biomarker
			best = score
			selected = true
		}
	}

	if !selected {
		s.logger.WithField("tissue", tissue).Error("Selected tissue yielded no usable metabolite; selection stages disagree")
		return "", 0, nil, domain.ErrNoUsableMetabolite
	}

	return primary, best.MolecularWeight, scores, nil
}
