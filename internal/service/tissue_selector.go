// Package service implements the biomarker reduction pipeline: payload
// validation, tissue and metabolite selection, feature assembly, and the
// assessment orchestration around the risk scorer.
package service

import (
	"github.com/sirupsen/logrus"

	"github.com/hamstring-risk-server/internal/domain"
)

// TissueSelector ranks the tissues present in a payload and picks the
// single most diagnostically relevant one.
type TissueSelector struct {
	logger *logrus.Logger
}

// NewTissueSelector creates a new tissue selector
func NewTissueSelector(logger *logrus.Logger) *TissueSelector {
	return &TissueSelector{logger: logger}
}

// Select scores every tissue that carries at least one usable reading and
// returns the tissue with the strictly greatest composite score, its score,
// and the full per-tissue score map. Composite = average deviation (0-2) +
// fixed tissue relevance (0-1) + data completeness bonus (0-0.3).
//
// Ties resolve to the first-encountered tissue in domain.TissueOrder
// (saliva, sweat, urine); the fixed list is iterated so selection never
// depends on map ordering. Returns domain.ErrNoUsableData when no tissue
// produces a usable score.
func (s *TissueSelector) Select(payload *domain.BiomarkerPayload) (domain.Tissue, domain.TissueScore, map[domain.Tissue]domain.TissueScore, error) {
	scores := make(map[domain.Tissue]domain.TissueScore)

	var (
		primary  domain.Tissue
		best     domain.TissueScore
		selected bool
	)

	for _, tissue := range domain.TissueOrder {
		reading := payload.Reading(tissue)
		if len(reading) == 0 || !reading.HasValue() {
			continue
		}

		score, ok := s.scoreTissue(tissue, reading)
		if !ok {
			continue
		}
		scores[tissue] = score

		if !selected || score.Composite > best.Composite {
			primary = tissue
			best = score
			selected = true
		}
	}

	if !selected {
		return "", domain.TissueScore{}, nil, domain.ErrNoUsableData
	}

	return primary, best, scores, nil
}

// scoreTissue computes the composite score for one tissue. Tissues with no
// resolvable numeric readings are excluded from consideration entirely.
func (s *TissueSelector) scoreTissue(tissue domain.Tissue, reading domain.TissueReading) (domain.TissueScore, bool) {
	var (
		deviationSum float64
		validCount   int
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

		deviationSum += entry.NormalRange.Deviation(m.Value)
		validCount++
	}

	// Readings whose keys have no reference entry contribute nothing.
	// Validation should already have rejected them, so seeing one here
	// points at an integration bug between the two layers.
	for biomarker, m := range reading {
		if !m.Valid {
			continue
		}
		if _, ok := domain.LookupBiomarker(tissue, biomarker); !ok {
			s.logger.WithFields(logrus.Fields{
				"tissue":    tissue,
				"biomarker": biomarker,
			}).Warn("Unresolvable biomarker reached tissue selection; validation should have rejected it")
		}
	}

	if validCount == 0 {
		return domain.TissueScore{}, false
	}

	elevation := deviationSum / float64(validCount)
	relevance := domain.TissueRelevance(tissue)
	completeness := float64(validCount) / float64(domain.BiomarkerCount(tissue)) * 0.3

	return domain.TissueScore{
		Composite:       elevation + relevance + completeness,
		Elevation:       elevation,
		Relevance:       relevance,
		Completeness:    completeness,
		ValidBiomarkers: validCount,
	}, true
}
