package service

import (
	"strconv"

	"github.com/hamstring-risk-server/internal/domain"
)

// ValidateBiomarkerPayload enforces the request boundary contract the
// pipeline trusts: every biomarker key must resolve to a reference entry
// for its tissue, every present value must be a finite number within
// 0.1×low – 10×high of the reference normal range, and at least one tissue
// must contain at least one valid value.
//
// Returns the full list of per-field validation errors; an empty list means
// the payload may enter the pipeline.
func ValidateBiomarkerPayload(payload *domain.BiomarkerPayload) []domain.ValidationError {
	var errs []domain.ValidationError
	hasData := false

	for _, tissue := range domain.TissueOrder {
		reading := payload.Reading(tissue)
		for _, biomarker := range orderedKeys(tissue, reading) {
			m := reading[biomarker]
			if m.Missing() {
				continue
			}

			hasData = true
			field := tissue.String() + "." + biomarker

			entry, ok := domain.LookupBiomarker(tissue, biomarker)
			if !ok {
				errs = append(errs, *domain.NewValidationError(field, "unknown biomarker", biomarker))
				continue
			}

			if !m.Valid {
				errs = append(errs, *domain.NewValidationError(field, "must be a number", m.Raw))
				continue
			}

			// Values far outside the normal range are almost certainly unit
			// or entry mistakes; allow a 10x margin either side.
			extendedMin := entry.NormalRange.Low * 0.1
			extendedMax := entry.NormalRange.High * 10
			if m.Value < extendedMin || m.Value > extendedMax {
				errs = append(errs, *domain.NewValidationError(
					field,
					"value is extremely out of range (expected roughly "+
						formatRange(entry.NormalRange)+" "+entry.Unit+")",
					m.Value,
				))
			}
		}
	}

	if !hasData {
		errs = append(errs, *domain.NewValidationError("", "no valid biomarker data provided", nil))
	}

	return errs
}

// orderedKeys returns the reading's biomarker keys, reference-declared
// order first so validation errors come out in a stable order, followed by
// any unknown keys.
func orderedKeys(tissue domain.Tissue, reading domain.TissueReading) []string {
	if len(reading) == 0 {
		return nil
	}

	keys := make([]string, 0, len(reading))
	seen := make(map[string]bool, len(reading))
	for _, biomarker := range domain.BiomarkerOrder(tissue) {
		if _, ok := reading[biomarker]; ok {
			keys = append(keys, biomarker)
			seen[biomarker] = true
		}
	}
	for biomarker := range reading {
		if !seen[biomarker] {
			keys = append(keys, biomarker)
		}
	}
	return keys
}

func formatRange(r domain.NormalRange) string {
	return strconv.FormatFloat(r.Low, 'f', -1, 64) + "-" + strconv.FormatFloat(r.High, 'f', -1, 64)
}
