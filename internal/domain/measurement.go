package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Measurement is a single biomarker reading. Upstream clients send values
// as JSON numbers, numeric strings, empty strings, or null; empty and null
// both mean "not measured". Valid reports whether a finite numeric value
// is present.
type Measurement struct {
	Value float64
	Valid bool
	// Raw preserves the original token for validation error messages.
	Raw string
}

// UnmarshalJSON accepts numbers, numeric strings, "" and null. Non-numeric
// strings are kept with Valid=false so the validator can report them
// per-field instead of failing the whole payload decode.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*m = Measurement{}
		return nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*m = Measurement{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			*m = Measurement{Raw: s}
			return nil
		}
		*m = Measurement{Value: v, Valid: true, Raw: s}
		return nil
	}

	var v float64
	if err := json.Unmarshal(trimmed, &v); err != nil {
		*m = Measurement{Raw: string(trimmed)}
		return nil
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		*m = Measurement{Raw: string(trimmed)}
		return nil
	}
	*m = Measurement{Value: v, Valid: true, Raw: string(trimmed)}
	return nil
}

// MarshalJSON renders the measurement back as a number, or null when unset.
func (m Measurement) MarshalJSON() ([]byte, error) {
	if !m.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(m.Value)
}

// Missing reports whether the reading was absent or empty (as opposed to
// present but non-numeric).
func (m Measurement) Missing() bool {
	return !m.Valid && m.Raw == ""
}

// TissueReading maps biomarker names to their readings for one tissue.
type TissueReading map[string]Measurement

// HasValue reports whether at least one reading carries a numeric value.
func (r TissueReading) HasValue() bool {
	for _, m := range r {
		if m.Valid {
			return true
		}
	}
	return false
}

// BiomarkerPayload is the upstream request boundary: per-tissue biomarker
// readings plus optional muscle-activity feature overrides.
type BiomarkerPayload struct {
	Saliva   TissueReading      `json:"saliva,omitempty"`
	Sweat    TissueReading      `json:"sweat,omitempty"`
	Urine    TissueReading      `json:"urine,omitempty"`
	Activity *ActivityOverrides `json:"activity,omitempty"`
}

// Reading returns the reading map for a tissue, nil when absent.
func (p *BiomarkerPayload) Reading(tissue Tissue) TissueReading {
	switch tissue {
	case Saliva:
		return p.Saliva
	case Sweat:
		return p.Sweat
	case Urine:
		return p.Urine
	default:
		return nil
	}
}

// ActivityOverrides carries optional caller-supplied muscle-activity
// features. Each field merges independently into the feature vector;
// absent fields keep the 0.0 default.
type ActivityOverrides struct {
	RMS            *float64 `json:"rms_feat,omitempty"`
	ZeroCrossings  *float64 `json:"zero_crossings,omitempty"`
	Skewness       *float64 `json:"skewness,omitempty"`
	WaveformLength *float64 `json:"waveform_length,omitempty"`
}
