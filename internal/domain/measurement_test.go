package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasurementUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue float64
		wantValid bool
		wantRaw   string
	}{
		{"JSON number", `3.2`, 3.2, true, "3.2"},
		{"Integer number", `15`, 15, true, "15"},
		{"Numeric string", `"3.2"`, 3.2, true, "3.2"},
		{"Numeric string with spaces", `" 7.5 "`, 7.5, true, "7.5"},
		{"Empty string means missing", `""`, 0, false, ""},
		{"Null means missing", `null`, 0, false, ""},
		{"Non-numeric string kept for validation", `"abc"`, 0, false, "abc"},
		{"Negative number", `-2.5`, -2.5, true, "-2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Measurement
			require.NoError(t, json.Unmarshal([]byte(tt.input), &m))
			assert.Equal(t, tt.wantValid, m.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, m.Value)
			}
			assert.Equal(t, tt.wantRaw, m.Raw)
		})
	}
}

func TestMeasurementMissing(t *testing.T) {
	var absent Measurement
	assert.True(t, absent.Missing())

	nonNumeric := Measurement{Raw: "abc"}
	assert.False(t, nonNumeric.Missing())

	present := Measurement{Value: 1.5, Valid: true, Raw: "1.5"}
	assert.False(t, present.Missing())
}

func TestMeasurementMarshalJSON(t *testing.T) {
	present, err := json.Marshal(Measurement{Value: 3.2, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, "3.2", string(present))

	missing, err := json.Marshal(Measurement{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(missing))
}

func TestBiomarkerPayloadDecode(t *testing.T) {
	body := `{
		"sweat": {"lactate": 8.0, "sodium": "1.2", "glucose": ""},
		"saliva": {"cortisol": null},
		"activity": {"rms_feat": 0.7, "skewness": -0.2}
	}`

	var payload BiomarkerPayload
	require.NoError(t, json.Unmarshal([]byte(body), &payload))

	assert.True(t, payload.Sweat["lactate"].Valid)
	assert.Equal(t, 8.0, payload.Sweat["lactate"].Value)
	assert.True(t, payload.Sweat["sodium"].Valid)
	assert.Equal(t, 1.2, payload.Sweat["sodium"].Value)
	assert.True(t, payload.Sweat["glucose"].Missing())
	assert.True(t, payload.Saliva["cortisol"].Missing())
	assert.Nil(t, payload.Urine)

	require.NotNil(t, payload.Activity)
	require.NotNil(t, payload.Activity.RMS)
	assert.Equal(t, 0.7, *payload.Activity.RMS)
	require.NotNil(t, payload.Activity.Skewness)
	assert.Equal(t, -0.2, *payload.Activity.Skewness)
	assert.Nil(t, payload.Activity.ZeroCrossings)
	assert.Nil(t, payload.Activity.WaveformLength)
}

func TestTissueReadingHasValue(t *testing.T) {
	assert.False(t, TissueReading(nil).HasValue())
	assert.False(t, TissueReading{"lactate": {}}.HasValue())
	assert.True(t, TissueReading{"lactate": {Value: 2.0, Valid: true}}.HasValue())
}

func TestPayloadReading(t *testing.T) {
	payload := &BiomarkerPayload{
		Sweat: TissueReading{"lactate": {Value: 2.0, Valid: true}},
	}
	assert.NotNil(t, payload.Reading(Sweat))
	assert.Nil(t, payload.Reading(Saliva))
	assert.Nil(t, payload.Reading(Tissue("plasma")))
}

func TestFeatureVectorValues(t *testing.T) {
	v := FeatureVector{
		MolecularWeight: 89.07,
		TissueSweat:     1,
		RMS:             0.5,
		ZeroCrossings:   12,
		Skewness:        -0.1,
		WaveformLength:  3.4,
	}
	assert.Equal(t, [7]float64{89.07, 1, 0, 0.5, 12, -0.1, 3.4}, v.Values())
}
