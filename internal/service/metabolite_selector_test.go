package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamstring-risk-server/internal/domain"
)

func TestMetaboliteSelectorHighestScoreWins(t *testing.T) {
	selector := NewMetaboliteSelector(testLogger())

	reading := domain.TissueReading{
		"lactate": num(8.0),  // 1.0 importance × 2.0 deviation = 2.0
		"sodium":  num(1.75), // midpoint, score 0
		"glucose": num(100),  // midpoint, score 0
	}

	biomarker, mw, scores, err := selector.Select(domain.Sweat, reading)
	require.NoError(t, err)

	assert.Equal(t, "lactate", biomarker)
	assert.Equal(t, 89.07, mw)
	require.Len(t, scores, 3)
	assert.InDelta(t, 2.0, scores["lactate"].Score, 1e-9)
	assert.InDelta(t, 0.0, scores["sodium"].Score, 1e-9)
	assert.Equal(t, 8.0, scores["lactate"].Value)
	assert.Equal(t, 1.0, scores["lactate"].Importance)
}

func TestMetaboliteSelectorTieBreaksToDeclaredOrder(t *testing.T) {
	selector := NewMetaboliteSelector(testLogger())

	// All three sweat biomarkers sit exactly at their midpoints, so every
	// score is 0. The first biomarker in the declared reference order for
	// sweat (sodium) must win.
	reading := domain.TissueReading{
		"sodium":  num(1.75),
		"lactate": num(2.25),
		"glucose": num(100),
	}

	biomarker, mw, _, err := selector.Select(domain.Sweat, reading)
	require.NoError(t, err)

	assert.Equal(t, "sodium", biomarker)
	assert.Equal(t, 22.99, mw)
}

func TestMetaboliteSelectorSkipsInvalidAndUnknown(t *testing.T) {
	selector := NewMetaboliteSelector(testLogger())

	reading := domain.TissueReading{
		"lactate":  {Raw: "abc"},
		"caffeine": num(5.0),
		"glucose":  num(140),
	}

	biomarker, _, scores, err := selector.Select(domain.Sweat, reading)
	require.NoError(t, err)

	assert.Equal(t, "glucose", biomarker)
	assert.Len(t, scores, 1)
}

func TestMetaboliteSelectorNoUsableMetabolite(t *testing.T) {
	selector := NewMetaboliteSelector(testLogger())

	tests := []struct {
		name    string
		reading domain.TissueReading
	}{
		{"Empty reading", domain.TissueReading{}},
		{"Nil reading", nil},
		{"Only invalid values", domain.TissueReading{"lactate": {Raw: "abc"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := selector.Select(domain.Sweat, tt.reading)
			assert.ErrorIs(t, err, domain.ErrNoUsableMetabolite)
		})
	}
}
