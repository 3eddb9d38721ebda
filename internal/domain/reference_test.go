package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviation(t *testing.T) {
	r := NormalRange{Low: 0.5, High: 4.0}

	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"Midpoint scores zero", 2.25, 0},
		{"Low boundary scores one", 0.5, 1.0},
		{"High boundary scores one", 4.0, 1.0},
		{"Beyond 200% saturates at two", 8.0, 2.0},
		{"Far below also saturates", -10.0, 2.0},
		{"Half way to boundary", 3.125, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, r.Deviation(tt.value), 1e-9)
		})
	}
}

func TestDeviationBounds(t *testing.T) {
	// Deviation stays inside [0,2] for every reference range and a spread
	// of probe values around it.
	for _, tissue := range TissueOrder {
		for _, biomarker := range BiomarkerOrder(tissue) {
			entry, ok := LookupBiomarker(tissue, biomarker)
			require.True(t, ok)

			probes := []float64{
				entry.NormalRange.Low * 0.1,
				entry.NormalRange.Low,
				entry.NormalRange.Mid(),
				entry.NormalRange.High,
				entry.NormalRange.High * 10,
			}
			for _, v := range probes {
				d := entry.NormalRange.Deviation(v)
				assert.GreaterOrEqual(t, d, 0.0, "%s.%s value %v", tissue, biomarker, v)
				assert.LessOrEqual(t, d, 2.0, "%s.%s value %v", tissue, biomarker, v)
			}
		}
	}
}

func TestReferenceTableIntegrity(t *testing.T) {
	for _, tissue := range TissueOrder {
		order := BiomarkerOrder(tissue)
		assert.Equal(t, BiomarkerCount(tissue), len(order), "declared order must cover the table for %s", tissue)

		for _, biomarker := range order {
			entry, ok := LookupBiomarker(tissue, biomarker)
			require.True(t, ok, "%s.%s must resolve", tissue, biomarker)

			assert.Less(t, entry.NormalRange.Low, entry.NormalRange.High, "%s.%s range must be ordered", tissue, biomarker)
			assert.Greater(t, entry.MolecularWeight, 0.0, "%s.%s molecular weight must be positive", tissue, biomarker)
			assert.GreaterOrEqual(t, entry.Importance, 0.0)
			assert.LessOrEqual(t, entry.Importance, 1.0)
			assert.NotEmpty(t, entry.Name)
			assert.NotEmpty(t, entry.Unit)
		}
	}
}

func TestLookupBiomarkerUnknown(t *testing.T) {
	_, ok := LookupBiomarker(Sweat, "caffeine")
	assert.False(t, ok)

	_, ok = LookupBiomarker(Tissue("plasma"), "lactate")
	assert.False(t, ok)
}

func TestTissueRelevance(t *testing.T) {
	assert.Equal(t, 1.0, TissueRelevance(Sweat))
	assert.Equal(t, 0.7, TissueRelevance(Urine))
	assert.Equal(t, 0.5, TissueRelevance(Saliva))
	assert.Equal(t, 0.5, TissueRelevance(Tissue("plasma")))
}

func TestReferenceTableCopy(t *testing.T) {
	table := ReferenceTable()
	require.Contains(t, table, "sweat")

	// Mutating the copy must not touch the underlying reference data.
	table["sweat"]["lactate"] = ReferenceEntry{Name: "mutated"}
	entry, ok := LookupBiomarker(Sweat, "lactate")
	require.True(t, ok)
	assert.Equal(t, "Lactate", entry.Name)
}
