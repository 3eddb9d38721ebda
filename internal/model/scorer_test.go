package model

import (
	"context"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamstring-risk-server/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestHandleFallsBackWhenModelMissing(t *testing.T) {
	handle := NewHandle(domain.ModelConfig{
		Path: filepath.Join(t.TempDir(), "absent.json"),
	}, testLogger())

	assert.False(t, handle.TrainedLoaded())

	// The heuristic serves every request; scores stay inside its clamp.
	score := handle.Score(context.Background(), domain.FeatureVector{
		MolecularWeight: 89.07,
		TissueSweat:     1,
	}, nil)
	assert.GreaterOrEqual(t, score, 5.0)
	assert.LessOrEqual(t, score, 95.0)
}

func TestHandleServesTrainedModel(t *testing.T) {
	path := writeWeights(t, `{"weights": [0, 0, 0, 0, 0, 0, 0], "bias": 0, "version": "test"}`)
	handle := NewHandle(domain.ModelConfig{Path: path}, testLogger())

	assert.True(t, handle.TrainedLoaded())

	// Zero weights give a deterministic 50 regardless of input.
	score := handle.Score(context.Background(), domain.FeatureVector{
		MolecularWeight: 89.07,
	}, nil)
	assert.InDelta(t, 50.0, score, 1e-9)
}

func TestHandleScoreNeverErrors(t *testing.T) {
	// Both loaded and fallback paths return a plain float64; the contract
	// surfaces no error to callers either way.
	handle := NewHandle(domain.ModelConfig{Path: ""}, testLogger())

	for i := 0; i < 50; i++ {
		score := handle.Score(context.Background(), domain.FeatureVector{
			MolecularWeight: 180.16,
			TissueUrine:     1,
		}, nil)
		assert.GreaterOrEqual(t, score, 5.0)
		assert.LessOrEqual(t, score, 95.0)
	}
}

func TestHandleConcurrentFirstUse(t *testing.T) {
	path := writeWeights(t, `{"weights": [0, 0, 0, 0, 0, 0, 0], "bias": 0}`)
	handle := NewHandle(domain.ModelConfig{Path: path}, testLogger())

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = handle.Score(context.Background(), domain.FeatureVector{}, nil)
		}(i)
	}
	wg.Wait()

	for _, score := range results {
		require.InDelta(t, 50.0, score, 1e-9)
	}
}
