package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"

	"github.com/hamstring-risk-server/internal/domain"
	"github.com/hamstring-risk-server/internal/recommend"
)

// RiskScorer scores an assembled feature vector. The model package's
// Handle satisfies it; it never fails because scorer errors are absorbed
// behind the handle.
type RiskScorer interface {
	Score(ctx context.Context, vector domain.FeatureVector, prov *domain.Provenance) float64
}

// Predictor runs the complete assessment workflow: tissue selection,
// metabolite selection, feature assembly, risk scoring, tier
// classification, confidence estimation, and recommendation generation.
//
// The pipeline itself is pure and request-scoped; the only shared state is
// the scorer handle and the result cache, both safe for concurrent use.
type Predictor struct {
	logger      *logrus.Logger
	tissues     *TissueSelector
	metabolites *MetaboliteSelector
	scorer      RiskScorer
	cache       *expirable.LRU[string, *domain.AssessmentResult]
}

// NewPredictor creates a new predictor service. When cacheCfg.Enabled is
// false the cache is nil and every request recomputes.
func NewPredictor(logger *logrus.Logger, scorer RiskScorer, cacheCfg domain.CacheConfig) *Predictor {
	var cache *expirable.LRU[string, *domain.AssessmentResult]
	if cacheCfg.Enabled {
		cache = expirable.NewLRU[string, *domain.AssessmentResult](cacheCfg.Size, nil, cacheCfg.TTL)
	}

	return &Predictor{
		logger:      logger,
		tissues:     NewTissueSelector(logger),
		metabolites: NewMetaboliteSelector(logger),
		scorer:      scorer,
		cache:       cache,
	}
}

// Assess performs a full risk assessment for one validated payload.
// Returns domain.ErrNoUsableData when no tissue carries usable signal.
// Scorer failures never propagate: the handle absorbs them.
func (p *Predictor) Assess(ctx context.Context, payload *domain.BiomarkerPayload) (*domain.AssessmentResult, error) {
	startTime := time.Now()

	cacheKey := payloadKey(payload)
	if p.cache != nil {
		if cached, ok := p.cache.Get(cacheKey); ok {
			p.logger.WithField("cache_key", cacheKey).Debug("Assessment served from cache")
			return cached, nil
		}
	}

	// Step 1: pick the most diagnostically relevant tissue.
	primaryTissue, _, tissueScores, err := p.tissues.Select(payload)
	if err != nil {
		return nil, err
	}

	// Step 2: pick the dominant metabolite within that tissue.
	reading := payload.Reading(primaryTissue)
	primaryBiomarker, molecularWeight, metaboliteScores, err := p.metabolites.Select(primaryTissue, reading)
	if err != nil {
		return nil, err
	}

	// Step 3: assemble the fixed-shape model input and its provenance.
	vector := AssembleFeatures(primaryTissue, molecularWeight, payload.Activity)
	prov := &domain.Provenance{
		PrimaryTissue:    primaryTissue,
		PrimaryBiomarker: primaryBiomarker,
		TissueScores:     tissueScores,
		MetaboliteScores: metaboliteScores,
		MolecularWeight:  molecularWeight,
	}

	// Step 4: score. The handle substitutes the heuristic on any trained
	// model failure, so this cannot fail.
	rawScore := p.scorer.Score(ctx, vector, prov)
	score := math.Round(rawScore*10) / 10

	// Step 5: classify and explain.
	tier := domain.ClassifyRisk(score)
	confidence := EstimateConfidence(prov, score)

	result := &domain.AssessmentResult{
		RiskScore:       int(score),
		RiskLevel:       tier,
		Confidence:      confidence,
		KeyIndicators:   recommend.KeyIndicators(prov),
		Recommendations: recommend.ForAssessment(tier, prov),
	}

	if p.cache != nil {
		p.cache.Add(cacheKey, result)
	}

	p.logger.WithFields(logrus.Fields{
		"primary_tissue":    primaryTissue,
		"primary_biomarker": primaryBiomarker,
		"risk_score":        result.RiskScore,
		"risk_level":        tier,
		"confidence":        confidence,
		"processing_time":   time.Since(startTime),
	}).Info("Risk assessment completed")

	return result, nil
}

// payloadKey derives a stable cache key from the payload content.
func payloadKey(payload *domain.BiomarkerPayload) string {
	data, _ := json.Marshal(payload)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
