package serviceImp

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/recommend/service"
	"cropadvisor/pkg/region"
	"cropadvisor/pkg/scoring"
	"cropadvisor/pkg/soil/provider"
)

const MaxRecommendations = 4

type recommendSvc struct {
	cat     *catalog.Catalog
	prov    provider.Provider
	timeout time.Duration
	log     *zap.Logger
}

// NewRecommendService wires the generator. A zero timeout leaves the
// provider call bounded only by the caller's context.
func NewRecommendService(cat *catalog.Catalog, prov provider.Provider, timeout time.Duration, log *zap.Logger) service.RecommendService {
	if log == nil {
		log = zap.NewNop()
	}
	return &recommendSvc{cat: cat, prov: prov, timeout: timeout, log: log}
}

func (s *recommendSvc) Recommend(ctx context.Context, a entities.Artifact, farmer entities.FarmerProfile) entities.Result {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reading, err := s.analyze(ctx, a)
	if err != nil {
		s.log.Warn("soil analysis failed",
			zap.String("file", a.Filename), zap.String("content_type", a.ContentType), zap.Error(err))
		return entities.Result{Success: false, AnalysisNote: service.FailureNote}
	}
	return s.Generate(reading, farmer)
}

// analyze converts a provider panic into an error.
func (s *recommendSvc) analyze(ctx context.Context, a entities.Artifact) (reading entities.SoilReading, err error) {
	if s.prov == nil {
		return reading, provider.ErrUnsupported
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("soil provider panic: %v", r)
		}
	}()
	return s.prov.Analyze(ctx, a)
}

func (s *recommendSvc) Generate(soil entities.SoilReading, farmer entities.FarmerProfile) entities.Result {
	reg := region.Resolve(farmer.Pincode)

	type scored struct {
		profile entities.CropProfile
		score   float64
	}
	var kept []scored
	for _, name := range s.cat.Candidates(reg) {
		p, ok := s.cat.Profile(name)
		if !ok {
			s.log.Warn("region lists crop without a profile, skipping",
				zap.String("region", string(reg)), zap.String("crop", name))
			continue
		}
		sc := scoring.Score(p, soil, reg)
		s.log.Debug("scored", zap.String("crop", name), zap.Float64("score", sc))
		if sc > scoring.RecommendAbove {
			kept = append(kept, scored{p, sc})
		}
	}

	recs := make([]entities.CropRecommendation, 0, len(kept))
	for _, k := range kept {
		recs = append(recs, entities.CropRecommendation{
			Name:              k.profile.Name,
			Profitability:     int(math.Round(float64(k.profile.Profitability) * k.score / 100)),
			EaseOfCultivation: k.profile.EaseOfCultivation,
			WaterRequirement:  k.profile.Water,
			HarvestTime:       k.profile.HarvestTime,
			MarketPrice:       k.profile.MarketPrice,
			Advantages:        k.profile.Advantages,
			Risks:             k.profile.Risks,
			Fertilizers:       k.profile.Fertilizers,
			SuitabilityReason: suitabilityReason(k.profile, soil, k.score),
			LocationAdvantage: locationAdvantage(reg),
		})
	}
	slices.SortStableFunc(recs, func(a, b entities.CropRecommendation) int {
		return cmp.Compare(b.Profitability, a.Profitability)
	})
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}

	s.log.Info("recommendations generated",
		zap.String("region", string(reg)), zap.Int("candidates", len(s.cat.Candidates(reg))), zap.Int("returned", len(recs)))

	return entities.Result{
		Success:         true,
		Region:          reg,
		Recommendations: recs,
		AnalysisNote:    analysisNote(soil, farmer, reg),
	}
}

func suitabilityReason(p entities.CropProfile, soil entities.SoilReading, score float64) string {
	var parts []string
	if soil.PH != nil && p.PHInRange(*soil.PH) {
		parts = append(parts, fmt.Sprintf("Optimal pH level (%.1f)", *soil.PH))
	}
	switch {
	case score > 80:
		parts = append(parts, "Excellent soil-crop compatibility")
	case score > 70:
		parts = append(parts, "Good soil suitability")
	default:
		parts = append(parts, "Moderate suitability with soil amendments")
	}
	return strings.Join(parts, ", ")
}

func locationAdvantage(r entities.Region) string {
	return "Well-suited for " + region.Adjective(r) + " India climate"
}

func analysisNote(soil entities.SoilReading, farmer entities.FarmerProfile, r entities.Region) string {
	adj := region.Adjective(r)
	area := landArea(farmer.LandArea)

	lines := []string{fmt.Sprintf("Soil Analysis for %s's %s acre land in %s India:", strings.TrimSpace(farmer.Name), area, adj)}
	if soil.PH != nil {
		ph := num(*soil.PH)
		switch {
		case *soil.PH < 6.0:
			lines = append(lines, "• Soil is slightly acidic (pH "+ph+") - consider lime application")
		case *soil.PH > 7.5:
			lines = append(lines, "• Soil is slightly alkaline (pH "+ph+") - consider sulfur application")
		default:
			lines = append(lines, "• Soil pH is optimal ("+ph+") for most crops")
		}
	}
	if soil.OrganicMatter != nil {
		om := num(*soil.OrganicMatter)
		switch {
		case *soil.OrganicMatter < 1.0:
			lines = append(lines, "• Low organic matter ("+om+"%) - add compost or farmyard manure")
		case *soil.OrganicMatter > 2.0:
			lines = append(lines, "• Good organic matter content ("+om+"%)")
		}
	}
	lines = append(lines,
		"• Climate and rainfall patterns are favorable for "+adj+" India crops",
		"• Recommendations are optimized for "+area+" acre cultivation",
	)
	return strings.Join(lines, "\n")
}

// landArea prints "2.50" as "2.5"; unparsable input is echoed as given.
func landArea(s string) string {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.String()
}

func num(v float64) string { return fmt.Sprintf("%.1f", v) }
