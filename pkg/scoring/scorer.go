// Package scoring computes how well a soil reading and region suit a crop.
//
// The model is a fixed weighted sum: pH fit (40), regional fit (30) and
// nutrient fit (10 each for N, P and K). Missing measurements earn nothing.
package scoring

import (
	"math"

	"cropadvisor/entities"
)

const (
	PHWeight         = 40.0
	PHPenaltyPerUnit = 10.0
	RegionWeight     = 30.0
	OffRegionCredit  = 10.0
	NutrientWeight   = 10.0
	MaxScore         = 100.0

	// RecommendAbove is the exclusive suitability threshold for a recommendation.
	RecommendAbove = 50.0
)

// reference levels in kg/ha; a "low" requirement always earns full credit.
var (
	nitrogenRef   = map[entities.Level]float64{entities.High: 200, entities.Medium: 150}
	phosphorusRef = map[entities.Level]float64{entities.High: 30, entities.Medium: 20}
	potassiumRef  = map[entities.Level]float64{entities.High: 250, entities.Medium: 180}
)

// Breakdown holds the contribution of each factor to a score.
type Breakdown struct {
	PH         float64 `json:"ph" yaml:"ph"`
	Region     float64 `json:"region" yaml:"region"`
	Nitrogen   float64 `json:"nitrogen" yaml:"nitrogen"`
	Phosphorus float64 `json:"phosphorus" yaml:"phosphorus"`
	Potassium  float64 `json:"potassium" yaml:"potassium"`
	Total      float64 `json:"total" yaml:"total"`
}

// Score is a pure function of its inputs and always lies in [0, 100].
func Score(crop entities.CropProfile, soil entities.SoilReading, r entities.Region) float64 {
	return Explain(crop, soil, r).Total
}

func Explain(crop entities.CropProfile, soil entities.SoilReading, r entities.Region) Breakdown {
	b := Breakdown{
		PH:         phFit(crop, soil.PH),
		Region:     regionFit(crop, r),
		Nitrogen:   nutrientFit(soil.Nitrogen, crop.Nitrogen, nitrogenRef),
		Phosphorus: nutrientFit(soil.Phosphorus, crop.Phosphorus, phosphorusRef),
		Potassium:  nutrientFit(soil.Potassium, crop.Potassium, potassiumRef),
	}
	b.Total = clamp(b.PH + b.Region + b.Nitrogen + b.Phosphorus + b.Potassium)
	return b
}

func phFit(crop entities.CropProfile, ph *float64) float64 {
	if ph == nil {
		return 0
	}
	if crop.PHInRange(*ph) {
		return PHWeight
	}
	dev := math.Min(math.Abs(*ph-crop.PHRange[0]), math.Abs(*ph-crop.PHRange[1]))
	return math.Max(0, PHWeight-PHPenaltyPerUnit*dev)
}

func regionFit(crop entities.CropProfile, r entities.Region) float64 {
	if crop.InRegion(r) {
		return RegionWeight
	}
	return OffRegionCredit
}

func nutrientFit(v *float64, req entities.Level, refs map[entities.Level]float64) float64 {
	if v == nil {
		return 0
	}
	ref, ok := refs[req]
	if !ok {
		return NutrientWeight
	}
	return math.Min(*v/ref, 1) * NutrientWeight
}

func clamp(s float64) float64 {
	if math.IsNaN(s) || s < 0 {
		return 0
	}
	if s > MaxScore {
		return MaxScore
	}
	return s
}
