package entities

type CropRecommendation struct {
	Name              string   `json:"name" yaml:"name"`
	Profitability     int      `json:"profitability" yaml:"profitability"`             // 0-100, scaled by suitability
	EaseOfCultivation int      `json:"ease_of_cultivation" yaml:"ease_of_cultivation"` // 0-100, from catalog
	WaterRequirement  Water    `json:"water_requirement" yaml:"water_requirement"`
	HarvestTime       string   `json:"harvest_time" yaml:"harvest_time"`
	MarketPrice       string   `json:"market_price" yaml:"market_price"`
	Advantages        []string `json:"advantages" yaml:"advantages"`
	Risks             []string `json:"risks" yaml:"risks"`
	Fertilizers       []string `json:"fertilizers" yaml:"fertilizers"`
	SuitabilityReason string   `json:"suitability_reason" yaml:"suitability_reason"`
	LocationAdvantage string   `json:"location_advantage" yaml:"location_advantage"`
}

// Result is what one analysis request returns. Success=false means the soil
// reading could not be obtained; Success=true with no recommendations means
// no crop cleared the suitability threshold.
type Result struct {
	Success         bool                 `json:"success" yaml:"success"`
	Region          Region               `json:"region,omitempty" yaml:"region,omitempty"`
	Recommendations []CropRecommendation `json:"recommendations" yaml:"recommendations"`
	AnalysisNote    string               `json:"analysis_note" yaml:"analysis_note"`
}
