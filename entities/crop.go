package entities

import "strings"

type Region string

const (
	North   Region = "north"
	South   Region = "south"
	East    Region = "east"
	West    Region = "west"
	Central Region = "central"
)

// Regions lists every region in display order.
var Regions = []Region{North, South, East, West, Central}

// ParseRegion accepts any casing; ok is false for unknown names.
func ParseRegion(s string) (Region, bool) {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Regions {
		if r == known {
			return r, true
		}
	}
	return "", false
}

// Level is a nutrient requirement tier.
type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

func ParseLevel(s string) (Level, bool) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case Low:
		return Low, true
	case Medium:
		return Medium, true
	case High:
		return High, true
	}
	return "", false
}

type Water string

const (
	WaterLow    Water = "Low"
	WaterMedium Water = "Medium"
	WaterHigh   Water = "High"
)

func ParseWater(s string) (Water, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return WaterLow, true
	case "medium":
		return WaterMedium, true
	case "high":
		return WaterHigh, true
	}
	return "", false
}

// CropProfile is one catalog entry.
type CropProfile struct {
	Name              string     `json:"name" yaml:"name"`
	PHRange           [2]float64 `json:"optimal_ph_range" yaml:"optimal_ph_range"` // inclusive [min, max]
	Nitrogen          Level      `json:"nitrogen_requirement" yaml:"nitrogen_requirement"`
	Phosphorus        Level      `json:"phosphorus_requirement" yaml:"phosphorus_requirement"`
	Potassium         Level      `json:"potassium_requirement" yaml:"potassium_requirement"`
	Water             Water      `json:"water_requirement" yaml:"water_requirement"`
	HarvestTime       string     `json:"harvest_time" yaml:"harvest_time"`
	MarketPrice       string     `json:"market_price" yaml:"market_price"`
	Profitability     int        `json:"profitability" yaml:"profitability"`
	EaseOfCultivation int        `json:"ease_of_cultivation" yaml:"ease_of_cultivation"`
	Advantages        []string   `json:"advantages" yaml:"advantages"`
	Risks             []string   `json:"risks" yaml:"risks"`
	Fertilizers       []string   `json:"fertilizers" yaml:"fertilizers"`
	Regions           []Region   `json:"regions" yaml:"regions"`
}

func (c CropProfile) InRegion(r Region) bool {
	for _, x := range c.Regions {
		if x == r {
			return true
		}
	}
	return false
}

func (c CropProfile) PHInRange(ph float64) bool {
	return ph >= c.PHRange[0] && ph <= c.PHRange[1]
}

// Clone returns a copy that shares no slices with c.
func (c CropProfile) Clone() CropProfile {
	out := c
	out.Advantages = append([]string(nil), c.Advantages...)
	out.Risks = append([]string(nil), c.Risks...)
	out.Fertilizers = append([]string(nil), c.Fertilizers...)
	out.Regions = append([]Region(nil), c.Regions...)
	return out
}
