package catalog

import "cropadvisor/entities"

var defaultRegional = map[entities.Region][]string{
	entities.North:   {"Wheat", "Rice", "Barley", "Mustard", "Sugarcane", "Potato"},
	entities.South:   {"Rice", "Cotton", "Groundnut", "Millets", "Sugarcane", "Coconut"},
	entities.East:    {"Rice", "Jute", "Tea", "Potato", "Maize", "Vegetables"},
	entities.West:    {"Cotton", "Sugarcane", "Soybean", "Wheat", "Onion", "Grapes"},
	entities.Central: {"Soybean", "Wheat", "Cotton", "Gram", "Lentils", "Maize"},
}

func regions(rs ...entities.Region) []entities.Region { return rs }

var defaultProfiles = []entities.CropProfile{
	{
		Name:    "Wheat",
		PHRange: [2]float64{6.0, 7.5},
		Nitrogen: entities.Medium, Phosphorus: entities.Medium, Potassium: entities.Medium,
		Water:             entities.WaterLow,
		HarvestTime:       "120-150 days",
		Profitability:     65,
		EaseOfCultivation: 95,
		MarketPrice:       "₹20-25/kg",
		Advantages:        []string{"Government procurement support", "Stable market demand", "Low water requirement"},
		Risks:             []string{"Rust disease susceptible", "Weather dependent harvesting"},
		Fertilizers:       []string{"NPK 12:32:16", "Zinc sulfate", "Organic manure"},
		Regions:           regions(entities.North, entities.Central, entities.West),
	},
	{
		Name:    "Rice",
		PHRange: [2]float64{5.5, 7.0},
		Nitrogen: entities.High, Phosphorus: entities.Medium, Potassium: entities.Medium,
		Water:             entities.WaterHigh,
		HarvestTime:       "90-120 days",
		Profitability:     70,
		EaseOfCultivation: 80,
		MarketPrice:       "₹25-35/kg",
		Advantages:        []string{"High demand staple", "Multiple varieties available", "Good yield potential"},
		Risks:             []string{"High water requirement", "Pest attacks", "Storage issues"},
		Fertilizers:       []string{"Urea", "SSP", "MOP", "Zinc sulfate"},
		Regions:           regions(entities.North, entities.South, entities.East),
	},
	{
		Name:    "Cotton",
		PHRange: [2]float64{5.8, 8.0},
		Nitrogen: entities.High, Phosphorus: entities.Medium, Potassium: entities.High,
		Water:             entities.WaterMedium,
		HarvestTime:       "150-180 days",
		Profitability:     85,
		EaseOfCultivation: 60,
		MarketPrice:       "₹5000-7000/quintal",
		Advantages:        []string{"High export value", "Industrial demand", "Good profit margins"},
		Risks:             []string{"Bollworm attacks", "Weather sensitive", "Price volatility"},
		Fertilizers:       []string{"NPK 17:17:17", "Boron", "Calcium nitrate"},
		Regions:           regions(entities.South, entities.West, entities.Central),
	},
	{
		Name:    "Maize",
		PHRange: [2]float64{6.0, 7.5},
		Nitrogen: entities.Medium, Phosphorus: entities.Medium, Potassium: entities.Medium,
		Water:             entities.WaterMedium,
		HarvestTime:       "100-120 days",
		Profitability:     70,
		EaseOfCultivation: 90,
		MarketPrice:       "₹18-22/kg",
		Advantages:        []string{"Drought tolerant", "Multiple uses", "Fast growing"},
		Risks:             []string{"Bird damage", "Storage pests", "Market price fluctuation"},
		Fertilizers:       []string{"Urea", "DAP", "Potash"},
		Regions:           regions(entities.North, entities.Central, entities.East),
	},
	{
		Name:    "Soybean",
		PHRange: [2]float64{6.0, 7.0},
		Nitrogen: entities.Low, Phosphorus: entities.High, Potassium: entities.Medium,
		Water:             entities.WaterMedium,
		HarvestTime:       "90-120 days",
		Profitability:     80,
		EaseOfCultivation: 85,
		MarketPrice:       "₹35-45/kg",
		Advantages:        []string{"High protein content", "Export potential", "Nitrogen fixing"},
		Risks:             []string{"Disease susceptible", "Weather dependent", "Quality issues"},
		Fertilizers:       []string{"DAP", "MOP", "Sulfur"},
		Regions:           regions(entities.Central, entities.West),
	},
	{
		Name:    "Tomato",
		PHRange: [2]float64{6.0, 7.0},
		Nitrogen: entities.High, Phosphorus: entities.Medium, Potassium: entities.High,
		Water:             entities.WaterMedium,
		HarvestTime:       "75-90 days",
		Profitability:     90,
		EaseOfCultivation: 65,
		MarketPrice:       "₹25-40/kg",
		Advantages:        []string{"High market demand", "Multiple harvests", "Processing industry demand"},
		Risks:             []string{"Pest susceptible", "Disease prone", "Storage challenges"},
		Fertilizers:       []string{"NPK 19:19:19", "Calcium nitrate", "Magnesium sulfate"},
		Regions:           regions(entities.North, entities.South, entities.West),
	},
	{
		Name:    "Onion",
		PHRange: [2]float64{6.0, 7.5},
		Nitrogen: entities.Medium, Phosphorus: entities.Medium, Potassium: entities.High,
		Water:             entities.WaterMedium,
		HarvestTime:       "120-150 days",
		Profitability:     85,
		EaseOfCultivation: 75,
		MarketPrice:       "₹15-30/kg",
		Advantages:        []string{"Good storage life", "High demand", "Export potential"},
		Risks:             []string{"Price volatility", "Storage rot", "Weather sensitive"},
		Fertilizers:       []string{"NPK 12:32:16", "Sulfur", "Boron"},
		Regions:           regions(entities.West, entities.South, entities.Central),
	},
	{
		Name:    "Potato",
		PHRange: [2]float64{5.0, 6.5},
		Nitrogen: entities.High, Phosphorus: entities.Medium, Potassium: entities.High,
		Water:             entities.WaterMedium,
		HarvestTime:       "90-120 days",
		Profitability:     75,
		EaseOfCultivation: 80,
		MarketPrice:       "₹12-20/kg",
		Advantages:        []string{"High yield potential", "Processing industry demand", "Good storage"},
		Risks:             []string{"Disease susceptible", "Storage issues", "Quality degradation"},
		Fertilizers:       []string{"NPK 12:32:16", "Calcium", "Magnesium"},
		Regions:           regions(entities.North, entities.East),
	},
	{
		Name:    "Barley",
		PHRange: [2]float64{6.0, 8.0},
		Nitrogen: entities.Medium, Phosphorus: entities.Medium, Potassium: entities.Low,
		Water:             entities.WaterLow,
		HarvestTime:       "110-130 days",
		Profitability:     60,
		EaseOfCultivation: 90,
		MarketPrice:       "₹18-22/kg",
		Advantages:        []string{"Tolerates saline and alkaline soils", "Malting industry demand", "Short season"},
		Risks:             []string{"Lodging in heavy rain", "Stripe rust"},
		Fertilizers:       []string{"Urea", "DAP"},
		Regions:           regions(entities.North),
	},
	{
		Name:    "Mustard",
		PHRange: [2]float64{6.0, 7.5},
		Nitrogen: entities.Medium, Phosphorus: entities.Medium, Potassium: entities.Low,
		Water:             entities.WaterLow,
		HarvestTime:       "110-140 days",
		Profitability:     70,
		EaseOfCultivation: 85,
		MarketPrice:       "₹50-60/kg",
		Advantages:        []string{"Oilseed with steady demand", "Low irrigation need", "Fits rabi rotation"},
		Risks:             []string{"Aphid infestation", "Frost damage at flowering"},
		Fertilizers:       []string{"Urea", "SSP", "Sulfur"},
		Regions:           regions(entities.North),
	},
	{
		Name:    "Sugarcane",
		PHRange: [2]float64{6.5, 7.5},
		Nitrogen: entities.High, Phosphorus: entities.Medium, Potassium: entities.High,
		Water:             entities.WaterHigh,
		HarvestTime:       "10-12 months",
		Profitability:     80,
		EaseOfCultivation: 55,
		MarketPrice:       "₹300-350/quintal",
		Advantages:        []string{"Assured mill procurement", "Ratoon crop possible", "High biomass yield"},
		Risks:             []string{"High water requirement", "Red rot disease", "Delayed mill payments"},
		Fertilizers:       []string{"Urea", "SSP", "MOP", "Press mud compost"},
		Regions:           regions(entities.North, entities.South, entities.West),
	},
	{
		Name:    "Groundnut",
		PHRange: [2]float64{6.0, 7.0},
		Nitrogen: entities.Low, Phosphorus: entities.High, Potassium: entities.Medium,
		Water:             entities.WaterMedium,
		HarvestTime:       "100-130 days",
		Profitability:     75,
		EaseOfCultivation: 75,
		MarketPrice:       "₹50-60/kg",
		Advantages:        []string{"Nitrogen fixing", "Oil and confectionery demand", "Improves soil structure"},
		Risks:             []string{"Leaf spot", "Aflatoxin in storage"},
		Fertilizers:       []string{"Gypsum", "SSP", "Rhizobium culture"},
		Regions:           regions(entities.South),
	},
	{
		Name:    "Millets",
		PHRange: [2]float64{5.5, 7.5},
		Nitrogen: entities.Low, Phosphorus: entities.Low, Potassium: entities.Low,
		Water:             entities.WaterLow,
		HarvestTime:       "70-100 days",
		Profitability:     55,
		EaseOfCultivation: 95,
		MarketPrice:       "₹20-30/kg",
		Advantages:        []string{"Drought hardy", "Rising health food demand", "Low input cost"},
		Risks:             []string{"Bird damage", "Limited procurement"},
		Fertilizers:       []string{"Farmyard manure", "Urea"},
		Regions:           regions(entities.South),
	},
	{
		Name:    "Coconut",
		PHRange: [2]float64{5.2, 8.0},
		Nitrogen: entities.Medium, Phosphorus: entities.Low, Potassium: entities.High,
		Water:             entities.WaterHigh,
		HarvestTime:       "5-6 years to first yield",
		Profitability:     78,
		EaseOfCultivation: 70,
		MarketPrice:       "₹15-25/nut",
		Advantages:        []string{"Long productive life", "Multiple products", "Year-round harvest"},
		Risks:             []string{"Long gestation", "Rhinoceros beetle", "Root wilt"},
		Fertilizers:       []string{"Urea", "MOP", "Magnesium sulfate"},
		Regions:           regions(entities.South),
	},
	{
		Name:    "Jute",
		PHRange: [2]float64{6.0, 7.5},
		Nitrogen: entities.Medium, Phosphorus: entities.Low, Potassium: entities.Medium,
		Water:             entities.WaterHigh,
		HarvestTime:       "120-150 days",
		Profitability:     60,
		EaseOfCultivation: 70,
		MarketPrice:       "₹4500-5500/quintal",
		Advantages:        []string{"Minimum support price", "Eco-friendly fibre demand"},
		Risks:             []string{"Retting water availability", "Labour intensive"},
		Fertilizers:       []string{"Urea", "SSP", "MOP"},
		Regions:           regions(entities.East),
	},
	{
		Name:    "Tea",
		PHRange: [2]float64{4.5, 5.5},
		Nitrogen: entities.High, Phosphorus: entities.Medium, Potassium: entities.Medium,
		Water:             entities.WaterHigh,
		HarvestTime:       "3 years to first plucking",
		Profitability:     82,
		EaseOfCultivation: 50,
		MarketPrice:       "₹150-250/kg",
		Advantages:        []string{"Perennial income", "Export market", "Thrives in acidic soil"},
		Risks:             []string{"High establishment cost", "Tea mosquito bug", "Labour intensive"},
		Fertilizers:       []string{"Ammonium sulfate", "Rock phosphate", "MOP"},
		Regions:           regions(entities.East),
	},
	{
		Name:    "Vegetables",
		PHRange: [2]float64{6.0, 7.0},
		Nitrogen: entities.High, Phosphorus: entities.Medium, Potassium: entities.Medium,
		Water:             entities.WaterMedium,
		HarvestTime:       "60-90 days",
		Profitability:     85,
		EaseOfCultivation: 70,
		MarketPrice:       "₹15-40/kg",
		Advantages:        []string{"Quick returns", "Local market demand", "Several cycles per year"},
		Risks:             []string{"Perishable produce", "Price swings", "Pest pressure"},
		Fertilizers:       []string{"NPK 19:19:19", "Vermicompost", "Calcium nitrate"},
		Regions:           regions(entities.East),
	},
	{
		Name:    "Grapes",
		PHRange: [2]float64{6.5, 7.5},
		Nitrogen: entities.Medium, Phosphorus: entities.High, Potassium: entities.High,
		Water:             entities.WaterMedium,
		HarvestTime:       "2-3 years to first harvest",
		Profitability:     90,
		EaseOfCultivation: 45,
		MarketPrice:       "₹40-80/kg",
		Advantages:        []string{"High value fruit", "Export and winery demand", "Raisin processing"},
		Risks:             []string{"Downy mildew", "High setup cost", "Unseasonal rain"},
		Fertilizers:       []string{"NPK 19:19:19", "Potassium sulfate", "Boron"},
		Regions:           regions(entities.West),
	},
	{
		Name:    "Gram",
		PHRange: [2]float64{6.0, 7.5},
		Nitrogen: entities.Low, Phosphorus: entities.High, Potassium: entities.Low,
		Water:             entities.WaterLow,
		HarvestTime:       "95-110 days",
		Profitability:     70,
		EaseOfCultivation: 85,
		MarketPrice:       "₹50-60/kg",
		Advantages:        []string{"Nitrogen fixing", "Government procurement", "Low water requirement"},
		Risks:             []string{"Pod borer", "Wilt disease"},
		Fertilizers:       []string{"DAP", "Rhizobium culture", "Sulfur"},
		Regions:           regions(entities.Central),
	},
	{
		Name:    "Lentils",
		PHRange: [2]float64{6.0, 7.5},
		Nitrogen: entities.Low, Phosphorus: entities.Medium, Potassium: entities.Low,
		Water:             entities.WaterLow,
		HarvestTime:       "110-130 days",
		Profitability:     68,
		EaseOfCultivation: 85,
		MarketPrice:       "₹60-80/kg",
		Advantages:        []string{"Nitrogen fixing", "Steady pulse demand", "Residual moisture crop"},
		Risks:             []string{"Rust", "Terminal heat stress"},
		Fertilizers:       []string{"DAP", "Rhizobium culture"},
		Regions:           regions(entities.Central),
	},
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultProfiles, defaultRegional)
	if err != nil {
		panic("catalog: built-in table: " + err.Error())
	}
	return c
}
