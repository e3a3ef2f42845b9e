package entities

import "time"

// CropRecord is the stored form of a CropProfile.
type CropRecord struct {
	CropID            uint     `gorm:"primaryKey" json:"crop_id"`
	Ord               int      `gorm:"index" json:"ord"`
	Name              string   `gorm:"uniqueIndex" json:"name"`
	PHMin             float64  `json:"ph_min"`
	PHMax             float64  `json:"ph_max"`
	Nitrogen          string   `json:"nitrogen"`   // low|medium|high
	Phosphorus        string   `json:"phosphorus"` // low|medium|high
	Potassium         string   `json:"potassium"`  // low|medium|high
	Water             string   `json:"water"`      // Low|Medium|High
	HarvestTime       string   `json:"harvest_time"`
	MarketPrice       string   `json:"market_price"`
	Profitability     int      `json:"profitability"`
	EaseOfCultivation int      `json:"ease_of_cultivation"`
	Advantages        []string `gorm:"serializer:json" json:"advantages"`
	Risks             []string `gorm:"serializer:json" json:"risks"`
	Fertilizers       []string `gorm:"serializer:json" json:"fertilizers"`
	Regions           []string `gorm:"serializer:json" json:"regions"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// RegionCrop is one entry of a region's conventional crop list; Ord keeps
// the list order.
type RegionCrop struct {
	ID       uint   `gorm:"primaryKey"`
	Region   string `gorm:"index"`
	Ord      int
	CropName string
}
