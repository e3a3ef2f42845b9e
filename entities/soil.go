package entities

import "errors"

var ErrNegativeReading = errors.New("soil values must not be negative")

// SoilReading is one structured soil report. A nil field means the value was
// not measured and is skipped by scoring. Nutrients are in kg/ha, organic
// matter and moisture in percent.
type SoilReading struct {
	PH            *float64 `json:"ph,omitempty" yaml:"ph,omitempty"`
	Nitrogen      *float64 `json:"nitrogen,omitempty" yaml:"nitrogen,omitempty"`
	Phosphorus    *float64 `json:"phosphorus,omitempty" yaml:"phosphorus,omitempty"`
	Potassium     *float64 `json:"potassium,omitempty" yaml:"potassium,omitempty"`
	OrganicMatter *float64 `json:"organic_matter,omitempty" yaml:"organic_matter,omitempty"`
	Moisture      *float64 `json:"moisture,omitempty" yaml:"moisture,omitempty"`
}

// Float returns a pointer to v, handy for building readings.
func Float(v float64) *float64 { return &v }

// Empty reports whether no field was measured.
func (s SoilReading) Empty() bool {
	return s.PH == nil && s.Nitrogen == nil && s.Phosphorus == nil &&
		s.Potassium == nil && s.OrganicMatter == nil && s.Moisture == nil
}

// Validate rejects readings no lab can produce.
func (s SoilReading) Validate() error {
	for _, v := range []*float64{s.PH, s.Nitrogen, s.Phosphorus, s.Potassium, s.OrganicMatter, s.Moisture} {
		if v != nil && *v < 0 {
			return ErrNegativeReading
		}
	}
	return nil
}

// Artifact is the uploaded soil report handed to a provider untouched.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}
