package entities

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	ErrNameRequired    = errors.New("farmer name is required")
	ErrNameTooLong     = errors.New("farmer name must be at most 100 characters")
	ErrInvalidLandArea = errors.New("land area must be a positive decimal number")
	ErrInvalidPincode  = errors.New("pincode must be exactly 6 digits")
)

const maxNameRunes = 100

type FarmerProfile struct {
	Name     string `json:"name" yaml:"name"`
	LandArea string `json:"land_area" yaml:"land_area"` // acres, kept as entered
	Pincode  string `json:"pincode" yaml:"pincode"`
}

// Validate applies the intake rules. The recommendation core assumes they hold.
func (f FarmerProfile) Validate() error {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name) > maxNameRunes {
		return ErrNameTooLong
	}
	area, err := decimal.NewFromString(strings.TrimSpace(f.LandArea))
	if err != nil || !area.IsPositive() {
		return ErrInvalidLandArea
	}
	if !ValidPincode(f.Pincode) {
		return ErrInvalidPincode
	}
	return nil
}

// ValidPincode reports whether s is exactly six ASCII digits.
func ValidPincode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Normalized trims surrounding whitespace from every field.
func (f FarmerProfile) Normalized() FarmerProfile {
	return FarmerProfile{
		Name:     strings.TrimSpace(f.Name),
		LandArea: strings.TrimSpace(f.LandArea),
		Pincode:  strings.TrimSpace(f.Pincode),
	}
}
