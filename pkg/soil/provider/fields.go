package provider

import (
	"regexp"
	"strconv"
	"strings"

	"cropadvisor/entities"
)

// field aliases as they show up on Indian soil health cards and lab sheets
var aliases = map[string]string{
	"ph": "ph", "phvalue": "ph", "soilph": "ph", "reaction": "ph",
	"n": "nitrogen", "nitrogen": "nitrogen", "availablenitrogen": "nitrogen", "availablen": "nitrogen",
	"p": "phosphorus", "phosphorus": "phosphorus", "availablephosphorus": "phosphorus", "availablep": "phosphorus", "p2o5": "phosphorus",
	"k": "potassium", "potassium": "potassium", "availablepotassium": "potassium", "availablek": "potassium", "k2o": "potassium",
	"oc": "organic", "om": "organic", "organicmatter": "organic", "organiccarbon": "organic", "organic": "organic",
	"moisture": "moisture", "soilmoisture": "moisture", "moisturecontent": "moisture",
}

var unitRX = regexp.MustCompile(`\(.*?\)`)

func normKey(s string) string {
	s = unitRX.ReplaceAllString(s, "")
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, ":")
	for _, cut := range []string{" ", "-", "_", ".", "%"} {
		s = strings.ReplaceAll(s, cut, "")
	}
	return s
}

var numRX = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// parseValue takes the first number in a cell such as "6.8 (neutral)" or "280 kg/ha".
func parseValue(s string) (float64, bool) {
	m := numRX.FindString(strings.ReplaceAll(s, ",", ""))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	return v, err == nil
}

// apply stores value under the field named by key and reports whether the
// key was recognized. Earlier values win.
func apply(r *entities.SoilReading, key, value string) bool {
	field, ok := aliases[normKey(key)]
	if !ok {
		return false
	}
	v, ok := parseValue(value)
	if !ok {
		return false
	}
	set := func(dst **float64) {
		if *dst == nil {
			*dst = entities.Float(v)
		}
	}
	switch field {
	case "ph":
		set(&r.PH)
	case "nitrogen":
		set(&r.Nitrogen)
	case "phosphorus":
		set(&r.Phosphorus)
	case "potassium":
		set(&r.Potassium)
	case "organic":
		set(&r.OrganicMatter)
	case "moisture":
		set(&r.Moisture)
	}
	return true
}
