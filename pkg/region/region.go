// Package region maps Indian postal codes to coarse growing regions.
package region

import "cropadvisor/entities"

// Resolve looks only at the first pincode digit. Anything that is not 1-9
// (including 0, empty or non-numeric input) resolves to central.
func Resolve(pincode string) entities.Region {
	if pincode == "" {
		return entities.Central
	}
	switch pincode[0] {
	case '1', '2', '3':
		return entities.North
	case '4', '5', '6':
		return entities.South
	case '7', '8':
		return entities.East
	case '9':
		return entities.West
	}
	return entities.Central
}

// Adjective is the form used in generated text ("northern India").
func Adjective(r entities.Region) string {
	switch r {
	case entities.North:
		return "northern"
	case entities.South:
		return "southern"
	case entities.East:
		return "eastern"
	case entities.West:
		return "western"
	}
	return "central"
}
