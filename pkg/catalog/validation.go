package catalog

import (
	"fmt"

	"cropadvisor/entities"
)

// Report lists catalog integrity problems found by Validate.
type Report struct {
	// Gaps are region list entries with no crop profile.
	Gaps []string
	// Mismatches are crops listed under a region that their own region set
	// does not include. They still score, with the off-region credit.
	Mismatches []string
	// Problems are profile values that cannot be scored sensibly.
	Problems []string
}

func (r Report) OK() bool { return len(r.Gaps) == 0 && len(r.Problems) == 0 }

// Err folds gaps and problems into one error; mismatches are warnings only.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("catalog has %d gap(s) and %d invalid profile(s): %v %v",
		len(r.Gaps), len(r.Problems), r.Gaps, r.Problems)
}

func Validate(c *Catalog) Report {
	var rep Report
	for _, r := range entities.Regions {
		for _, name := range c.regional[r] {
			p, ok := c.profiles[name]
			if !ok {
				rep.Gaps = append(rep.Gaps, fmt.Sprintf("%s: %s has no profile", r, name))
				continue
			}
			if !p.InRegion(r) {
				rep.Mismatches = append(rep.Mismatches, fmt.Sprintf("%s: %s is listed but not favored there", r, name))
			}
		}
	}
	for _, name := range c.order {
		if err := checkProfile(c.profiles[name]); err != nil {
			rep.Problems = append(rep.Problems, fmt.Sprintf("%s: %v", name, err))
		}
	}
	return rep
}

func checkProfile(p entities.CropProfile) error {
	if p.PHRange[0] > p.PHRange[1] {
		return fmt.Errorf("pH range [%.1f, %.1f] is inverted", p.PHRange[0], p.PHRange[1])
	}
	if p.Profitability < 0 || p.Profitability > 100 {
		return fmt.Errorf("profitability %d outside 0-100", p.Profitability)
	}
	if p.EaseOfCultivation < 0 || p.EaseOfCultivation > 100 {
		return fmt.Errorf("ease of cultivation %d outside 0-100", p.EaseOfCultivation)
	}
	for _, l := range []entities.Level{p.Nitrogen, p.Phosphorus, p.Potassium} {
		if _, ok := entities.ParseLevel(string(l)); !ok {
			return fmt.Errorf("nutrient requirement %q is not low|medium|high", l)
		}
	}
	return nil
}
