package catalog

import (
	"errors"
	"fmt"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog/repository"
)

var ErrEmptyStore = errors.New("catalog store is empty")

// LoadFromRepository reads the stored catalog once; the result does not
// track later changes to the store.
func LoadFromRepository(repo repository.CatalogRepository) (*Catalog, error) {
	recs, err := repo.AllCrops()
	if err != nil {
		return nil, fmt.Errorf("load crops: %w", err)
	}
	if len(recs) == 0 {
		return nil, ErrEmptyStore
	}
	lists, err := repo.AllRegionCrops()
	if err != nil {
		return nil, fmt.Errorf("load region lists: %w", err)
	}

	profiles := make([]entities.CropProfile, 0, len(recs))
	for _, rec := range recs {
		p, err := fromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("crop %q: %w", rec.Name, err)
		}
		profiles = append(profiles, p)
	}
	regional := map[entities.Region][]string{}
	for _, rc := range lists {
		r, ok := entities.ParseRegion(rc.Region)
		if !ok {
			return nil, fmt.Errorf("region list entry %d: unknown region %q", rc.ID, rc.Region)
		}
		regional[r] = append(regional[r], rc.CropName)
	}
	return New(profiles, regional)
}

// SeedIfEmpty writes c into an empty store and reports whether it did.
func SeedIfEmpty(repo repository.CatalogRepository, c *Catalog) (bool, error) {
	n, err := repo.Count()
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	return true, Save(repo, c)
}

// Save replaces the stored catalog with c.
func Save(repo repository.CatalogRepository, c *Catalog) error {
	recs := make([]entities.CropRecord, 0, c.Len())
	for i, p := range c.Profiles() {
		recs = append(recs, toRecord(i, p))
	}
	var lists []entities.RegionCrop
	for _, r := range entities.Regions {
		for i, name := range c.regional[r] {
			lists = append(lists, entities.RegionCrop{Region: string(r), Ord: i, CropName: name})
		}
	}
	return repo.Replace(recs, lists)
}

func toRecord(ord int, p entities.CropProfile) entities.CropRecord {
	regs := make([]string, len(p.Regions))
	for i, r := range p.Regions {
		regs[i] = string(r)
	}
	return entities.CropRecord{
		Ord:               ord,
		Name:              p.Name,
		PHMin:             p.PHRange[0],
		PHMax:             p.PHRange[1],
		Nitrogen:          string(p.Nitrogen),
		Phosphorus:        string(p.Phosphorus),
		Potassium:         string(p.Potassium),
		Water:             string(p.Water),
		HarvestTime:       p.HarvestTime,
		MarketPrice:       p.MarketPrice,
		Profitability:     p.Profitability,
		EaseOfCultivation: p.EaseOfCultivation,
		Advantages:        p.Advantages,
		Risks:             p.Risks,
		Fertilizers:       p.Fertilizers,
		Regions:           regs,
	}
}

func fromRecord(rec entities.CropRecord) (entities.CropProfile, error) {
	p := entities.CropProfile{
		Name:              rec.Name,
		PHRange:           [2]float64{rec.PHMin, rec.PHMax},
		HarvestTime:       rec.HarvestTime,
		MarketPrice:       rec.MarketPrice,
		Profitability:     rec.Profitability,
		EaseOfCultivation: rec.EaseOfCultivation,
		Advantages:        rec.Advantages,
		Risks:             rec.Risks,
		Fertilizers:       rec.Fertilizers,
	}
	var ok bool
	if p.Nitrogen, ok = entities.ParseLevel(rec.Nitrogen); !ok {
		return p, fmt.Errorf("nitrogen level %q", rec.Nitrogen)
	}
	if p.Phosphorus, ok = entities.ParseLevel(rec.Phosphorus); !ok {
		return p, fmt.Errorf("phosphorus level %q", rec.Phosphorus)
	}
	if p.Potassium, ok = entities.ParseLevel(rec.Potassium); !ok {
		return p, fmt.Errorf("potassium level %q", rec.Potassium)
	}
	if p.Water, ok = entities.ParseWater(rec.Water); !ok {
		return p, fmt.Errorf("water requirement %q", rec.Water)
	}
	for _, s := range rec.Regions {
		r, ok := entities.ParseRegion(s)
		if !ok {
			return p, fmt.Errorf("region %q", s)
		}
		p.Regions = append(p.Regions, r)
	}
	return p, nil
}
