// Package catalog holds the crop reference table. A Catalog never changes
// after New returns, so it can be shared by concurrent requests.
package catalog

import (
	"fmt"
	"strings"

	"cropadvisor/entities"
)

type Catalog struct {
	order    []string
	profiles map[string]entities.CropProfile
	regional map[entities.Region][]string
}

// New copies its inputs. Duplicate crop names are rejected.
func New(profiles []entities.CropProfile, regional map[entities.Region][]string) (*Catalog, error) {
	c := &Catalog{
		profiles: make(map[string]entities.CropProfile, len(profiles)),
		regional: make(map[entities.Region][]string, len(regional)),
	}
	for _, p := range profiles {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, fmt.Errorf("crop without a name")
		}
		if _, dup := c.profiles[name]; dup {
			return nil, fmt.Errorf("duplicate crop %q", name)
		}
		p = p.Clone()
		p.Name = name
		c.profiles[name] = p
		c.order = append(c.order, name)
	}
	for r, names := range regional {
		if _, ok := entities.ParseRegion(string(r)); !ok {
			return nil, fmt.Errorf("unknown region %q", r)
		}
		c.regional[r] = append([]string(nil), names...)
	}
	return c, nil
}

// Profile returns a copy of the named crop's profile.
func (c *Catalog) Profile(name string) (entities.CropProfile, bool) {
	p, ok := c.profiles[name]
	if !ok {
		return entities.CropProfile{}, false
	}
	return p.Clone(), true
}

// Candidates returns the crop names conventionally grown in r, in list order.
func (c *Catalog) Candidates(r entities.Region) []string {
	return append([]string(nil), c.regional[r]...)
}

// Profiles returns every profile in catalog order.
func (c *Catalog) Profiles() []entities.CropProfile {
	out := make([]entities.CropProfile, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.profiles[name].Clone())
	}
	return out
}

// Regional returns a copy of every region list.
func (c *Catalog) Regional() map[entities.Region][]string {
	out := make(map[entities.Region][]string, len(c.regional))
	for r, names := range c.regional {
		out[r] = append([]string(nil), names...)
	}
	return out
}

func (c *Catalog) Len() int { return len(c.order) }
