package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"cropadvisor/entities"
)

// LoadFromFiles builds a catalog from a crops table and a region table.
// Each may be .csv or .xlsx (first sheet). Crops columns:
//
//	Name, PH_Min, PH_Max, Nitrogen, Phosphorus, Potassium, Water,
//	HarvestTime, MarketPrice, Profitability, Ease, Advantages, Risks,
//	Fertilizers, Regions
//
// List cells are ';' separated. Region rows are "Region, Crops" with the crops
// in ';' separated order, or one "Region, Crop" pair per row.
func LoadFromFiles(cropsPath, regionsPath string) (*Catalog, error) {
	cropRows, err := readTable(cropsPath)
	if err != nil {
		return nil, fmt.Errorf("crops table: %w", err)
	}
	profiles, err := parseCrops(cropRows)
	if err != nil {
		return nil, fmt.Errorf("crops table %s: %w", cropsPath, err)
	}
	regionRows, err := readTable(regionsPath)
	if err != nil {
		return nil, fmt.Errorf("regions table: %w", err)
	}
	regional, err := parseRegions(regionRows)
	if err != nil {
		return nil, fmt.Errorf("regions table %s: %w", regionsPath, err)
	}
	return New(profiles, regional)
}

func readTable(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		x, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer x.Close()
		sheets := x.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		return x.GetRows(sheets[0])
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		cr := csv.NewReader(f)
		cr.FieldsPerRecord = -1
		var rows [][]string
		for {
			rec, err := cr.Read()
			if err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return nil, err
			}
			rows = append(rows, rec)
		}
		return rows, nil
	}
	return nil, fmt.Errorf("unsupported table format %q", filepath.Ext(path))
}

func norm(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

type header map[string]int

func newHeader(row []string) header {
	h := header{}
	for i, c := range row {
		h[norm(c)] = i
	}
	return h
}

// find accepts several aliases per column
func (h header) find(keys ...string) int {
	for _, k := range keys {
		if idx, ok := h[norm(k)]; ok {
			return idx
		}
	}
	return -1
}

func cell(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseCrops(rows [][]string) ([]entities.CropProfile, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty table")
	}
	h := newHeader(rows[0])
	cName := h.find("Name", "crop", "cropname")
	cMin := h.find("PH_Min", "phmin", "minph")
	cMax := h.find("PH_Max", "phmax", "maxph")
	cN := h.find("Nitrogen", "n", "nitrogenreq")
	cP := h.find("Phosphorus", "p", "phosphorusreq")
	cK := h.find("Potassium", "k", "potassiumreq")
	cWater := h.find("Water", "waterrequirement")
	cHarvest := h.find("HarvestTime", "harvest")
	cPrice := h.find("MarketPrice", "price")
	cProfit := h.find("Profitability", "profit")
	cEase := h.find("Ease", "easeofcultivation")
	cAdv := h.find("Advantages", "pros")
	cRisk := h.find("Risks", "cons")
	cFert := h.find("Fertilizers", "fertiliser", "fertilisers")
	cReg := h.find("Regions", "region")

	if cName == -1 || cMin == -1 || cMax == -1 || cN == -1 || cP == -1 || cK == -1 || cReg == -1 {
		return nil, fmt.Errorf("missing required columns. Found headers: %v\nNeed at least: Name, PH_Min, PH_Max, Nitrogen, Phosphorus, Potassium, Regions", rows[0])
	}

	var out []entities.CropProfile
	for i, rec := range rows[1:] {
		line := i + 2
		name := cell(rec, cName)
		if name == "" {
			continue // blank row
		}
		p := entities.CropProfile{
			Name:        name,
			HarvestTime: cell(rec, cHarvest),
			MarketPrice: cell(rec, cPrice),
			Advantages:  splitList(cell(rec, cAdv)),
			Risks:       splitList(cell(rec, cRisk)),
			Fertilizers: splitList(cell(rec, cFert)),
		}
		var err error
		if p.PHRange[0], err = strconv.ParseFloat(cell(rec, cMin), 64); err != nil {
			return nil, fmt.Errorf("row %d: ph min: %w", line, err)
		}
		if p.PHRange[1], err = strconv.ParseFloat(cell(rec, cMax), 64); err != nil {
			return nil, fmt.Errorf("row %d: ph max: %w", line, err)
		}
		for _, lv := range []struct {
			dst *entities.Level
			col int
		}{{&p.Nitrogen, cN}, {&p.Phosphorus, cP}, {&p.Potassium, cK}} {
			l, ok := entities.ParseLevel(cell(rec, lv.col))
			if !ok {
				return nil, fmt.Errorf("row %d: nutrient level %q", line, cell(rec, lv.col))
			}
			*lv.dst = l
		}
		p.Water = entities.WaterMedium
		if w, ok := entities.ParseWater(cell(rec, cWater)); ok {
			p.Water = w
		}
		if v := cell(rec, cProfit); v != "" {
			if p.Profitability, err = strconv.Atoi(v); err != nil {
				return nil, fmt.Errorf("row %d: profitability: %w", line, err)
			}
		}
		if v := cell(rec, cEase); v != "" {
			if p.EaseOfCultivation, err = strconv.Atoi(v); err != nil {
				return nil, fmt.Errorf("row %d: ease: %w", line, err)
			}
		}
		for _, r := range splitList(cell(rec, cReg)) {
			reg, ok := entities.ParseRegion(r)
			if !ok {
				return nil, fmt.Errorf("row %d: unknown region %q", line, r)
			}
			p.Regions = append(p.Regions, reg)
		}
		out = append(out, p)
	}
	return out, nil
}

func parseRegions(rows [][]string) (map[entities.Region][]string, error) {
	if len(rows) == 0 {
		return nil, errors.New("empty table")
	}
	h := newHeader(rows[0])
	cReg := h.find("Region", "zone")
	cCrops := h.find("Crops", "crop", "cropname")
	if cReg == -1 || cCrops == -1 {
		return nil, fmt.Errorf("missing required columns. Found headers: %v\nNeed: Region, Crops", rows[0])
	}
	out := map[entities.Region][]string{}
	for i, rec := range rows[1:] {
		raw := cell(rec, cReg)
		if raw == "" {
			continue
		}
		r, ok := entities.ParseRegion(raw)
		if !ok {
			return nil, fmt.Errorf("row %d: unknown region %q", i+2, raw)
		}
		out[r] = append(out[r], splitList(cell(rec, cCrops))...)
	}
	return out, nil
}
