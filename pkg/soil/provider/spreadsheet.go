package provider

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"cropadvisor/entities"
)

// Spreadsheet reads a lab export (.xlsx) from the first sheet. Two layouts
// are understood: a key/value column pair ("Parameter | Value") or a
// single header row with one column per parameter and the sample below it.
type Spreadsheet struct{}

func (Spreadsheet) Analyze(ctx context.Context, a entities.Artifact) (entities.SoilReading, error) {
	if err := ctx.Err(); err != nil {
		return entities.SoilReading{}, err
	}
	f, err := excelize.OpenReader(bytes.NewReader(a.Data))
	if err != nil {
		return entities.SoilReading{}, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return entities.SoilReading{}, ErrNoReadings
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return entities.SoilReading{}, fmt.Errorf("read sheet: %w", err)
	}
	return readRows(rows)
}

func readRows(rows [][]string) (entities.SoilReading, error) {
	var out entities.SoilReading

	// header layout: more than one recognized key on the first row
	if len(rows) >= 2 {
		hits := 0
		for _, h := range rows[0] {
			if _, ok := aliases[normKey(h)]; ok {
				hits++
			}
		}
		if hits > 1 {
			for i, h := range rows[0] {
				if i < len(rows[1]) {
					apply(&out, h, rows[1][i])
				}
			}
			if out.Empty() {
				return out, ErrNoReadings
			}
			return out, nil
		}
	}

	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		apply(&out, row[0], row[1])
	}
	if out.Empty() {
		return out, ErrNoReadings
	}
	return out, nil
}
