package provider

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"cropadvisor/entities"
)

// Report extracts readings from an HTML lab report (tables) or a plain-text
// one with "Key: value" lines.
type Report struct{}

func (Report) Analyze(ctx context.Context, a entities.Artifact) (entities.SoilReading, error) {
	if err := ctx.Err(); err != nil {
		return entities.SoilReading{}, err
	}
	if isHTML(a) {
		return fromHTML(a.Data)
	}
	return fromText(a.Data)
}

func isHTML(a entities.Artifact) bool {
	ct := strings.ToLower(a.ContentType)
	if strings.HasPrefix(ct, "text/html") || strings.HasSuffix(strings.ToLower(a.Filename), ".html") || strings.HasSuffix(strings.ToLower(a.Filename), ".htm") {
		return true
	}
	head := bytes.ToLower(bytes.TrimSpace(a.Data))
	return bytes.HasPrefix(head, []byte("<!doctype html")) || bytes.HasPrefix(head, []byte("<html"))
}

func fromHTML(data []byte) (entities.SoilReading, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return entities.SoilReading{}, fmt.Errorf("parse html report: %w", err)
	}

	var rows [][]string
	doc.Find("table tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("th, td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	if len(rows) > 0 {
		if out, err := readRows(rows); err == nil {
			return out, nil
		}
	}

	// some cards use <dl> or bare paragraphs instead of tables
	return fromText([]byte(doc.Text()))
}

func fromText(data []byte) (entities.SoilReading, error) {
	var out entities.SoilReading
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		k, v, ok := strings.Cut(line, ":")
		if !ok {
			k, v, ok = strings.Cut(line, "=")
		}
		if !ok {
			continue
		}
		apply(&out, k, v)
	}
	if err := sc.Err(); err != nil {
		return out, fmt.Errorf("scan report: %w", err)
	}
	if out.Empty() {
		return out, ErrNoReadings
	}
	return out, nil
}
