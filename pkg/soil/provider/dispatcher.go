package provider

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"cropadvisor/entities"
)

const (
	TypePDF  = "application/pdf"
	TypeJPEG = "image/jpeg"
	TypePNG  = "image/png"
	TypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	TypeHTML = "text/html"
	TypeText = "text/plain"
)

// Dispatcher picks a provider by content type. Anything without a route,
// and any route that cannot find measurements, goes to Fallback.
type Dispatcher struct {
	Routes   map[string]Provider
	Fallback Provider
	Log      *zap.Logger
}

func (d *Dispatcher) Analyze(ctx context.Context, a entities.Artifact) (entities.SoilReading, error) {
	ct := ContentType(a)
	a.ContentType = ct

	p, ok := d.Routes[ct]
	if !ok {
		if d.Fallback == nil {
			return entities.SoilReading{}, ErrUnsupported
		}
		return d.Fallback.Analyze(ctx, a)
	}

	reading, err := p.Analyze(ctx, a)
	if err == nil {
		return reading, nil
	}
	if d.Fallback == nil || !(errors.Is(err, ErrNoReadings) || errors.Is(err, ErrUnsupported)) {
		return reading, err
	}
	d.log().Warn("soil provider found nothing, using fallback",
		zap.String("content_type", ct), zap.String("file", a.Filename), zap.Error(err))
	return d.Fallback.Analyze(ctx, a)
}

func (d *Dispatcher) log() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}

// ContentType normalizes the declared type, falling back to the file
// extension when the client sent nothing useful.
func ContentType(a entities.Artifact) string {
	ct := strings.ToLower(strings.TrimSpace(a.ContentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if ct == "image/jpg" {
		ct = TypeJPEG
	}
	if ct != "" && ct != "application/octet-stream" {
		return ct
	}
	switch strings.ToLower(filepath.Ext(a.Filename)) {
	case ".pdf":
		return TypePDF
	case ".jpg", ".jpeg":
		return TypeJPEG
	case ".png":
		return TypePNG
	case ".xlsx":
		return TypeXLSX
	case ".html", ".htm":
		return TypeHTML
	case ".txt":
		return TypeText
	}
	return ct
}

// NewDefault routes lab exports to the parsers, photos to vision when it is
// configured, and everything else (PDF scans included) to the simulator.
func NewDefault(simDelay time.Duration, vision Provider, log *zap.Logger) *Dispatcher {
	routes := map[string]Provider{
		TypeXLSX: Spreadsheet{},
		TypeHTML: Report{},
		TypeText: Report{},
	}
	if vision != nil {
		routes[TypeJPEG] = vision
		routes[TypePNG] = vision
	}
	return &Dispatcher{Routes: routes, Fallback: NewSimulated(simDelay), Log: log}
}
