package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/recommend/controllerImp"
	"cropadvisor/pkg/recommend/serviceImp"
	"cropadvisor/pkg/region"
	"cropadvisor/pkg/scoring"
	"cropadvisor/pkg/soil/provider"
)

var errAnalysisFailed = errors.New("soil analysis failed")

type recommendOptions struct {
	farmer  entities.FarmerProfile
	report  string
	soil    map[string]*float64
	format  string
	explain bool
}

// soil flags in display order
var soilFlags = []struct{ name, usage string }{
	{"ph", "Soil pH"},
	{"nitrogen", "Available nitrogen (kg/ha)"},
	{"phosphorus", "Available phosphorus (kg/ha)"},
	{"potassium", "Available potassium (kg/ha)"},
	{"organic-matter", "Organic matter (%)"},
	{"moisture", "Moisture (%)"},
}

func newRecommendCommand(a *app) *cobra.Command {
	opts := &recommendOptions{soil: map[string]*float64{}}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend crops for a farmer",
		Long: `Recommend up to four crops for a farmer's land.

The soil reading comes either from a report file (--report: xlsx, html, txt,
pdf, jpg or png) or from the individual soil flags. Soil flags that are not
given count as not measured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, f := range soilFlags {
				if !cmd.Flags().Changed(f.name) {
					delete(opts.soil, f.name)
				}
			}
			return runRecommend(cmd.Context(), cmd.OutOrStdout(), a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.farmer.Name, "name", "", "Farmer name")
	cmd.Flags().StringVar(&opts.farmer.LandArea, "land-area", "", "Land area in acres")
	cmd.Flags().StringVar(&opts.farmer.Pincode, "pincode", "", "6-digit postal code")
	cmd.Flags().StringVarP(&opts.report, "report", "r", "", "Soil report file")
	for _, f := range soilFlags {
		opts.soil[f.name] = cmd.Flags().Float64(f.name, 0, f.usage)
	}
	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.explain, "explain", false, "Show the per-factor score of each crop")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("land-area")
	_ = cmd.MarkFlagRequired("pincode")
	for _, f := range soilFlags {
		cmd.MarkFlagsMutuallyExclusive("report", f.name)
	}

	return cmd
}

// cliResult is the machine-readable output of recommend.
type cliResult struct {
	entities.Result `yaml:",inline"`
	Soil            *entities.SoilReading        `json:"soil,omitempty" yaml:"soil,omitempty"`
	Scores          map[string]scoring.Breakdown `json:"scores,omitempty" yaml:"scores,omitempty"`
}

func runRecommend(ctx context.Context, w io.Writer, a *app, opts *recommendOptions) error {
	switch opts.format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported format %q: must be text, json or yaml", opts.format)
	}

	farmer := opts.farmer.Normalized()
	if err := farmer.Validate(); err != nil {
		return err
	}

	cat, err := openCatalog(a)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	// the reading actually used, for --explain and machine output
	var reading *entities.SoilReading
	var prov provider.Provider
	var art entities.Artifact

	switch {
	case opts.report != "":
		data, err := os.ReadFile(opts.report)
		if err != nil {
			return fmt.Errorf("read report: %w", err)
		}
		art = entities.Artifact{Filename: filepath.Base(opts.report), Data: data}
		var vision provider.Provider
		if a.cfg.LLMEnabled() {
			vision = provider.NewVision(a.cfg.LLMEndpoint, a.cfg.LLMAPIKey, a.cfg.LLMModel)
		}
		inner := provider.NewDefault(a.cfg.SimulatedDelay, vision, a.log)
		prov = provider.Func(func(ctx context.Context, art entities.Artifact) (entities.SoilReading, error) {
			r, err := inner.Analyze(ctx, art)
			if err == nil {
				reading = &r
			}
			return r, err
		})
	case len(opts.soil) > 0:
		r := manualReading(opts.soil)
		if err := r.Validate(); err != nil {
			return err
		}
		reading = &r
		prov = provider.Fixed(r)
	default:
		return errors.New("give a soil report with --report or at least one soil value (--ph, --nitrogen, ...)")
	}

	svc := serviceImp.NewRecommendService(cat, prov, a.cfg.ProviderTimeout, a.log)
	res := svc.Recommend(ctx, art, farmer)

	out := cliResult{Result: res}
	if res.Success {
		out.Soil = reading
		if opts.explain && reading != nil {
			out.Scores = explain(cat, *reading, res)
		}
	}

	if err := render(w, opts.format, out); err != nil {
		return err
	}
	if !res.Success {
		return errAnalysisFailed
	}
	return nil
}

func manualReading(vals map[string]*float64) entities.SoilReading {
	var r entities.SoilReading
	for name, v := range vals {
		val := *v
		switch name {
		case "ph":
			r.PH = &val
		case "nitrogen":
			r.Nitrogen = &val
		case "phosphorus":
			r.Phosphorus = &val
		case "potassium":
			r.Potassium = &val
		case "organic-matter":
			r.OrganicMatter = &val
		case "moisture":
			r.Moisture = &val
		}
	}
	return r
}

func explain(cat *catalog.Catalog, soil entities.SoilReading, res entities.Result) map[string]scoring.Breakdown {
	out := make(map[string]scoring.Breakdown, len(res.Recommendations))
	for _, rec := range res.Recommendations {
		if p, ok := cat.Profile(rec.Name); ok {
			out[rec.Name] = scoring.Explain(p, soil, res.Region)
		}
	}
	return out
}

func render(w io.Writer, format string, out cliResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	}
	return renderText(w, out)
}

func renderText(w io.Writer, out cliResult) error {
	var b strings.Builder
	if !out.Success {
		fmt.Fprintln(&b, out.AnalysisNote)
		_, err := io.WriteString(w, b.String())
		return err
	}

	fmt.Fprintf(&b, "Region: %s (%s India)\n\n", out.Region, region.Adjective(out.Region))
	if len(out.Recommendations) == 0 {
		fmt.Fprintln(&b, controllerImp.NoMatchMessage)
	}
	for i, r := range out.Recommendations {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Name)
		fmt.Fprintf(&b, "   profitability %d  ease %d  water %s  harvest %s  price %s\n",
			r.Profitability, r.EaseOfCultivation, r.WaterRequirement, r.HarvestTime, r.MarketPrice)
		fmt.Fprintf(&b, "   %s\n   %s\n", r.SuitabilityReason, r.LocationAdvantage)
		if len(r.Fertilizers) > 0 {
			fmt.Fprintf(&b, "   fertilizers: %s\n", strings.Join(r.Fertilizers, ", "))
		}
		if bd, ok := out.Scores[r.Name]; ok {
			fmt.Fprintf(&b, "   score: pH %.1f + region %.1f + N %.1f + P %.1f + K %.1f = %.1f\n",
				bd.PH, bd.Region, bd.Nitrogen, bd.Phosphorus, bd.Potassium, bd.Total)
		}
	}
	fmt.Fprintf(&b, "\n%s\n", out.AnalysisNote)
	_, err := io.WriteString(w, b.String())
	return err
}
