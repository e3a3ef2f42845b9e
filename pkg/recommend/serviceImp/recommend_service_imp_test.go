package serviceImp

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/recommend/service"
	"cropadvisor/pkg/soil/provider"
)

var f = entities.Float

func farmer(pincode string) entities.FarmerProfile {
	return entities.FarmerProfile{Name: "Ravi", LandArea: "2.50", Pincode: pincode}
}

func wheatOnly(t *testing.T, regional map[entities.Region][]string) *catalog.Catalog {
	t.Helper()
	wheat, ok := catalog.Default().Profile("Wheat")
	require.True(t, ok)
	c, err := catalog.New([]entities.CropProfile{wheat}, regional)
	require.NoError(t, err)
	return c
}

func easyCrop(name string, base int) entities.CropProfile {
	return entities.CropProfile{
		Name:              name,
		PHRange:           [2]float64{5.0, 8.0},
		Nitrogen:          entities.Low,
		Phosphorus:        entities.Low,
		Potassium:         entities.Low,
		Water:             entities.WaterMedium,
		Profitability:     base,
		EaseOfCultivation: base / 2,
		Regions:           []entities.Region{entities.North},
	}
}

func TestGenerate_WheatScenario(t *testing.T) {
	svc := NewRecommendService(wheatOnly(t, map[entities.Region][]string{entities.North: {"Wheat"}}), nil, 0, nil)
	soil := entities.SoilReading{PH: f(6.5), Nitrogen: f(180), Phosphorus: f(25), Potassium: f(200)}

	res := svc.Generate(soil, farmer("110001"))
	require.True(t, res.Success)
	assert.Equal(t, entities.North, res.Region)
	require.Len(t, res.Recommendations, 1)

	w := res.Recommendations[0]
	assert.Equal(t, "Wheat", w.Name)
	// every factor is saturated, so the score is 100 and profitability equals the base
	assert.Equal(t, 65, w.Profitability)
	assert.LessOrEqual(t, w.Profitability, 65)
	assert.Equal(t, 95, w.EaseOfCultivation)
	assert.Equal(t, entities.WaterLow, w.WaterRequirement)
	assert.Equal(t, "Optimal pH level (6.5), Excellent soil-crop compatibility", w.SuitabilityReason)
	assert.Equal(t, "Well-suited for northern India climate", w.LocationAdvantage)
}

func TestGenerate_ProfitabilityScalesWithScore(t *testing.T) {
	svc := NewRecommendService(wheatOnly(t, map[entities.Region][]string{entities.Central: {"Wheat"}}), nil, 0, nil)
	// pH 40 + region 30 + N 5 = 75
	res := svc.Generate(entities.SoilReading{PH: f(7.0), Nitrogen: f(75)}, farmer("000001"))
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, 49, res.Recommendations[0].Profitability) // round(65 * 0.75)
	assert.Equal(t, "Optimal pH level (7.0), Good soil suitability", res.Recommendations[0].SuitabilityReason)
}

func TestGenerate_ThresholdIsExclusive(t *testing.T) {
	svc := NewRecommendService(wheatOnly(t, map[entities.Region][]string{entities.North: {"Wheat"}}), nil, 0, nil)

	// region 30 + N 10 + P 10 = exactly 50
	exact := entities.SoilReading{Nitrogen: f(150), Phosphorus: f(20)}
	res := svc.Generate(exact, farmer("110001"))
	assert.True(t, res.Success)
	assert.Empty(t, res.Recommendations)

	// K adds 0.0001
	above := entities.SoilReading{Nitrogen: f(150), Phosphorus: f(20), Potassium: f(0.0018)}
	res = svc.Generate(above, farmer("110001"))
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "Moderate suitability with soil amendments", res.Recommendations[0].SuitabilityReason)
}

func TestGenerate_TopFourStableOrder(t *testing.T) {
	profiles := []entities.CropProfile{
		easyCrop("A", 70), easyCrop("B", 90), easyCrop("C", 70),
		easyCrop("D", 70), easyCrop("E", 40), easyCrop("F", 60),
	}
	c, err := catalog.New(profiles, map[entities.Region][]string{entities.North: {"A", "B", "C", "D", "E", "F"}})
	require.NoError(t, err)
	svc := NewRecommendService(c, nil, 0, nil)

	soil := entities.SoilReading{PH: f(6.5), Nitrogen: f(1), Phosphorus: f(1), Potassium: f(1)}
	res := svc.Generate(soil, farmer("110001"))
	require.Len(t, res.Recommendations, MaxRecommendations)

	var names []string
	for i, r := range res.Recommendations {
		names = append(names, r.Name)
		if i > 0 {
			assert.GreaterOrEqual(t, res.Recommendations[i-1].Profitability, r.Profitability)
		}
	}
	assert.Equal(t, []string{"B", "A", "C", "D"}, names)
}

func TestGenerate_DefaultCatalogInvariants(t *testing.T) {
	svc := NewRecommendService(catalog.Default(), nil, 0, nil)
	soil := entities.SoilReading{PH: f(6.5), Nitrogen: f(180), Phosphorus: f(25), Potassium: f(200)}
	for _, pin := range []string{"110001", "500001", "700001", "900001", "010001"} {
		res := svc.Generate(soil, farmer(pin))
		assert.True(t, res.Success, pin)
		assert.LessOrEqual(t, len(res.Recommendations), MaxRecommendations, pin)
		for i, r := range res.Recommendations {
			p, ok := catalog.Default().Profile(r.Name)
			require.True(t, ok)
			assert.LessOrEqual(t, r.Profitability, p.Profitability, r.Name)
			if i > 0 {
				assert.GreaterOrEqual(t, res.Recommendations[i-1].Profitability, r.Profitability, pin)
			}
		}
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	svc := NewRecommendService(catalog.Default(), nil, 0, nil)
	soil := entities.SoilReading{PH: f(5.8), Nitrogen: f(120), Potassium: f(210), OrganicMatter: f(2.4)}
	a := svc.Generate(soil, farmer("400001"))
	b := svc.Generate(soil, farmer("400001"))
	assert.Equal(t, a, b)
}

func TestGenerate_EmptyIsSuccess(t *testing.T) {
	svc := NewRecommendService(catalog.Default(), nil, 0, nil)
	res := svc.Generate(entities.SoilReading{}, farmer("110001"))
	assert.True(t, res.Success)
	assert.Empty(t, res.Recommendations)
	assert.NotEmpty(t, res.AnalysisNote)
}

func TestGenerate_SkipsMissingProfile(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	c := wheatOnly(t, map[entities.Region][]string{entities.North: {"Ghost", "Wheat"}})
	svc := NewRecommendService(c, nil, 0, zap.New(core))

	res := svc.Generate(entities.SoilReading{PH: f(6.5), Nitrogen: f(150)}, farmer("110001"))
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, "Wheat", res.Recommendations[0].Name)

	warns := logs.FilterMessage("region lists crop without a profile, skipping").All()
	require.Len(t, warns, 1)
	assert.Equal(t, "Ghost", warns[0].ContextMap()["crop"])
}

func TestAnalysisNote(t *testing.T) {
	note := analysisNote(entities.SoilReading{PH: f(5.5), OrganicMatter: f(0.8)}, farmer("110001"), entities.North)
	assert.Equal(t, strings.Join([]string{
		"Soil Analysis for Ravi's 2.5 acre land in northern India:",
		"• Soil is slightly acidic (pH 5.5) - consider lime application",
		"• Low organic matter (0.8%) - add compost or farmyard manure",
		"• Climate and rainfall patterns are favorable for northern India crops",
		"• Recommendations are optimized for 2.5 acre cultivation",
	}, "\n"), note)

	note = analysisNote(entities.SoilReading{PH: f(8.1), OrganicMatter: f(2.6)}, farmer("010001"), entities.Central)
	assert.Contains(t, note, "in central India:")
	assert.Contains(t, note, "• Soil is slightly alkaline (pH 8.1) - consider sulfur application")
	assert.Contains(t, note, "• Good organic matter content (2.6%)")

	// 1.0-2.0 inclusive: no organic matter line
	note = analysisNote(entities.SoilReading{PH: f(7.5), OrganicMatter: f(2.0)}, farmer("110001"), entities.North)
	assert.Contains(t, note, "• Soil pH is optimal (7.5) for most crops")
	assert.NotContains(t, note, "organic matter")

	// one decimal, like the suitability reason
	note = analysisNote(entities.SoilReading{PH: f(5.678), OrganicMatter: f(2.3456)}, farmer("110001"), entities.North)
	assert.Contains(t, note, "• Soil is slightly acidic (pH 5.7) - consider lime application")
	assert.Contains(t, note, "• Good organic matter content (2.3%)")

	note = analysisNote(entities.SoilReading{PH: f(7)}, farmer("110001"), entities.North)
	assert.Contains(t, note, "• Soil pH is optimal (7.0) for most crops")
}

func TestSuitabilityReason_Bands(t *testing.T) {
	wheat, ok := catalog.Default().Profile("Wheat")
	require.True(t, ok)
	tests := []struct {
		score float64
		want  string
	}{
		{100, "Excellent soil-crop compatibility"},
		{80.01, "Excellent soil-crop compatibility"},
		{80, "Good soil suitability"},
		{70.01, "Good soil suitability"},
		{70, "Moderate suitability with soil amendments"},
		{51, "Moderate suitability with soil amendments"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, suitabilityReason(wheat, entities.SoilReading{}, tt.score), "score %v", tt.score)
	}
	assert.Equal(t, "Optimal pH level (6.5), Good soil suitability",
		suitabilityReason(wheat, entities.SoilReading{PH: f(6.5)}, 75))
}

func TestAnalysisNote_LimeIffAcidic(t *testing.T) {
	for _, ph := range []float64{3.5, 5.0, 5.99, 6.0, 6.5, 7.5, 7.51, 9.0} {
		note := analysisNote(entities.SoilReading{PH: f(ph)}, farmer("110001"), entities.North)
		assert.Equal(t, ph < 6.0, strings.Contains(note, "lime"), "pH %v", ph)
	}
	note := analysisNote(entities.SoilReading{}, farmer("110001"), entities.North)
	assert.NotContains(t, note, "lime")
}

func TestRecommend_UsesProvider(t *testing.T) {
	var seen entities.Artifact
	prov := provider.Func(func(ctx context.Context, a entities.Artifact) (entities.SoilReading, error) {
		seen = a
		return entities.SoilReading{PH: f(6.5), Nitrogen: f(180), Phosphorus: f(25), Potassium: f(200)}, nil
	})
	svc := NewRecommendService(wheatOnly(t, map[entities.Region][]string{entities.North: {"Wheat"}}), prov, time.Second, nil)

	res := svc.Recommend(context.Background(), entities.Artifact{Filename: "card.png"}, farmer("110001"))
	assert.True(t, res.Success)
	assert.Equal(t, "card.png", seen.Filename)
	require.Len(t, res.Recommendations, 1)
}

func TestRecommend_ProviderFailures(t *testing.T) {
	c := catalog.Default()
	cases := map[string]provider.Provider{
		"error": provider.Func(func(context.Context, entities.Artifact) (entities.SoilReading, error) {
			return entities.SoilReading{}, errors.New("blurry image")
		}),
		"panic": provider.Func(func(context.Context, entities.Artifact) (entities.SoilReading, error) {
			panic("decoder exploded")
		}),
		"timeout": provider.NewSimulatedSeeded(time.Hour, 1),
		"nil":     nil,
	}
	for name, prov := range cases {
		t.Run(name, func(t *testing.T) {
			svc := NewRecommendService(c, prov, 20*time.Millisecond, nil)
			res := svc.Recommend(context.Background(), entities.Artifact{}, farmer("110001"))
			assert.False(t, res.Success)
			assert.Empty(t, res.Recommendations)
			assert.Equal(t, service.FailureNote, res.AnalysisNote)
		})
	}
}
