package controllerImp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/recommend/service"
	"cropadvisor/pkg/recommend/serviceImp"
	"cropadvisor/pkg/soil/provider"
)

var goodSoil = entities.SoilReading{
	PH:         entities.Float(6.5),
	Nitrogen:   entities.Float(180),
	Phosphorus: entities.Float(25),
	Potassium:  entities.Float(200),
}

func newServer(t *testing.T, prov provider.Provider, maxUpload int64) *echo.Echo {
	t.Helper()
	cat := catalog.Default()
	svc := serviceImp.NewRecommendService(cat, prov, time.Second, nil)
	h := New(svc, cat, maxUpload, nil)

	e := echo.New()
	e.POST("/api/v1/recommendations", h.Recommend)
	e.POST("/api/v1/recommendations/manual", h.Manual)
	e.GET("/api/v1/crops", h.Crops)
	e.GET("/api/v1/regions/:pincode", h.Region)
	return e
}

func upload(t *testing.T, e *echo.Echo, query string, fields map[string]string, filename string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("report", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations"+query, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func postJSON(e *echo.Echo, path string, v any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(v)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

type resultBody struct {
	Success         bool                          `json:"success"`
	Region          string                        `json:"region"`
	Recommendations []entities.CropRecommendation `json:"recommendations"`
	AnalysisNote    string                        `json:"analysis_note"`
	Message         string                        `json:"message"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) resultBody {
	t.Helper()
	var out resultBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

var ravi = map[string]string{"name": "Ravi", "land_area": "2.5", "pincode": "110001"}

func TestRecommend_Upload(t *testing.T) {
	e := newServer(t, provider.Fixed(goodSoil), 10<<20)
	rec := upload(t, e, "", ravi, "card.png", []byte("png bytes"))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	out := decode(t, rec)
	assert.True(t, out.Success)
	assert.Equal(t, "north", out.Region)
	assert.NotEmpty(t, out.Recommendations)
	assert.LessOrEqual(t, len(out.Recommendations), 4)
	assert.True(t, strings.HasPrefix(out.AnalysisNote, "Soil Analysis for Ravi's 2.5 acre land in northern India:"))
	assert.Empty(t, out.Message)
}

func TestRecommend_IntakeErrors(t *testing.T) {
	e := newServer(t, provider.Fixed(goodSoil), 16)

	rec := upload(t, e, "", ravi, "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "report file is required")

	rec = upload(t, e, "", map[string]string{"name": "Ravi", "land_area": "2.5", "pincode": "1100"}, "card.png", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), entities.ErrInvalidPincode.Error())

	rec = upload(t, e, "", map[string]string{"name": "Ravi", "land_area": "-1", "pincode": "110001"}, "card.png", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = upload(t, e, "", ravi, "card.docx", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = upload(t, e, "", ravi, "card.pdf", bytes.Repeat([]byte("x"), 17))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "too large")

	rec = upload(t, e, "?sort=price", ravi, "card.pdf", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecommend_ProviderFailure(t *testing.T) {
	failing := provider.Func(func(context.Context, entities.Artifact) (entities.SoilReading, error) {
		return entities.SoilReading{}, errors.New("unreadable")
	})
	e := newServer(t, failing, 10<<20)
	rec := upload(t, e, "", ravi, "card.jpg", []byte("jpeg"))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	out := decode(t, rec)
	assert.False(t, out.Success)
	assert.Equal(t, service.FailureNote, out.AnalysisNote)
	assert.NotNil(t, out.Recommendations)
	assert.Empty(t, out.Recommendations)
}

func TestManual(t *testing.T) {
	e := newServer(t, nil, 0)
	body := map[string]any{
		"farmer": map[string]string{"name": "Meena", "land_area": "4", "pincode": "500001"},
		"soil":   goodSoil,
	}

	rec := postJSON(e, "/api/v1/recommendations/manual", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	byProfit := decode(t, rec)
	assert.Equal(t, "south", byProfit.Region)
	require.NotEmpty(t, byProfit.Recommendations)

	rec = postJSON(e, "/api/v1/recommendations/manual?sort=ease", body)
	require.Equal(t, http.StatusOK, rec.Code)
	byEase := decode(t, rec)
	assert.ElementsMatch(t, names(byProfit.Recommendations), names(byEase.Recommendations))
	for i := 1; i < len(byEase.Recommendations); i++ {
		assert.GreaterOrEqual(t, byEase.Recommendations[i-1].EaseOfCultivation, byEase.Recommendations[i].EaseOfCultivation)
	}
}

func TestManual_NoMatch(t *testing.T) {
	e := newServer(t, nil, 0)
	rec := postJSON(e, "/api/v1/recommendations/manual", map[string]any{
		"farmer": map[string]string{"name": "Meena", "land_area": "4", "pincode": "500001"},
		"soil":   map[string]float64{"ph": 14},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	assert.True(t, out.Success)
	assert.Empty(t, out.Recommendations)
	assert.Equal(t, NoMatchMessage, out.Message)
}

func TestManual_NoSoilValues(t *testing.T) {
	e := newServer(t, nil, 0)
	rec := postJSON(e, "/api/v1/recommendations/manual", map[string]any{
		"farmer": map[string]string{"name": "Meena", "land_area": "4", "pincode": "500001"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode(t, rec)
	assert.True(t, out.Success)
	assert.Equal(t, "south", out.Region)
	assert.NotContains(t, out.AnalysisNote, "pH")
}

func TestManual_BadInput(t *testing.T) {
	e := newServer(t, nil, 0)
	rec := postJSON(e, "/api/v1/recommendations/manual", map[string]any{
		"farmer": map[string]string{"name": "Meena", "land_area": "4", "pincode": "500001"},
		"soil":   map[string]float64{"ph": 6.5, "nitrogen": -5},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), entities.ErrNegativeReading.Error())

	rec = postJSON(e, "/api/v1/recommendations/manual", map[string]any{
		"farmer": map[string]string{"name": " ", "land_area": "4", "pincode": "500001"},
		"soil":   goodSoil,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), entities.ErrNameRequired.Error())
}

func TestCrops(t *testing.T) {
	e := newServer(t, nil, 0)

	var all []entities.CropProfile
	rec := get(e, "/api/v1/crops")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, catalog.Default().Len())

	var north []entities.CropProfile
	rec = get(e, "/api/v1/crops?region=North")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &north))
	assert.Equal(t, catalog.Default().Candidates(entities.North), names2(north))

	assert.Equal(t, http.StatusBadRequest, get(e, "/api/v1/crops?region=mars").Code)
}

func TestRegion(t *testing.T) {
	e := newServer(t, nil, 0)
	rec := get(e, "/api/v1/regions/700001")
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Region     string   `json:"region"`
		Adjective  string   `json:"adjective"`
		Candidates []string `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "east", out.Region)
	assert.Equal(t, "eastern", out.Adjective)
	assert.Contains(t, out.Candidates, "Jute")

	assert.Equal(t, http.StatusBadRequest, get(e, "/api/v1/regions/70a001").Code)
}

func names(recs []entities.CropRecommendation) []string {
	var out []string
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}

func names2(ps []entities.CropProfile) []string {
	var out []string
	for _, p := range ps {
		out = append(out, p.Name)
	}
	return out
}
