package controllerImp

import (
	"cmp"
	"io"
	"net/http"
	"slices"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
	"cropadvisor/pkg/recommend/controller"
	"cropadvisor/pkg/recommend/service"
	"cropadvisor/pkg/region"
	"cropadvisor/pkg/soil/provider"
)

const NoMatchMessage = "No crop cleared the suitability threshold; consider soil treatment"

// accepted report uploads
var allowedTypes = map[string]bool{
	provider.TypePDF:  true,
	provider.TypeJPEG: true,
	provider.TypePNG:  true,
	provider.TypeXLSX: true,
	provider.TypeHTML: true,
	provider.TypeText: true,
}

type RecommendCtrl struct {
	svc       service.RecommendService
	cat       *catalog.Catalog
	maxUpload int64
	log       *zap.Logger
}

var _ controller.RecommendController = (*RecommendCtrl)(nil)

func New(svc service.RecommendService, cat *catalog.Catalog, maxUpload int64, log *zap.Logger) *RecommendCtrl {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecommendCtrl{svc: svc, cat: cat, maxUpload: maxUpload, log: log}
}

type resultResp struct {
	entities.Result
	Message string `json:"message,omitempty"`
}

type manualReq struct {
	Farmer entities.FarmerProfile `json:"farmer"`
	Soil   entities.SoilReading   `json:"soil"`
}

// Recommend handles a multipart upload: the "report" file plus the farmer
// fields name, land_area and pincode.
func (h *RecommendCtrl) Recommend(c echo.Context) error {
	sortBy := c.QueryParam("sort")
	if !validSort(sortBy) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sort must be profit or ease"})
	}

	farmer := entities.FarmerProfile{
		Name:     c.FormValue("name"),
		LandArea: c.FormValue("land_area"),
		Pincode:  c.FormValue("pincode"),
	}.Normalized()
	if err := farmer.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	fh, err := c.FormFile("report")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "report file is required"})
	}
	if h.maxUpload > 0 && fh.Size > h.maxUpload {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "report file is too large"})
	}
	art := entities.Artifact{Filename: fh.Filename, ContentType: fh.Header.Get("Content-Type")}
	art.ContentType = provider.ContentType(art)
	if !allowedTypes[art.ContentType] {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "report must be a PDF, JPEG, PNG, XLSX, HTML or text file"})
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read report file"})
	}
	defer src.Close()
	art.Data, err = io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read report file"})
	}

	h.log.Debug("report received",
		zap.String("file", art.Filename), zap.String("content_type", art.ContentType), zap.Int("bytes", len(art.Data)))

	res := h.svc.Recommend(c.Request().Context(), art, farmer)
	if !res.Success {
		res.Recommendations = []entities.CropRecommendation{}
		return c.JSON(http.StatusUnprocessableEntity, resultResp{Result: res})
	}
	return c.JSON(http.StatusOK, present(res, sortBy))
}

// Manual skips the soil provider and scores a reading typed in by the farmer.
func (h *RecommendCtrl) Manual(c echo.Context) error {
	sortBy := c.QueryParam("sort")
	if !validSort(sortBy) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "sort must be profit or ease"})
	}
	var req manualReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	farmer := req.Farmer.Normalized()
	if err := farmer.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	// an all-absent reading is still scored
	if err := req.Soil.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, present(h.svc.Generate(req.Soil, farmer), sortBy))
}

// Crops lists the catalog, optionally only the candidates of ?region=.
func (h *RecommendCtrl) Crops(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("region"))
	if q == "" {
		return c.JSON(http.StatusOK, h.cat.Profiles())
	}
	r, ok := entities.ParseRegion(q)
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown region"})
	}
	out := []entities.CropProfile{}
	for _, name := range h.cat.Candidates(r) {
		if p, ok := h.cat.Profile(name); ok {
			out = append(out, p)
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *RecommendCtrl) Region(c echo.Context) error {
	pin := strings.TrimSpace(c.Param("pincode"))
	if !entities.ValidPincode(pin) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": entities.ErrInvalidPincode.Error()})
	}
	r := region.Resolve(pin)
	return c.JSON(http.StatusOK, map[string]any{
		"pincode":    pin,
		"region":     r,
		"adjective":  region.Adjective(r),
		"candidates": h.cat.Candidates(r),
	})
}

func validSort(s string) bool { return s == "" || s == "profit" || s == "ease" }

func present(res entities.Result, sortBy string) resultResp {
	if sortBy == "ease" {
		recs := slices.Clone(res.Recommendations)
		slices.SortStableFunc(recs, func(a, b entities.CropRecommendation) int {
			return cmp.Compare(b.EaseOfCultivation, a.EaseOfCultivation)
		})
		res.Recommendations = recs
	}
	if res.Recommendations == nil {
		res.Recommendations = []entities.CropRecommendation{}
	}
	out := resultResp{Result: res}
	if len(res.Recommendations) == 0 {
		out.Message = NoMatchMessage
	}
	return out
}
