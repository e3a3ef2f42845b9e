package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cropadvisor/database"
	"cropadvisor/entities"
	"cropadvisor/pkg/catalog"
)

type healthBody struct {
	Status struct {
		OK bool `json:"ok"`
	} `json:"status"`
	Checks map[string]sub `json:"checks"`
}

func call(t *testing.T, h *HealthCtrl) (int, healthBody) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	require.NoError(t, h.Health(c))
	var body healthBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealth_BuiltinCatalog(t *testing.T) {
	code, body := call(t, NewHealthCtrl(catalog.Default(), nil))
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Status.OK)
	assert.Equal(t, catalog.Default().Len(), body.Checks["catalog"].N)
	assert.NotContains(t, body.Checks, "database")
}

func TestHealth_WithDatabase(t *testing.T) {
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "h.db"))
	require.NoError(t, err)
	h := NewHealthCtrl(catalog.Default(), db)

	code, body := call(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.True(t, body.Checks["database"].OK)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	code, body = call(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, body.Checks["database"].OK)
	assert.NotEmpty(t, body.Checks["database"].Err)
}

func TestHealth_EmptyCatalog(t *testing.T) {
	empty, err := catalog.New(nil, map[entities.Region][]string{})
	require.NoError(t, err)
	code, body := call(t, NewHealthCtrl(empty, nil))
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.False(t, body.Checks["catalog"].OK)
}
