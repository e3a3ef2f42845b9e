package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"cropadvisor/pkg/catalog"
)

var appStart = time.Now()

type HealthCtrl struct {
	cat *catalog.Catalog
	db  *gorm.DB // nil unless the catalog is read from SQLite
}

func NewHealthCtrl(cat *catalog.Catalog, db *gorm.DB) *HealthCtrl {
	return &HealthCtrl{cat: cat, db: db}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
	N   int    `json:"crops,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	checks := map[string]sub{}

	catOK := h.cat != nil && h.cat.Len() > 0
	cs := sub{OK: catOK}
	if catOK {
		cs.N = h.cat.Len()
	} else {
		cs.Err = "catalog is empty"
	}
	checks["catalog"] = cs

	allOK := catOK
	if h.db != nil {
		ds := sub{OK: true}
		sqlDB, err := h.db.DB()
		if err != nil {
			ds = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			ds = sub{Err: "ping: " + err.Error()}
		}
		checks["database"] = ds
		allOK = allOK && ds.OK
	}

	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     checks,
		"time":       time.Now().Format(time.RFC3339),
	})
}
