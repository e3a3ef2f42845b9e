package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	recCtrl interface {
		Recommend(echo.Context) error
		Manual(echo.Context) error
		Crops(echo.Context) error
		Region(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api/v1")
	api.POST("/recommendations", recCtrl.Recommend)
	api.POST("/recommendations/manual", recCtrl.Manual)

	api.GET("/crops", recCtrl.Crops)
	api.GET("/regions/:pincode", recCtrl.Region)
	return e
}
