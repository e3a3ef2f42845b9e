package controller

import "github.com/labstack/echo/v4"

type RecommendController interface {
	Recommend(c echo.Context) error
	Manual(c echo.Context) error
	Crops(c echo.Context) error
	Region(c echo.Context) error
}
