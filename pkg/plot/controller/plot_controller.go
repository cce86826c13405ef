package controller

import "github.com/labstack/echo/v4"

type PlotController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	End(c echo.Context) error
	UndoEnd(c echo.Context) error
	Delete(c echo.Context) error
}
