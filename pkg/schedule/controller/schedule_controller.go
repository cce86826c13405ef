package controller

import "github.com/labstack/echo/v4"

type ScheduleController interface {
	Create(c echo.Context) error
	ListByPlot(c echo.Context) error
	ListAll(c echo.Context) error
	Overview(c echo.Context) error
	Update(c echo.Context) error
	ToggleComplete(c echo.Context) error
	Delete(c echo.Context) error
}
