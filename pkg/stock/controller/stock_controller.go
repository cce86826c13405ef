package controller

import "github.com/labstack/echo/v4"

type StockController interface {
	Create(c echo.Context) error
	List(c echo.Context) error
	Use(c echo.Context) error
	Add(c echo.Context) error
	Delete(c echo.Context) error
	Export(c echo.Context) error
}
