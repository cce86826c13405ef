package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmstock/entities"
	"farmstock/pkg/apperr"
	"farmstock/pkg/stock/controller"
	svc "farmstock/pkg/stock/service"
)

type StockCtrl struct{ s svc.StockService }

func New(s svc.StockService) controller.StockController { return &StockCtrl{s} }

func (h *StockCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req svc.CreateStockInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	item, err := h.s.Create(uid, req)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, item)
}

func (h *StockCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	items, err := h.s.List(uid, c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, items)
}

type adjustReq struct {
	Value string `json:"value"`
}

func (h *StockCtrl) Use(c echo.Context) error {
	return h.adjust(c, h.s.Use)
}

func (h *StockCtrl) Add(c echo.Context) error {
	return h.adjust(c, h.s.Add)
}

func (h *StockCtrl) adjust(c echo.Context, op func(string, uint, string) (*entities.StockItem, error)) error {
	uid := c.Get("uid").(string)
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req adjustReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	item, err := op(uid, id, req.Value)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	if item == nil {
		// fully consumed, row removed
		return c.JSON(http.StatusOK, echo.Map{"deleted": true})
	}
	return c.JSON(http.StatusOK, item)
}

func (h *StockCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.s.Delete(uid, id); err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *StockCtrl) Export(c echo.Context) error {
	uid := c.Get("uid").(string)
	f, err := h.s.ExportXLSX(uid)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="stocks.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}

func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return uint(v), err
}
