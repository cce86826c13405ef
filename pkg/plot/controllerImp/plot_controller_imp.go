package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmstock/entities"
	"farmstock/pkg/apperr"
	"farmstock/pkg/plot/controller"
	svc "farmstock/pkg/plot/service"
)

type PlotCtrl struct{ s svc.PlotService }

func New(s svc.PlotService) controller.PlotController { return &PlotCtrl{s} }

func (h *PlotCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req svc.PlotInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p, err := h.s.Create(uid, req)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *PlotCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	plots, err := h.s.List(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, plots)
}

func (h *PlotCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.s.Get(uid, id)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlotCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req svc.PlotInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	p, err := h.s.Update(uid, id, req)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlotCtrl) End(c echo.Context) error {
	return h.patch(c, h.s.End)
}

func (h *PlotCtrl) UndoEnd(c echo.Context) error {
	return h.patch(c, h.s.UndoEnd)
}

func (h *PlotCtrl) patch(c echo.Context, op func(string, uint) (*entities.Plot, error)) error {
	uid := c.Get("uid").(string)
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := op(uid, id)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlotCtrl) Delete(c echo.Context) error {
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

func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return uint(v), err
}
