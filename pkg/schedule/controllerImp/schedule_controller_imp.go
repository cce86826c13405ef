package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmstock/pkg/apperr"
	"farmstock/pkg/schedule/controller"
	svc "farmstock/pkg/schedule/service"
)

type SchedCtrl struct{ s svc.ScheduleService }

func New(s svc.ScheduleService) controller.ScheduleController { return &SchedCtrl{s} }

func (h *SchedCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	plotID, err := parseID(c.Param("plot_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plot_id"})
	}
	var req svc.ScheduleInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	sch, err := h.s.Create(uid, plotID, req)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, sch)
}

func (h *SchedCtrl) ListByPlot(c echo.Context) error {
	uid := c.Get("uid").(string)
	plotID, err := parseID(c.Param("plot_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid plot_id"})
	}
	out, err := h.s.ListByPlot(uid, plotID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SchedCtrl) ListAll(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.s.ListAll(uid, c.QueryParam("filter"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SchedCtrl) Overview(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.s.Overview(uid, c.QueryParam("filter"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SchedCtrl) Update(c echo.Context) error {
	uid := c.Get("uid").(string)
	plotID, id, ok := h.ids(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req svc.ScheduleInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad json"})
	}
	sch, err := h.s.Update(uid, plotID, id, req)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sch)
}

func (h *SchedCtrl) ToggleComplete(c echo.Context) error {
	uid := c.Get("uid").(string)
	plotID, id, ok := h.ids(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	sch, err := h.s.ToggleComplete(uid, plotID, id)
	if err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, sch)
}

func (h *SchedCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	plotID, id, ok := h.ids(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.s.Delete(uid, plotID, id); err != nil {
		return c.JSON(apperr.HTTPStatus(err), echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *SchedCtrl) ids(c echo.Context) (plotID, id uint, ok bool) {
	plotID, err := parseID(c.Param("plot_id"))
	if err != nil {
		return 0, 0, false
	}
	id, err = parseID(c.Param("id"))
	if err != nil {
		return 0, 0, false
	}
	return plotID, id, true
}

func parseID(s string) (uint, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	return uint(v), err
}
