package controllerImp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"krishi/pkg/purchase"
	psvc "krishi/pkg/purchase/service"
)

type httpCtrl struct{ s psvc.Service }

func New(s psvc.Service) *httpCtrl { return &httpCtrl{s: s} }

func (h *httpCtrl) Register(e *echo.Echo) {
	g := e.Group("/api/v1")
	g.POST("/farms/:farm_id/purchases", h.create)
	g.GET("/farms/:farm_id/purchases", h.list)
	g.PATCH("/purchases/:id", h.patch)

	// fallback without prefix, the web client calls /farms/... directly
	e.POST("/farms/:farm_id/purchases", h.create)
	e.GET("/farms/:farm_id/purchases", h.list)
	e.PATCH("/purchases/:id", h.patch)
}

func (h *httpCtrl) create(c echo.Context) error {
	fid, _ := strconv.Atoi(c.Param("farm_id"))
	var p purchase.Purchase
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	p.FarmID = uint(fid)
	if err := h.s.Create(&p); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *httpCtrl) list(c echo.Context) error {
	fid, _ := strconv.Atoi(c.Param("farm_id"))
	var from, to *time.Time
	if v := c.QueryParam("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil { from = &t }
	}
	if v := c.QueryParam("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil { to = &t }
	}
	out, err := h.s.ListByFarm(uint(fid), from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *httpCtrl) patch(c echo.Context) error {
	id, _ := strconv.Atoi(c.Param("id"))
	var p psvc.PurchasePatch
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	out, err := h.s.UpdatePartial(uint(id), p)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}
