package controllerImp

import (
	"net/http"
	"strconv"
	"time"
	"github.com/labstack/echo/v4"
	"krishi/entities"
	repo "krishi/pkg/soiltest/repository"
)

type SoilTestCtrl struct{ repo repo.SoilTestRepository }

func New(repo repo.SoilTestRepository) *SoilTestCtrl { return &SoilTestCtrl{repo} }

type testReq struct {
	Date         string   `json:"date"`
	SoilPH       *float64 `json:"soil_ph"`
	Nitrogen     *float64 `json:"nitrogen"`
	Phosphorus   *float64 `json:"phosphorus"`
	Potassium    *float64 `json:"potassium"`
	SoilMoisture *float64 `json:"soil_moisture"`
	Temperature  *float64 `json:"temperature"`
	Humidity     *float64 `json:"humidity"`
	LabName      string   `json:"lab_name"`
	Note         string   `json:"note"`
}

func (h *SoilTestCtrl) Create(c echo.Context) error {
	fid, _ := strconv.Atoi(c.Param("id"))
	var req testReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error":"bad json"}) }
	d := time.Now()
	if req.Date != "" { dd, err := time.Parse("2006-01-02", req.Date); if err==nil { d = dd } }
	t := &entities.SoilTest{ FarmID: uint(fid), Date: d, SoilPH: req.SoilPH, Nitrogen: req.Nitrogen, Phosphorus: req.Phosphorus, Potassium: req.Potassium, SoilMoisture: req.SoilMoisture, Temperature: req.Temperature, Humidity: req.Humidity, LabName: req.LabName, Note: req.Note }
	if err := h.repo.Create(t); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, t)
}

func (h *SoilTestCtrl) List(c echo.Context) error {
	fid, _ := strconv.Atoi(c.Param("id"))
	out, err := h.repo.Recent(uint(fid), 365)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, out)
}
