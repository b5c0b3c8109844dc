package controllerImp

import (
	"net/http"
	"strconv"
	"time"
	"github.com/labstack/echo/v4"
	"krishi/entities"
	"krishi/pkg/farm/repository"
)

type FarmCtrl struct{ repo repository.FarmRepository }

func New(repo repository.FarmRepository) *FarmCtrl { return &FarmCtrl{repo} }

type createReq struct {
	Name       string  `json:"name"`
	CropType   string  `json:"crop_type"`
	SoilType   string  `json:"soil_type"`
	FieldSize  float64 `json:"field_size"`
	SizeUnit   string  `json:"size_unit"`
	Village    string  `json:"village"`
	District   string  `json:"district"`
	State      string  `json:"state"`
	SowingDate string  `json:"sowing_date"`
}

func (h *FarmCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil { return c.JSON(http.StatusBadRequest, map[string]string{"error":"bad json"}) }
	sd, _ := time.Parse("2006-01-02", req.SowingDate)
	f := &entities.Farm{UserID: uid, Name: req.Name, CropType: req.CropType, SoilType: req.SoilType, FieldSize: req.FieldSize, SizeUnit: req.SizeUnit, Village: req.Village, District: req.District, State: req.State, SowingDate: sd}
	if err := h.repo.Create(f); err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusCreated, f)
}

func (h *FarmCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	id, _ := strconv.Atoi(c.Param("id"))
	f, err := h.repo.FindByID(uint(id), uid)
	if err != nil { return c.JSON(http.StatusNotFound, map[string]string{"error":"not found"}) }
	return c.JSON(http.StatusOK, f)
}

func (h *FarmCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	fs, err := h.repo.ListByUser(uid)
	if err != nil { return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) }
	return c.JSON(http.StatusOK, fs)
}
