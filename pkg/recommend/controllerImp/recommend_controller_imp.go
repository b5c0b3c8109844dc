package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"krishi/pkg/agronomy"
	farmrepo "krishi/pkg/farm/repository"
	farmRepoImp "krishi/pkg/farm/repositoryImp"
	"krishi/pkg/ml"
	"krishi/pkg/recommend/serviceImp"
	"krishi/pkg/recommend/types"
)

type RecommendCtrl struct {
	svc   *serviceImp.RecommendSvc
	farms farmrepo.FarmRepository
}

func NewRecommendCtrl(db *gorm.DB, svc *serviceImp.RecommendSvc) *RecommendCtrl {
	return &RecommendCtrl{svc: svc, farms: farmRepoImp.New(db)}
}

func (h *RecommendCtrl) Generate(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	farm, err := h.farms.FindByID(uint(fid), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farm not found"})
	}

	var in types.FieldInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}

	rec, result, tasks, err := h.svc.Generate(farm, in)
	if err != nil {
		switch {
		case errors.Is(err, agronomy.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, ml.ErrUnavailable):
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"recommendation": result,
		"record":         rec,
		"tasks":          tasks,
	})
}

func (h *RecommendCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.farms.FindByID(uint(fid), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farm not found"})
	}
	recs, err := h.svc.ListByFarm(uint(fid))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, recs)
}

func (h *RecommendCtrl) Latest(c echo.Context) error {
	uid := c.Get("uid").(string)
	fid, _ := strconv.Atoi(c.Param("id"))
	if _, err := h.farms.FindByID(uint(fid), uid); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "farm not found"})
	}
	rec, err := h.svc.LatestByFarm(uint(fid))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "no recommendation yet"})
	}
	return c.JSON(http.StatusOK, rec)
}
