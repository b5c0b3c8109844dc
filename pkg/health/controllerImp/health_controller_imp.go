package controllerImp

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
	// model server base URL; empty when running on the built-in mock
	mlEndpoint string
}

func NewHealthCtrl(db *gorm.DB, mlEndpoint string) *HealthCtrl {
	return &HealthCtrl{db: db, mlEndpoint: mlEndpoint}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbCheck := sub{OK: true}
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbCheck = sub{Err: "db.DB(): " + err.Error()}
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbCheck = sub{Err: "ping: " + err.Error()}
		}
	} else {
		dbCheck = sub{Err: "gorm db is nil"}
	}

	checks := map[string]any{"database": dbCheck}
	allOK := dbCheck.OK

	// classifier is a soft dependency: report it, but an unreachable model
	// server does not flip overall status (recommendations fail per-request)
	if h.mlEndpoint != "" {
		checks["classifier"] = h.pingClassifier(ctx)
	} else {
		checks["classifier"] = sub{OK: true, Err: "mock"}
	}

	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks":     checks,
		"time":       time.Now().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) pingClassifier(ctx context.Context) sub {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(h.mlEndpoint, "/")+"/health", nil)
	if err != nil {
		return sub{Err: err.Error()}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return sub{Err: err.Error()}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 500 {
		return sub{Err: resp.Status}
	}
	return sub{OK: true}
}
