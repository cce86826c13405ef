package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmstock/entities"
)

var started = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

type healthReport struct {
	OK        bool   `json:"ok"`
	Database  string `json:"database"`
	Stocks    int64  `json:"stocks"`
	Schedules int64  `json:"schedules"`
	UptimeSec int64  `json:"uptime_sec"`
	Time      string `json:"time"`
}

// Health pings the database and reports row counts so a single request shows
// whether the store is both reachable and migrated.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	report := healthReport{
		OK:        true,
		Database:  "ok",
		UptimeSec: int64(time.Since(started).Seconds()),
		Time:      time.Now().Format(time.RFC3339),
	}

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		report.OK = false
		report.Database = err.Error()
		return c.JSON(http.StatusServiceUnavailable, report)
	}

	tx := h.db.WithContext(ctx)
	tx.Model(&entities.StockItem{}).Count(&report.Stocks)
	tx.Model(&entities.Schedule{}).Count(&report.Schedules)

	return c.JSON(http.StatusOK, report)
}
