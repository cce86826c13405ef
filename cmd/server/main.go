package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"farmstock/config"
	"farmstock/database"
	"farmstock/router"

	// Auth
	authCtrlImp "farmstock/pkg/auth/controllerImp"

	// Stock
	stockCtrlImp "farmstock/pkg/stock/controllerImp"
	stockRepoImp "farmstock/pkg/stock/repositoryImp"
	stockSvcImp "farmstock/pkg/stock/serviceImp"

	// Plot
	plotCtrlImp "farmstock/pkg/plot/controllerImp"
	plotRepoImp "farmstock/pkg/plot/repositoryImp"
	plotSvcImp "farmstock/pkg/plot/serviceImp"

	// Schedule
	schedCtrlImp "farmstock/pkg/schedule/controllerImp"
	schedRepoImp "farmstock/pkg/schedule/repositoryImp"
	schedSvcImp "farmstock/pkg/schedule/serviceImp"

	// Events / watch
	"farmstock/pkg/events"
	watchCtrlImp "farmstock/pkg/watch/controllerImp"

	// Health
	healthCtrlImp "farmstock/pkg/health/controllerImp"

	"farmstock/pkg/middleware"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	logger := buildLogger(cfg.LogLevel)
	defer logger.Sync()

	// 3) Timezone for day-window filters
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Warn("bad TZ, falling back to local", zap.String("tz", cfg.Timezone))
		loc = time.Local
	}

	// 4) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 5) Event broker
	broker := events.NewBroker()

	// 6) Repos / services
	stRepo := stockRepoImp.New(db)
	plRepo := plotRepoImp.New(db)
	scRepo := schedRepoImp.New(db)

	stSvc := stockSvcImp.New(stRepo, broker, logger)
	plSvc := plotSvcImp.New(plRepo, logger)
	scSvc := schedSvcImp.New(db, scRepo, plRepo, stRepo, broker, loc, logger)

	// 7) Controllers
	authCtrl := authCtrlImp.NewAuthController()
	stCtrl := stockCtrlImp.New(stSvc)
	plCtrl := plotCtrlImp.New(plSvc)
	scCtrl := schedCtrlImp.New(scSvc)
	wCtrl := watchCtrlImp.New(broker)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 8) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLog(logger))
	e.Use(middleware.DevLogin(cfg.DevLogin))

	// 9) Routes
	r := router.New(e, authCtrl, stCtrl, plCtrl, scCtrl, wCtrl.Watch, hCtrl.Health)

	// 10) Start
	logger.Info("listening", zap.String("port", cfg.Port))
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func buildLogger(level string) *zap.Logger {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	return logger
}
