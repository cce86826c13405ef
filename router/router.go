package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "farmstock/pkg/auth/controller"
	plotCtrl "farmstock/pkg/plot/controller"
	schedCtrl "farmstock/pkg/schedule/controller"
	stockCtrl "farmstock/pkg/stock/controller"
)

func New(
	e *echo.Echo,
	auth authCtrl.AuthController,
	stocks stockCtrl.StockController,
	plots plotCtrl.PlotController,
	schedules schedCtrl.ScheduleController,
	watch func(echo.Context) error,
	health func(echo.Context) error,
) *echo.Echo {
	e.GET("/devlogin", auth.DevLogin)
	e.GET("/whoami", auth.WhoAmI)
	e.GET("/health", health)
	e.GET("/watch", watch)

	e.POST("/stocks", stocks.Create)
	e.GET("/stocks", stocks.List)
	e.GET("/stocks/export", stocks.Export)
	e.POST("/stocks/:id/use", stocks.Use)
	e.POST("/stocks/:id/add", stocks.Add)
	e.DELETE("/stocks/:id", stocks.Delete)

	e.POST("/plots", plots.Create)
	e.GET("/plots", plots.List)
	e.GET("/plots/:id", plots.Get)
	e.PUT("/plots/:id", plots.Update)
	e.POST("/plots/:id/end", plots.End)
	e.POST("/plots/:id/undo-end", plots.UndoEnd)
	e.DELETE("/plots/:id", plots.Delete)

	e.GET("/schedules", schedules.ListAll)
	e.GET("/schedules/overview", schedules.Overview)
	g := e.Group("/plots/:plot_id/schedules")
	g.POST("", schedules.Create)
	g.GET("", schedules.ListByPlot)
	g.PUT("/:id", schedules.Update)
	g.PATCH("/:id/complete", schedules.ToggleComplete)
	g.DELETE("/:id", schedules.Delete)

	return e
}
