package router

import (
	"github.com/labstack/echo/v4"
	"krishi/pkg/middleware"
)

func New(
	e *echo.Echo,
	farmCtrl interface{ Create(echo.Context) error; Get(echo.Context) error; List(echo.Context) error },
	recGenerate func(echo.Context) error,
	recList     func(echo.Context) error,
	recLatest   func(echo.Context) error,
	testCtrl  interface{ Create(echo.Context) error; List(echo.Context) error },
	schedCtrl interface{ List(echo.Context) error; Patch(echo.Context) error },
	authCtrl  interface{ DevLogin(echo.Context) error; WhoAmI(echo.Context) error },
	advCtrl   interface{ IngestText(echo.Context) error; IngestURL(echo.Context) error; Search(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },

) *echo.Echo {
	e.Use(middleware.DevLogin())
	api := e.Group("")

	api.GET("/whoami", authCtrl.WhoAmI)
	api.GET("/devlogin", authCtrl.DevLogin)
	e.GET("/health", healthCtrl.Health)

	// advisory endpoints
	api.POST("/advisory/ingest",     advCtrl.IngestText)
	api.POST("/advisory/ingest/url", advCtrl.IngestURL)
	api.GET("/advisory/search",      advCtrl.Search)

	api.POST("/farms", farmCtrl.Create)
	api.GET("/farms", farmCtrl.List)
	api.GET("/farms/:id", farmCtrl.Get)

	g := e.Group("/farms")
	g.POST("/:id/recommendations", recGenerate)
	g.GET("/:id/recommendations", recList)
	g.GET("/:id/recommendations/latest", recLatest)

	api.POST("/farms/:id/soiltests", testCtrl.Create)
	api.GET("/farms/:id/soiltests", testCtrl.List)

	api.GET("/farms/:id/schedule", schedCtrl.List)
	api.PATCH("/schedule/:task_id", schedCtrl.Patch)
	return e
}
