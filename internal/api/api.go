package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/constructora/cost-api/internal/api/controller"
	"github.com/constructora/cost-api/internal/pkg/logger"
	"github.com/constructora/cost-api/internal/pkg/store"
	"github.com/constructora/cost-api/internal/service/overrun"
	"github.com/constructora/cost-api/internal/service/projectcost"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

type APIService struct {
	router         *echo.Echo
	costService    *projectcost.Service
	overrunService *overrun.Service
}

func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	// money values go over the wire as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true

	svc.router.HideBanner = true
	svc.router.Logger.SetLevel(log.OFF)
	svc.router.Validator = NewValidator()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(requestIDMiddleware)
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())

	svc.costService = projectcost.NewService(st)
	svc.overrunService = overrun.NewService(st)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.costService, svc.overrunService, st)

	api.GET("/health", cntrl.GetHealth)

	projects := api.Group("/projects")
	projects.GET("/:projectId/costs", cntrl.GetProjectCosts)

	regions := api.Group("/regions")
	regions.GET("/:regionId/top-overruns", cntrl.GetTopOverruns)

	return svc, nil
}
