package controller

import (
	"context"

	"github.com/constructora/cost-api/internal/service/overrun"
	"github.com/constructora/cost-api/internal/service/projectcost"
)

type CostService interface {
	GetProjectCosts(ctx context.Context, query *projectcost.Query) (*projectcost.Result, error)
}

type OverrunService interface {
	GetTopOverruns(ctx context.Context, query *overrun.Query) ([]*overrun.Result, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type Controller struct {
	costService    CostService
	overrunService OverrunService
	db             Pinger
}

func NewController(costService CostService, overrunService OverrunService, db Pinger) *Controller {
	return &Controller{
		costService:    costService,
		overrunService: overrunService,
		db:             db,
	}
}
