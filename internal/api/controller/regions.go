package controller

import (
	"net/http"
	"strconv"

	"github.com/constructora/cost-api/internal/domain/dto"
	"github.com/constructora/cost-api/internal/pkg/constants"
	"github.com/constructora/cost-api/internal/service/overrun"
	"github.com/labstack/echo/v4"
)

const defaultOverrunLimit = 10

// GetTopOverruns handles GET /api/v1/regions/:regionId/top-overruns?limit=.
// Unlike the costs endpoint, an empty ranking is reported as not-found.
func (c *Controller) GetTopOverruns(ctx echo.Context) error {
	regionID, err := strconv.Atoi(ctx.Param("regionId"))
	if err != nil {
		regionID = 0
	}

	limit := defaultOverrunLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			limit = 0
		}
	}

	if regionID <= 0 {
		return constants.ErrInvalidRegionID
	}
	if limit <= 0 {
		return constants.ErrInvalidLimit
	}

	results, err := c.overrunService.GetTopOverruns(ctx.Request().Context(), &overrun.Query{
		RegionID: regionID,
		Limit:    limit,
	})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return ctx.NoContent(http.StatusNotFound)
	}

	resp := make([]dto.RegionOverrun, 0, len(results))
	for _, r := range results {
		resp = append(resp, dto.RegionOverrun{
			ProjectID:  r.ProjectID,
			Name:       r.Name,
			Budget:     r.Budget,
			TotalCost:  r.TotalCost,
			OverrunPct: r.OverrunPct,
		})
	}

	return ctx.JSON(http.StatusOK, resp)
}
