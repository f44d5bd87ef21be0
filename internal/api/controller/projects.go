package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/constructora/cost-api/internal/domain/dto"
	"github.com/constructora/cost-api/internal/pkg/constants"
	"github.com/constructora/cost-api/internal/service/projectcost"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// parseDate binds a yyyy-MM-dd query value; anything unparseable binds to
// the zero time and falls through to the range checks, same as the contract
// this API preserves.
func parseDate(raw string) time.Time {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// GetProjectCosts handles GET /api/v1/projects/:projectId/costs?from=&to=.
// The date-order check runs before the id check: a request violating both
// rules reports the date error.
func (c *Controller) GetProjectCosts(ctx echo.Context) error {
	projectID, err := strconv.Atoi(ctx.Param("projectId"))
	if err != nil {
		projectID = 0
	}
	from := parseDate(ctx.QueryParam("from"))
	to := parseDate(ctx.QueryParam("to"))

	if from.After(to) {
		return constants.ErrInvalidDateRange
	}
	if projectID <= 0 {
		return constants.ErrInvalidProjectID
	}

	result, err := c.costService.GetProjectCosts(ctx.Request().Context(), &projectcost.Query{
		ProjectID: projectID,
		From:      from,
		To:        to,
	})
	if err != nil {
		return err
	}
	if result == nil {
		return ctx.NoContent(http.StatusNotFound)
	}

	resp := dto.ProjectCosts{
		TotalCost:        result.TotalCost,
		TopMaterials:     make([]dto.TopMaterial, 0, len(result.TopMaterials)),
		MonthlyBreakdown: make([]dto.MonthlyBreakdown, 0, len(result.MonthlyBreakdown)),
	}
	for _, m := range result.TopMaterials {
		resp.TopMaterials = append(resp.TopMaterials, dto.TopMaterial{Material: m.Material, TotalCost: m.TotalCost})
	}
	for _, m := range result.MonthlyBreakdown {
		resp.MonthlyBreakdown = append(resp.MonthlyBreakdown, dto.MonthlyBreakdown{Month: m.Month, TotalCost: m.TotalCost})
	}

	return ctx.JSON(http.StatusOK, resp)
}
