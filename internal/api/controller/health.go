package controller

import (
	"net/http"
	"time"

	"github.com/constructora/cost-api/internal/domain/dto"
	"github.com/constructora/cost-api/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// GetHealth handles GET /api/v1/health. It always answers 200: a database
// failure flips DbStatus to FAIL but must never fail the probe itself.
func (c *Controller) GetHealth(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	dbStatus := "OK"
	if err := c.db.Ping(reqCtx); err != nil {
		logger.Warnf(reqCtx, "health: db ping failed: %s", err.Error())
		dbStatus = "FAIL"
	}

	return ctx.JSON(http.StatusOK, dto.Health{
		ApiStatus: "OK",
		DbStatus:  dbStatus,
		Timestamp: time.Now().UTC(),
	})
}
