package api

import (
	"context"

	"github.com/constructora/cost-api/internal/pkg/constants"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// requestIDMiddleware tags every request with an id, echoed back in the
// response header and stashed in the request context for the logger.
func requestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqID := ctx.Request().Header.Get(constants.HeaderRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeyRequestID, reqID)
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))
		ctx.Response().Header().Set(constants.HeaderRequestID, reqID)

		return next(ctx)
	}
}
