package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/constructora/cost-api/internal/pkg/constants"
	"github.com/constructora/cost-api/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// httpErrorHandler is the single point translating errors to transport
// codes. Client errors keep their fixed message; anything else becomes a 500
// embedding the raw error text (a deliberate compatibility choice).
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError
	for unwrapped := err; unwrapped != nil; unwrapped = errors.Unwrap(unwrapped) {
		if ce, ok := unwrapped.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := unwrapped.(*echo.HTTPError); ok {
			code = he.Code
			msg = fmt.Sprintf("%v", he.Message)
			break
		}
	}

	switch {
	case code == http.StatusNotFound:
		_ = c.NoContent(code)
	case code >= http.StatusInternalServerError:
		logger.Errorf(c.Request().Context(), "request failed: %s", msg)
		_ = c.String(code, fmt.Sprintf("Error interno: %s", msg))
	default:
		_ = c.String(code, msg)
	}
}
