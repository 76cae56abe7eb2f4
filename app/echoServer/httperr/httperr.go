package httperr

import (
	"log/slog"
	"net/http"

	"librarydesk/service/booking"

	"github.com/labstack/echo/v4"
)

// Write maps a coded business error to its HTTP status. The code travels in
// the body so clients can tell capacity from overlap on the shared 400.
// Uncoded errors are logged and reported as a generic 500 so store internals
// never leak to clients.
func Write(c echo.Context, log *slog.Logger, op string, err error) error {
	code := booking.Code(err)
	switch code {
	case booking.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"code": code, "message": err.Error()})
	case booking.ErrValidation, booking.ErrCapacity, booking.ErrConflict:
		return c.JSON(http.StatusBadRequest, echo.Map{"code": code, "message": err.Error()})
	case booking.ErrForbidden:
		return c.JSON(http.StatusForbidden, echo.Map{"code": code, "message": "forbidden"})
	case booking.ErrBusy:
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"code": code, "message": err.Error()})
	default:
		log.Error(op, "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}
