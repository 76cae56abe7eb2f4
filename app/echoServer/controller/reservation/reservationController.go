package reservation

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"librarydesk/app/echoServer/httperr"
	"librarydesk/app/echoServer/jwtx"
	rs "librarydesk/service/reservation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /study-room/reservation
func (h *Controller) Create(c echo.Context) error {
	var req CreateReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	reserveDate, err := parseTimestamp(req.ReserveDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid reserve_date"})
	}
	start, err := parseTimestamp(req.StartTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid start_time"})
	}
	end, err := parseTimestamp(req.EndTime)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid end_time"})
	}

	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	created, err := h.Svc.Create(c.Request().Context(), rs.CreateReq{
		RoomID:           req.RoomID,
		TopicDescription: req.TopicDescription,
		ReserveDate:      reserveDate,
		StartTime:        start,
		EndTime:          end,
		GroupSize:        req.GroupSize,
		LastName:         req.LastName,
		FirstName:        req.FirstName,
		CustomerID:       uid,
	})
	if err != nil {
		return httperr.Write(c, h.Log, "reservation create", err)
	}
	return c.JSON(http.StatusCreated, created)
}

// GET /study-room/:room_id/reservations?date=YYYY-MM-DD
func (h *Controller) ListByRoom(c echo.Context) error {
	roomID, err := strconv.ParseInt(c.Param("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid room id"})
	}
	date, err := time.Parse("2006-01-02", c.QueryParam("date"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "date must be YYYY-MM-DD"})
	}

	rows, err := h.Svc.ListByRoom(c.Request().Context(), roomID, date)
	if err != nil {
		return httperr.Write(c, h.Log, "reservation list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /study-room/my-reservations
func (h *Controller) MyReservations(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	rows, err := h.Svc.MyReservations(c.Request().Context(), uid)
	if err != nil {
		return httperr.Write(c, h.Log, "my reservations", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// DELETE /study-room/reservation/:reservation_id
func (h *Controller) Delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("reservation_id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	if err := h.Svc.Delete(c.Request().Context(), uid, jwtx.IsAdmin(c), id); err != nil {
		return httperr.Write(c, h.Log, "reservation delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// parseTimestamp accepts RFC3339 or a bare date.
func parseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
