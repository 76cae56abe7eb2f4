package room

import (
	"log/slog"
	"net/http"
	"strconv"

	"librarydesk/app/echoServer/httperr"
	"librarydesk/app/echoServer/jwtx"
	rs "librarydesk/service/room"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /study-room/
func (h *Controller) List(c echo.Context) error {
	rooms, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httperr.Write(c, h.Log, "room list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rooms})
}

// GET /study-room/:room_id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("room_id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	room, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, h.Log, "room get", err)
	}
	return c.JSON(http.StatusOK, room)
}

// POST /study-room (admin)
func (h *Controller) Create(c echo.Context) error {
	if !jwtx.IsAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var req CreateRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	room, err := h.Svc.Create(c.Request().Context(), req.Capacity)
	if err != nil {
		return httperr.Write(c, h.Log, "room create", err)
	}
	return c.JSON(http.StatusCreated, room)
}

// DELETE /study-room/:room_id (admin)
func (h *Controller) Delete(c echo.Context) error {
	if !jwtx.IsAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := strconv.ParseInt(c.Param("room_id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	if err := h.Svc.Delete(c.Request().Context(), id); err != nil {
		return httperr.Write(c, h.Log, "room delete", err)
	}
	return c.NoContent(http.StatusNoContent)
}
