package book

import (
	"log/slog"
	"net/http"
	"strconv"

	"librarydesk/app/echoServer/httperr"
	"librarydesk/app/echoServer/jwtx"
	bs "librarydesk/service/book"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc bs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /book
func (h *Controller) List(c echo.Context) error {
	books, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return httperr.Write(c, h.Log, "book list", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": books})
}

// GET /book/:id
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	b, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, h.Log, "book detail", err)
	}
	return c.JSON(http.StatusOK, b)
}

// POST /book (admin)
func (h *Controller) Create(c echo.Context) error {
	if !jwtx.IsAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	b, err := h.Svc.Create(c.Request().Context(), req.Name, req.Topic)
	if err != nil {
		return httperr.Write(c, h.Log, "book create", err)
	}
	return c.JSON(http.StatusCreated, b)
}

// POST /book/:id/copies (admin)
func (h *Controller) AddCopies(c echo.Context) error {
	if !jwtx.IsAdmin(c) {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	var req AddCopiesReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	copies, err := h.Svc.AddCopies(c.Request().Context(), id, req.Count)
	if err != nil {
		return httperr.Write(c, h.Log, "book add copies", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"data": copies})
}

// GET /book/:id/copies
func (h *Controller) ListCopies(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	copies, err := h.Svc.ListCopies(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, h.Log, "book copies", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": copies})
}
