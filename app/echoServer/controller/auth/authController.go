package auth

import (
	"log/slog"
	"net/http"

	"librarydesk/app/echoServer/httperr"
	"librarydesk/model"
	as "librarydesk/service/auth"
	"librarydesk/service/booking"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc as.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /register
func (h *Controller) Register(c echo.Context) error {
	var req model.RegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	cust, tok, err := h.Svc.Register(c.Request().Context(), req)
	if err != nil {
		return httperr.Write(c, h.Log, "register", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"customer": cust, "token": tok})
}

// POST /login
func (h *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	cust, tok, err := h.Svc.Login(c.Request().Context(), req)
	if err != nil {
		if booking.Code(err) == booking.ErrForbidden {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
		}
		return httperr.Write(c, h.Log, "login", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"customer": cust, "token": tok})
}
