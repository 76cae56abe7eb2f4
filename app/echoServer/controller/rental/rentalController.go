package rental

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"librarydesk/app/echoServer/httperr"
	"librarydesk/app/echoServer/jwtx"
	rs "librarydesk/service/rental"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc rs.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /rental/
func (h *Controller) Create(c echo.Context) error {
	var req CreateRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}

	borrow, err := time.Parse(time.RFC3339, req.BorrowDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid borrow_date"})
	}
	expected, err := time.Parse(time.RFC3339, req.ExpectedReturnDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid expected_return_date"})
	}

	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	// Only admins may check out on behalf of another customer.
	customerID := uid
	if req.CustomerID > 0 && req.CustomerID != uid {
		if !jwtx.IsAdmin(c) {
			return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
		}
		customerID = req.CustomerID
	}

	created, err := h.Svc.Create(c.Request().Context(), rs.CreateReq{
		BorrowDate:         borrow,
		ExpectedReturnDate: expected,
		CustomerID:         customerID,
		CopyID:             req.CopyID,
	})
	if err != nil {
		return httperr.Write(c, h.Log, "rental create", err)
	}
	return c.JSON(http.StatusCreated, created)
}

// PUT /rental/:rental_id/return
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("rental_id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	var req ReturnRentalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	actual, err := time.Parse(time.RFC3339, req.ActualReturnDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid actual_return_date"})
	}

	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}

	out, err := h.Svc.Return(c.Request().Context(), uid, jwtx.IsAdmin(c), id, actual)
	if err != nil {
		return httperr.Write(c, h.Log, "rental return", err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /rental/:rental_id
func (h *Controller) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("rental_id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	out, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return httperr.Write(c, h.Log, "rental get", err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /rental/my
func (h *Controller) MyHistory(c echo.Context) error {
	uid, err := jwtx.UserIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
	}
	rows, err := h.Svc.MyHistory(c.Request().Context(), uid)
	if err != nil {
		return httperr.Write(c, h.Log, "rental history", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
