package echoServer

import (
	"net/http"

	authctrl "librarydesk/app/echoServer/controller/auth"
	bookctrl "librarydesk/app/echoServer/controller/book"
	rentalctrl "librarydesk/app/echoServer/controller/rental"
	reservationctrl "librarydesk/app/echoServer/controller/reservation"
	roomctrl "librarydesk/app/echoServer/controller/room"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

type C struct {
	Auth        *authctrl.Controller
	Book        *bookctrl.Controller
	Room        *roomctrl.Controller
	Reservation *reservationctrl.Controller
	Rental      *rentalctrl.Controller
	JWTSecret   string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/register", c.Auth.Register)
	e.POST("/login", c.Auth.Login)

	// Authenticated
	auth := e.Group("")
	auth.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))
	// Identity extraction: the booking services trust user_id and role from
	// here; authorization happens before any lock is taken.
	auth.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tokenObj := ctx.Get("user")
			claims, ok := tokenObj.(jwt.MapClaims)
			if !ok {
				if tok, ok2 := tokenObj.(*jwt.Token); ok2 {
					claims, ok = tok.Claims.(jwt.MapClaims)
				}
			}
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}

			sub, ok := claims["sub"].(float64)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", int64(sub))
			if role, ok := claims["role"].(string); ok {
				ctx.Set("role", role)
			}
			return next(ctx)
		}
	})

	// Study rooms
	auth.GET("/study-room", c.Room.List)
	auth.GET("/study-room/", c.Room.List)
	auth.POST("/study-room", c.Room.Create)
	auth.GET("/study-room/my-reservations", c.Reservation.MyReservations)
	auth.POST("/study-room/reservation", c.Reservation.Create)
	auth.DELETE("/study-room/reservation/:reservation_id", c.Reservation.Delete)
	auth.GET("/study-room/:room_id", c.Room.Get)
	auth.DELETE("/study-room/:room_id", c.Room.Delete)
	auth.GET("/study-room/:room_id/reservations", c.Reservation.ListByRoom)

	// Rentals
	auth.POST("/rental/", c.Rental.Create)
	auth.POST("/rental", c.Rental.Create)
	auth.GET("/rental/my", c.Rental.MyHistory)
	auth.PUT("/rental/:rental_id/return", c.Rental.Return)
	auth.GET("/rental/:rental_id", c.Rental.Get)

	// Books
	auth.GET("/book", c.Book.List)
	auth.POST("/book", c.Book.Create)
	auth.GET("/book/:id", c.Book.Detail)
	auth.POST("/book/:id/copies", c.Book.AddCopies)
	auth.GET("/book/:id/copies", c.Book.ListCopies)
}
