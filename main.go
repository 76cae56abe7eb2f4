// Package main library desk API.
//
// @title           Library Desk API
// @version         1.0
// @description     Library backend: study-room reservations, book rentals, inventory.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"librarydesk/app/echoServer"
	authctrl "librarydesk/app/echoServer/controller/auth"
	bookctrl "librarydesk/app/echoServer/controller/book"
	rentalctrl "librarydesk/app/echoServer/controller/rental"
	reservationctrl "librarydesk/app/echoServer/controller/reservation"
	roomctrl "librarydesk/app/echoServer/controller/room"
	"librarydesk/app/echoServer/validation"
	"librarydesk/config"
	bookrepo "librarydesk/repository/book"
	customerrepo "librarydesk/repository/customer"
	rentalrepo "librarydesk/repository/rental"
	reservationrepo "librarydesk/repository/reservation"
	roomrepo "librarydesk/repository/room"
	authsvc "librarydesk/service/auth"
	booksvc "librarydesk/service/book"
	rentalsvc "librarydesk/service/rental"
	reservationsvc "librarydesk/service/reservation"
	roomsvc "librarydesk/service/room"
	"librarydesk/util/database"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// DB: *sql.DB via pgx, sqlx wrapper for the read paths
	db, err := database.New(ctx, cfg.DatabaseURL, cfg.LockTimeoutMS)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	dbx := sqlx.NewDb(db, "pgx")

	// repos
	cr := customerrepo.New(dbx)
	br := bookrepo.New(dbx)
	rr := roomrepo.New(dbx)
	vr := reservationrepo.New(dbx)
	lr := rentalrepo.New(dbx)

	// services
	as := authsvc.New(cr, cfg.JWTSecret)
	bs := booksvc.New(br)
	rs := roomsvc.New(rr)
	vs := reservationsvc.New(db, rr, vr)
	ls := rentalsvc.New(db, lr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	roomC := &roomctrl.Controller{Svc: rs, V: v, Log: log}
	reservationC := &reservationctrl.Controller{Svc: vs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: ls, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:        authC,
		Book:        bookC,
		Room:        roomC,
		Reservation: reservationC,
		Rental:      rentalC,
		JWTSecret:   cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
