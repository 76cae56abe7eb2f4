package authsvc

import (
	"context"
	"strings"

	"librarydesk/model"
	customerrepo "librarydesk/repository/customer"
	"librarydesk/service/booking"
	"librarydesk/util/hash"
	"librarydesk/util/jwt"
)

const tokenTTLHours = 12

type Service interface {
	Register(ctx context.Context, req model.RegisterReq) (*model.Customer, string, error)
	Login(ctx context.Context, req model.LoginReq) (*model.Customer, string, error)
}

type service struct {
	r      customerrepo.Repo
	secret string
}

func New(r customerrepo.Repo, secret string) Service {
	return &service{r: r, secret: secret}
}

func (s *service) Register(ctx context.Context, req model.RegisterReq) (*model.Customer, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.r.ByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", booking.Errf(booking.ErrConflict, "email already registered")
	}

	ph, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	c := &model.Customer{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		Role:         "customer",
		PasswordHash: ph,
	}
	if req.Phone != "" {
		c.Phone = &req.Phone
	}
	if err := s.r.Create(ctx, c); err != nil {
		return nil, "", booking.Classify(err)
	}

	tok, err := jwt.Issue(s.secret, c.ID, c.Role, tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return c, tok, nil
}

func (s *service) Login(ctx context.Context, req model.LoginReq) (*model.Customer, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	c, err := s.r.ByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}
	if c == nil || !hash.CheckPassword(c.PasswordHash, req.Password) {
		return nil, "", booking.Errf(booking.ErrForbidden, "invalid credentials")
	}

	tok, err := jwt.Issue(s.secret, c.ID, c.Role, tokenTTLHours)
	if err != nil {
		return nil, "", err
	}
	return c, tok, nil
}
