package model

import "time"

type Customer struct {
	ID           int64     `json:"id" db:"customer_id"`
	FirstName    string    `json:"f_name" db:"f_name"`
	LastName     string    `json:"l_name" db:"l_name"`
	Email        string    `json:"email" db:"email"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	Role         string    `json:"role" db:"role"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

type RegisterReq struct {
	FirstName string `json:"f_name" validate:"required,max=50"`
	LastName  string `json:"l_name" validate:"required,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	Password  string `json:"password" validate:"required,min=8"`
}

type LoginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
