package dto

import "time"

type SignupRequest struct {
	Email     string  `json:"email" binding:"required,email,max=255"`
	Password  string  `json:"password" binding:"required,max=72"`
	FirstName *string `json:"firstName,omitempty" binding:"omitempty,max=255"`
	LastName  *string `json:"lastName,omitempty" binding:"omitempty,max=255"`
}

type SignupResponse struct {
	UserID int64 `json:"userId,string"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=72"`
}

type SigninResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
