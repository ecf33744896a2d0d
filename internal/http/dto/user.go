package dto

import (
	"travelsuite.app/api/internal/model"
)

type UpdateProfileRequest struct {
	Email     string `json:"email" binding:"required,email,max=255"`
	FirstName string `json:"firstName" binding:"required,min=1,max=255"`
	LastName  string `json:"lastName" binding:"required,min=1,max=255"`
	Phone     string `json:"phone" binding:"required,min=1,max=50"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required,max=72"`
	NewPassword     string `json:"newPassword" binding:"required,max=72"`
}

type ProfileResponse struct {
	UserID          int64   `json:"userId,string"`
	Email           string  `json:"email"`
	OrganizationID  *int64  `json:"organizationId,string,omitempty"`
	FirstName       *string `json:"firstName"`
	LastName        *string `json:"lastName"`
	Phone           *string `json:"phone"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
}

func ToProfileResponse(u *model.User) *ProfileResponse {
	return &ProfileResponse{
		UserID:          u.ID,
		Email:           u.Email,
		OrganizationID:  u.OrganizationID,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Phone:           u.Phone,
		ProfileImageURL: u.ProfileImageURL,
	}
}
