package dto

import (
	"time"

	"travelsuite.app/api/internal/model"
)

type CreateOrganizationRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Address     *string `json:"address,omitempty" binding:"omitempty,max=500"`
	Website     *string `json:"website,omitempty" binding:"omitempty,max=2048"`
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=50"`
}

type UpdateOrganizationRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	Address     *string `json:"address,omitempty" binding:"omitempty,max=500"`
	Website     *string `json:"website,omitempty" binding:"omitempty,max=2048"`
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=50"`
	LogoURL     *string `json:"logoUrl,omitempty" binding:"omitempty,url,max=2048"`
}

type OrganizationResponse struct {
	OrganizationID int64     `json:"organizationId,string"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    *string   `json:"description"`
	Address        *string   `json:"address"`
	Website        *string   `json:"website"`
	Phone          *string   `json:"phone"`
	LogoURL        *string   `json:"logoUrl"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func ToOrganizationResponse(org *model.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		OrganizationID: org.ID,
		Name:           org.Name,
		Slug:           org.Slug,
		Description:    org.Description,
		Address:        org.Address,
		Website:        org.Website,
		Phone:          org.Phone,
		LogoURL:        org.LogoURL,
		CreatedAt:      org.CreatedAt,
		UpdatedAt:      org.UpdatedAt,
	}
}
