package dto

import (
	"encoding/json"
	"time"

	"travelsuite.app/api/internal/model"
)

type CreateTourRequest struct {
	TourID   string          `json:"tourId" binding:"required,min=1,max=255"`
	TourData json.RawMessage `json:"tourData" binding:"required"`
}

type UpdateTourRequest struct {
	TourData json.RawMessage `json:"tourData" binding:"required"`
}

type TourResponse struct {
	ID             int64            `json:"id,string"`
	TourID         string           `json:"tourId"`
	OrganizationID int64            `json:"organizationId,string"`
	TourData       json.RawMessage  `json:"tourData"`
	Status         model.TourStatus `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

func ToTourResponse(t *model.Tour) *TourResponse {
	return &TourResponse{
		ID:             t.ID,
		TourID:         t.TourID,
		OrganizationID: t.OrganizationID,
		TourData:       t.TourData,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

func ToTourResponses(tours []model.Tour) []*TourResponse {
	result := make([]*TourResponse, len(tours))
	for i := range tours {
		result[i] = ToTourResponse(&tours[i])
	}
	return result
}
