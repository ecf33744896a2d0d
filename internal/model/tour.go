package model

import (
	"encoding/json"
	"time"
)

type TourStatus string

const (
	TourStatusActive  TourStatus = "Active"
	TourStatusDeleted TourStatus = "Deleted"
)

// Tour is a client-defined tour owned by exactly one organization.
// TourID is chosen by the client; ID is the server-side primary key.
type Tour struct {
	ID             int64           `json:"id"`
	TourID         string          `json:"tour_id"`
	OrganizationID int64           `json:"organization_id"`
	TourData       json.RawMessage `json:"tour_data"`
	Status         TourStatus      `json:"status"`
	CreatedBy      int64           `json:"created_by"`
	UpdatedBy      *int64          `json:"updated_by,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (t *Tour) IsDeleted() bool {
	return t.Status == TourStatusDeleted
}
