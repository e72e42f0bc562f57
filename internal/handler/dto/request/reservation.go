package request

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	FacilityID  uuid.UUID `json:"facility_id" binding:"required"`
	Start       time.Time `json:"start" binding:"required"`
	DurationMin int       `json:"duration_min" binding:"required"`
}

type UpdateReservationRequest struct {
	DurationMin int `json:"duration_min" binding:"required"`
}

type CancelReservationRequest struct {
	Message *string `json:"message,omitempty"`
}

func (r CancelReservationRequest) GetMessage() *string {
	if r.Message == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Message)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
