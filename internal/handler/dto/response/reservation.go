package response

import (
	"time"

	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   uuid.UUID `json:"facilityId"`
	FacilityName string    `json:"facilityName"`
	OwnerID      uuid.UUID `json:"ownerId"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationMin  int       `json:"durationMin"`
	Status       string    `json:"status"`
	CancelNote   *string   `json:"cancelNote,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	FacilityID   uuid.UUID `json:"facilityId"`
	FacilityName string    `json:"facilityName"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationMin  int       `json:"durationMin"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           rm.ID,
		FacilityID:   rm.FacilityID,
		FacilityName: rm.FacilityName,
		OwnerID:      rm.OwnerID,
		Start:        rm.Start,
		End:          rm.End,
		DurationMin:  rm.DurationMin,
		Status:       rm.Status,
		CancelNote:   rm.CancelNote,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:           rm.ID,
		FacilityID:   rm.FacilityID,
		FacilityName: rm.FacilityName,
		Start:        rm.Start,
		End:          rm.End,
		DurationMin:  rm.DurationMin,
		Status:       rm.Status,
		CreatedAt:    rm.CreatedAt,
	}
}
