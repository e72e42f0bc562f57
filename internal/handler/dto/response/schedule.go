package response

import (
	"time"

	"facility-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	Status        string     `json:"status"`
	ReservationID *uuid.UUID `json:"reservationId,omitempty"`
}

type ScheduleResponse struct {
	FacilityID uuid.UUID      `json:"facilityId"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

type DurationOptionsResponse struct {
	FacilityID  uuid.UUID `json:"facilityId"`
	Start       time.Time `json:"start"`
	DurationMin []int     `json:"durationMin"`
}

type FacilityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromScheduleView(view *queries.ScheduleView) *ScheduleResponse {
	slots := make([]SlotResponse, len(view.Slots))
	for i, s := range view.Slots {
		slots[i] = SlotResponse{
			Start:         s.Start,
			End:           s.End,
			Status:        string(s.Status),
			ReservationID: s.ReservationID,
		}
	}
	return &ScheduleResponse{
		FacilityID: view.FacilityID,
		Date:       view.Date,
		Slots:      slots,
	}
}

func FromFacilityView(view *queries.FacilityView) *FacilityResponse {
	return &FacilityResponse{
		ID:        view.ID,
		Name:      view.Name,
		CreatedAt: view.CreatedAt,
	}
}
