package api

import (
	"errors"
	"net/http"
	"time"

	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FacilityHandler struct {
	schedules queries.ScheduleQueries
}

func NewFacilityHandler(schedules queries.ScheduleQueries) *FacilityHandler {
	return &FacilityHandler{
		schedules: schedules,
	}
}

// @Summary List facilities
// @Description List the bookable facility catalog
// @Tags facilities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.FacilityResponse
// @Failure 401 {object} httperr.Response
// @Router /facilities [get]
func (h *FacilityHandler) List(c *gin.Context) {
	views, err := h.schedules.ListFacilities(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := make([]*resdto.FacilityResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromFacilityView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Facility day schedule
// @Description Project the 15-minute slot grid for one facility and date
// @Tags facilities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Facility ID"
// @Param date query string true "Date (YYYY-MM-DD, UTC)"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /facilities/{id}/schedule [get]
func (h *FacilityHandler) Schedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid facility ID format", nil)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), time.UTC)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	view, err := h.schedules.DaySchedule(c.Request.Context(), id, date)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

// @Summary Legal duration options
// @Description Enumerate the durations a booking starting at the given time may take
// @Tags facilities
// @Produce json
// @Security BearerAuth
// @Param id path string true "Facility ID"
// @Param start query string true "Candidate start time (RFC 3339)"
// @Success 200 {object} resdto.DurationOptionsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /facilities/{id}/durations [get]
func (h *FacilityHandler) DurationOptions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid facility ID format", nil)
		return
	}

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start time, expected RFC 3339", nil)
		return
	}

	durations, err := h.schedules.DurationOptions(c.Request.Context(), id, start)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, &resdto.DurationOptionsResponse{
		FacilityID:  id,
		Start:       start.UTC(),
		DurationMin: durations,
	})
}

func (h *FacilityHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrFacilityNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Facility not found", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
