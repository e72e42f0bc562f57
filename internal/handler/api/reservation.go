package api

import (
	"errors"
	"net/http"

	reqdto "facility-booking/internal/handler/dto/request"
	resdto "facility-booking/internal/handler/dto/response"
	"facility-booking/internal/handler/httperr"
	"facility-booking/internal/handler/middleware"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/commands"
	"facility-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(commands commands.ReservationCommands, queries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: commands,
		queries:  queries,
	}
}

// @Summary Create reservation
// @Description Book a facility time slot for the current user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), actor, req.FacilityID, req.Start, req.DurationMin)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get a reservation owned by the current user (admins see all)
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List own reservations
// @Description List all reservations of the current user
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationListResponse
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	items, err := h.queries.ListByOwner(c.Request.Context(), actor.ID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	response := make([]*resdto.ReservationListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromReservationListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update reservation duration
// @Description Change the duration of an owned reservation (more than 12h before start)
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "New duration"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) UpdateDuration(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	var req reqdto.UpdateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	view, err := h.commands.UpdateDuration(c.Request.Context(), actor, id, req.DurationMin)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Cancel reservation
// @Description Cancel an owned reservation (admins can cancel any, with an optional message)
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CancelReservationRequest false "Optional cancellation message (admin only)"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	var req reqdto.CancelReservationRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
			return
		}
	}

	if err := h.commands.Cancel(c.Request.Context(), actor, id, req.GetMessage()); err != nil {
		h.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Export reservation as iCalendar
// @Description Download a confirmed reservation as an .ics file
// @Tags reservations
// @Produce text/calendar
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {string} string
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/calendar [get]
func (h *ReservationHandler) ExportICS(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errs.New("missing actor"), "Internal server error", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID format", nil)
		return
	}

	payload, err := h.queries.ExportICS(c.Request.Context(), actor, id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=reservation.ics")
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(payload))
}

// respondError maps usecase sentinels onto the HTTP status contract:
// invalid candidate 400, ownership/cutoff 403, missing 404, conflicts and
// double-cancel 409, everything else 500.
func (h *ReservationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidCandidate):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errors.Is(err, errs.ErrNotOwner), errors.Is(err, errs.ErrCutoffPassed):
		httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	case errors.Is(err, errs.ErrFacilityNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Facility not found", nil)
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, errs.ErrReservationConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot no longer available", nil)
	case errors.Is(err, errs.ErrAlreadyCanceled), errors.Is(err, errs.ErrNotExportable):
		httperr.AbortWithError(c, http.StatusConflict, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
