package adaptor

import (
	"net/http"

	"conference-hall/internal/dto/request"
	"conference-hall/internal/usecase"
	"conference-hall/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[request.BookingRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.AddBooking(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "Booking created successfully", response)
}

// GetAll handles GET /api/bookings?exclude_status=3,4
func (h *BookingHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	statuses, err := utils.ParseIntList(r.URL.Query().Get("exclude_status"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid exclude_status", nil)
		return
	}

	var filter usecase.BookingFilter
	for _, st := range statuses {
		filter.ExcludeStatuses = append(filter.ExcludeStatuses, int64(st))
	}

	response, err := h.service.GetAllBookings(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "get all bookings")
		return
	}

	utils.ResponseSuccess(w, "Bookings retrieved successfully", response)
}

// GetByID handles GET /api/bookings/{id}
func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.GetBookingByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "Booking retrieved successfully", response)
}

// Update handles PUT /api/bookings/{id}
func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[request.BookingRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.UpdateBooking(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking")
		return
	}

	utils.ResponseSuccess(w, "Booking updated successfully", response)
}

// UpdateStatus handles PATCH /api/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[request.BookingStatusUpdateRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.UpdateBookingStatus(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated successfully", response)
}

// UpdateSessionStatus handles PATCH /api/bookings/{id}/sessions/{sessionId}/status
func (h *BookingHandler) UpdateSessionStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	sessionID, ok := pathID(w, r, "sessionId")
	if !ok {
		return
	}
	req, ok := decodeBody[request.BookingStatusUpdateRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.UpdateBookingSessionStatus(r.Context(), id, sessionID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking session status")
		return
	}

	utils.ResponseSuccess(w, "Booking session status updated successfully", response)
}
