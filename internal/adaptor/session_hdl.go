package adaptor

import (
	"net/http"

	"conference-hall/internal/dto/request"
	"conference-hall/internal/usecase"
	"conference-hall/pkg/utils"

	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// ListByHall handles GET /api/halls/{id}/sessions
func (h *SessionHandler) ListByHall(w http.ResponseWriter, r *http.Request) {
	hallID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.ListHallSessions(r.Context(), hallID)
	if err != nil {
		handleServiceError(w, h.log, err, "list hall sessions")
		return
	}

	utils.ResponseSuccess(w, "Sessions retrieved successfully", response)
}

// Create handles POST /api/halls/{id}/sessions
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	hallID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[request.SessionRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.AddSession(r.Context(), hallID, req)
	if err != nil {
		handleServiceError(w, h.log, err, "create session")
		return
	}

	utils.ResponseCreated(w, "Session created successfully", response)
}

// GetByID handles GET /api/sessions/{id}
func (h *SessionHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.GetSessionByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "Session retrieved successfully", response)
}

// Update handles PUT /api/sessions/{id}
func (h *SessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[request.SessionRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.UpdateSession(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update session")
		return
	}

	utils.ResponseSuccess(w, "Session updated successfully", response)
}

// Delete handles DELETE /api/sessions/{id}
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteSession(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete session")
		return
	}

	utils.ResponseSuccess(w, "Session deleted successfully", nil)
}
