package adaptor

import (
	"net/http"

	"conference-hall/internal/dto/request"
	"conference-hall/internal/usecase"
	"conference-hall/pkg/utils"

	"go.uber.org/zap"
)

type HallHandler struct {
	service usecase.HallService
	log     *zap.Logger
}

func NewHallHandler(service usecase.HallService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

// Configure handles POST /api/halls/configure
func (h *HallHandler) Configure(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[request.HallConfigurationRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.ConfigureHall(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "configure hall")
		return
	}

	utils.ResponseCreated(w, "Hall configured successfully", response)
}

// Create handles POST /api/halls
func (h *HallHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[request.HallRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.AddHall(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hall")
		return
	}

	utils.ResponseCreated(w, "Hall created successfully", response)
}

// Update handles PUT /api/halls/{id}
func (h *HallHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[request.HallRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.UpdateHall(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hall")
		return
	}

	utils.ResponseSuccess(w, "Hall updated successfully", response)
}

// GetByID handles GET /api/halls/{id}
func (h *HallHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.GetHallByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get hall")
		return
	}

	utils.ResponseSuccess(w, "Hall retrieved successfully", response)
}

// GetAll handles GET /api/halls
func (h *HallHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetAllHalls(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all halls")
		return
	}

	utils.ResponseSuccess(w, "Halls retrieved successfully", response)
}

// Delete handles DELETE /api/halls/{id}
func (h *HallHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteHall(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete hall")
		return
	}

	utils.ResponseSuccess(w, "Hall deleted successfully", nil)
}
