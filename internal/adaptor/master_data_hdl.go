package adaptor

import (
	"net/http"

	"conference-hall/internal/dto/request"
	"conference-hall/internal/usecase"
	"conference-hall/pkg/utils"

	"go.uber.org/zap"
)

// MasterDataHandler serves one lookup table (room types, booking statuses).
type MasterDataHandler struct {
	name    string
	service usecase.MasterDataService
	log     *zap.Logger
}

func NewMasterDataHandler(name string, service usecase.MasterDataService, log *zap.Logger) *MasterDataHandler {
	return &MasterDataHandler{
		name:    name,
		service: service,
		log:     log.With(zap.String("handler", name)),
	}
}

func (h *MasterDataHandler) List(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list "+h.name)
		return
	}

	utils.ResponseSuccess(w, "Records retrieved successfully", response)
}

func (h *MasterDataHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get "+h.name)
		return
	}

	utils.ResponseSuccess(w, "Record retrieved successfully", response)
}

func (h *MasterDataHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[request.LookupRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create "+h.name)
		return
	}

	utils.ResponseCreated(w, "Record created successfully", response)
}

func (h *MasterDataHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[request.LookupRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update "+h.name)
		return
	}

	utils.ResponseSuccess(w, "Record updated successfully", response)
}

func (h *MasterDataHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete "+h.name)
		return
	}

	utils.ResponseSuccess(w, "Record deleted successfully", nil)
}
