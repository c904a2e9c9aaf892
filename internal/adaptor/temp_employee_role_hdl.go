package adaptor

import (
	"net/http"

	"conference-hall/internal/dto/request"
	"conference-hall/internal/usecase"
	"conference-hall/pkg/utils"

	"go.uber.org/zap"
)

type TempEmployeeRoleHandler struct {
	service usecase.TempEmployeeRoleService
	log     *zap.Logger
}

func NewTempEmployeeRoleHandler(service usecase.TempEmployeeRoleService, log *zap.Logger) *TempEmployeeRoleHandler {
	return &TempEmployeeRoleHandler{
		service: service,
		log:     log.With(zap.String("handler", "temp_employee_role")),
	}
}

// GetAll handles GET /api/temp-employee-roles
func (h *TempEmployeeRoleHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all temp employee roles")
		return
	}

	utils.ResponseSuccess(w, "Temp employee roles retrieved successfully", response)
}

// Search handles GET /api/temp-employee-roles/search?q=
func (h *TempEmployeeRoleHandler) Search(w http.ResponseWriter, r *http.Request) {
	response, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleServiceError(w, h.log, err, "search temp employee roles")
		return
	}

	utils.ResponseSuccess(w, "Temp employee roles retrieved successfully", response)
}

// GetByID handles GET /api/temp-employee-roles/{id}
func (h *TempEmployeeRoleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	response, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get temp employee role")
		return
	}

	utils.ResponseSuccess(w, "Temp employee role retrieved successfully", response)
}

// Create handles POST /api/temp-employee-roles
func (h *TempEmployeeRoleHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBody[request.TempEmployeeRoleRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "create temp employee role")
		return
	}

	utils.ResponseCreated(w, "Temp employee role created successfully", response)
}

// Update handles PUT /api/temp-employee-roles/{id}
func (h *TempEmployeeRoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	req, ok := decodeBody[request.TempEmployeeRoleRequest](w, r)
	if !ok {
		return
	}

	response, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, h.log, err, "update temp employee role")
		return
	}

	utils.ResponseSuccess(w, "Temp employee role updated successfully", response)
}

// Delete handles DELETE /api/temp-employee-roles/{id}
func (h *TempEmployeeRoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete temp employee role")
		return
	}

	utils.ResponseSuccess(w, "Temp employee role deleted successfully", nil)
}
