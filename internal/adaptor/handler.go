package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"conference-hall/internal/usecase"
	"conference-hall/pkg/apperror"
	"conference-hall/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Auth             *AuthHandler
	Hall             *HallHandler
	Session          *SessionHandler
	Booking          *BookingHandler
	TempEmployeeRole *TempEmployeeRoleHandler
	RoomType         *MasterDataHandler
	BookingStatus    *MasterDataHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:             NewAuthHandler(service.Auth, log),
		Hall:             NewHallHandler(service.Hall, log),
		Session:          NewSessionHandler(service.Session, log),
		Booking:          NewBookingHandler(service.Booking, log),
		TempEmployeeRole: NewTempEmployeeRoleHandler(service.TempEmployeeRole, log),
		RoomType:         NewMasterDataHandler("room type", service.RoomType, log),
		BookingStatus:    NewMasterDataHandler("booking status", service.BookingStatus, log),
	}
}

// decodeBody reads a JSON payload. A literal null yields a nil request,
// which the services reject as a missing payload.
func decodeBody[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var req *T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}

	if req != nil {
		if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
			utils.ResponseBadRequest(w, "Validation failed", validationErrors)
			return nil, false
		}
	}
	return req, true
}

// pathID parses a numeric URL parameter.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return 0, false
	}
	return id, true
}

// handleServiceError maps error kinds onto HTTP responses. Only the typed
// message reaches the client; wrapped driver errors stay in the log.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	message := err.Error()
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch apperror.KindOf(err) {
	case apperror.KindInvalid:
		log.Warn(operation+" failed - invalid input",
			zap.Error(err),
			zap.String("operation", operation))
		if fields := apperror.FieldsOf(err); len(fields) > 0 {
			utils.ResponseBadRequest(w, "Validation failed", fields)
			return
		}
		utils.ResponseBadRequest(w, message, nil)

	case apperror.KindNotFound:
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, message)

	case apperror.KindConflict:
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, message)

	case apperror.KindUnauthorized:
		log.Warn(operation+" failed - unauthorized",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, message)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
