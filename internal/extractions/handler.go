package extractions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-intake-backend/internal/shared/server/middleware"
	"clinic-intake-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches extraction routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/uploads/:uploadId/extractions", h.start)
}

type startRequest struct {
	ClinicID string `json:"clinicId"`
	UserID   string `json:"userId"`
}

func (h *Handler) start(c *gin.Context) {
	uploadID := c.Param("uploadId")
	c.Set("uploadId", uploadID)

	var req startRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Missing Fields", gin.H{"required": requiredFields})
		return
	}
	c.Set("clinicId", req.ClinicID)

	extraction, err := h.Svc.Start(c.Request.Context(), StartParams{
		UploadID:  uploadID,
		ClinicID:  req.ClinicID,
		UserID:    req.UserID,
		RequestID: middleware.RequestIDFromContext(c),
	})
	if err != nil {
		var missing *MissingFieldsError
		switch {
		case errors.As(err, &missing):
			respond.Error(c, http.StatusBadRequest, "Missing Fields", gin.H{"required": missing.Required})
		case errors.Is(err, ErrUploadNotFound):
			respond.Error(c, http.StatusNotFound, "Upload not found", nil)
		case errors.Is(err, ErrWrongClinic):
			respond.Error(c, http.StatusForbidden, "Upload does not belong to clinic", nil)
		case errors.Is(err, ErrUserNotFound):
			respond.Error(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, ErrRoleForbidden):
			respond.Error(c, http.StatusForbidden, "User not authorized", nil)
		case errors.Is(err, ErrAlreadyStarted):
			respond.Error(c, http.StatusConflict, "Extraction already started", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
		}
		return
	}

	respond.JSON(c, http.StatusAccepted, gin.H{"extraction": extraction})
}
