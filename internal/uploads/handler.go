package uploads

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

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

// RegisterRoutes attaches upload routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/uploads", h.create)
}

type createRequest struct {
	ClinicID         string `json:"clinicId"`
	UploadedByUserID string `json:"uploadedByUserId"`
	OriginalFilename string `json:"originalFilename"`
	MimeType         string `json:"mimeType"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Missing Fields", gin.H{"required": requiredFields})
		return
	}
	c.Set("clinicId", req.ClinicID)

	upload, err := h.Svc.Create(c.Request.Context(), CreateParams{
		ClinicID:         req.ClinicID,
		UploadedByUserID: req.UploadedByUserID,
		OriginalFilename: req.OriginalFilename,
		MimeType:         req.MimeType,
	})
	if err != nil {
		var missing *MissingFieldsError
		var badMime *InvalidMimeTypeError
		switch {
		case errors.As(err, &missing):
			respond.Error(c, http.StatusBadRequest, "Missing Fields", gin.H{"required": missing.Required})
		case errors.As(err, &badMime):
			respond.Error(c, http.StatusBadRequest, "Invalid mimeType", gin.H{
				"allowed":  badMime.Allowed,
				"received": badMime.Received,
			})
		case errors.Is(err, ErrClinicNotFound):
			respond.Error(c, http.StatusNotFound, "Clinic not found", nil)
		case errors.Is(err, ErrUserNotFound):
			respond.Error(c, http.StatusNotFound, "User not found", nil)
		case errors.Is(err, ErrWrongClinic):
			respond.Error(c, http.StatusForbidden, "User does not belong to this clinic", nil)
		case errors.Is(err, ErrRoleForbidden):
			respond.Error(c, http.StatusForbidden, "Only staff can upload intake forms", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
		}
		return
	}

	c.Set("uploadId", upload.ID)
	respond.JSON(c, http.StatusCreated, gin.H{"upload": upload})
}
