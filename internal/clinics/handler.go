package clinics

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

// RegisterRoutes attaches clinic routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/clinics", h.list)
	r.GET("/clinics/:clinicId/uploads", h.listUploads)
}

func (h *Handler) list(c *gin.Context) {
	result, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
		return
	}
	respond.OK(c, gin.H{"clinics": result})
}

func (h *Handler) listUploads(c *gin.Context) {
	clinicID := c.Param("clinicId")
	c.Set("clinicId", clinicID)

	result, err := h.Svc.ListUploads(c.Request.Context(), clinicID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "Clinic not found", nil)
			return
		}
		respond.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
		return
	}
	respond.OK(c, gin.H{"uploads": result})
}
