package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/services"
)

type ProjectHandler struct {
	*CollectionHandler[models.Project, models.ProjectCreate, models.ProjectUpdate]
	svc services.ProjectService
}

func NewProjectHandler(svc services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		CollectionHandler: NewCollectionHandler[models.Project, models.ProjectCreate, models.ProjectUpdate](svc),
		svc:               svc,
	}
}

func (h *ProjectHandler) Featured(c *gin.Context) {
	out, err := h.svc.ListFeatured(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
