package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/services"
)

// CollectionHandler serves list, create, update and delete for one
// id-addressed resource.
type CollectionHandler[T models.Entity, C models.Draft[T], U models.Patch] struct {
	svc services.CollectionService[T, C, U]
}

func NewCollectionHandler[T models.Entity, C models.Draft[T], U models.Patch](svc services.CollectionService[T, C, U]) *CollectionHandler[T, C, U] {
	return &CollectionHandler[T, C, U]{svc: svc}
}

func (h *CollectionHandler[T, C, U]) op(method string) string {
	return h.svc.Resource().Name + "Handler." + method
}

func (h *CollectionHandler[T, C, U]) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CollectionHandler[T, C, U]) Create(c *gin.Context) {
	var in C
	if !bindJSON(c, h.op("Create"), &in) {
		return
	}

	out, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CollectionHandler[T, C, U]) Update(c *gin.Context) {
	var in U
	if !bindJSON(c, h.op("Update"), &in) {
		return
	}

	out, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *CollectionHandler[T, C, U]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: h.svc.Resource().Name + " deleted successfully"})
}
