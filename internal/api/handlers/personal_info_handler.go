package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/services"
)

type PersonalInfoHandler struct {
	svc services.PersonalInfoService
}

func NewPersonalInfoHandler(svc services.PersonalInfoService) *PersonalInfoHandler {
	return &PersonalInfoHandler{svc: svc}
}

func (h *PersonalInfoHandler) Get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PersonalInfoHandler) Update(c *gin.Context) {
	var req models.PersonalInfoUpdate
	if !bindJSON(c, "PersonalInfoHandler.Update", &req) {
		return
	}

	p, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
