package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarveshramani/portfolio/internal/models"
	"github.com/sarveshramani/portfolio/internal/utils"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// writeError maps err to its status. Server-side failures get a generic
// message; the cause is attached to the context for the request logger.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)
	status := utils.HTTPStatus(err)

	code := utils.CodeInternal
	var ae *utils.AppError
	if errors.As(err, &ae) {
		if status < http.StatusInternalServerError {
			c.JSON(status, utils.APIError{
				Code:    ae.Code,
				Message: ae.Message,
				Details: ae.Details,
			})
			return
		}
		code = ae.Code
	}

	c.JSON(status, utils.APIError{
		Code:    code,
		Message: http.StatusText(status),
	})
}

// bindJSON decodes and validates the body into dst, answering 422 on failure.
func bindJSON(c *gin.Context, op string, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeError(c, utils.Invalid(op, "invalid request body", err, models.FieldErrors(err)...))
		return false
	}
	return true
}

// Root answers the liveness probe under the API prefix.
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: "Portfolio API is running!"})
}
