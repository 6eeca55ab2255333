package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/athletex/gym-api/pkg/errors"
)

// Response is the envelope every endpoint returns
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

func NewSuccessMessage(message string) Response {
	return Response{
		Status:  "success",
		Message: message,
	}
}

func NewErrorResponse(message string) Response {
	return Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError writes err with its mapped HTTP status. Unknown error
// types surface as a generic 500 so internals never leak. The error is
// also attached to the gin context for the logging middleware.
func RespondError(c *gin.Context, err error) {
	_ = c.Error(err)

	if appErr, ok := apperrors.AsAppError(err); ok {
		c.JSON(appErr.StatusCode(), NewErrorResponse(appErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, NewErrorResponse("internal server error"))
}
