package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire envelope for every failed request.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err as a JSON error response. Non-AppError values are
// reported as a generic internal error so internals never leak to clients.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
		appErr.Details = nil
	}
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}
