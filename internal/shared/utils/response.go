package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

// ErrorBody is the JSON shape of every failed request.
type ErrorBody struct {
	Error   string              `json:"error"`
	Details []errors.FieldError `json:"details,omitempty"`
}

// SuccessResponse writes data as the bare JSON body.
func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// CreatedResponse writes a 201 with the created resource.
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// ErrorResponse sends an error body with a custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWithError maps err onto a status code. Errors that are not
// AppErrors become a generic 500 so internals never leak to clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil || appErr.Type == errors.ErrorTypeInternal {
		c.JSON(http.StatusInternalServerError, ErrorBody{Error: constants.ErrMsgInternalServerError})
		return
	}

	body := ErrorBody{Error: appErr.Message}
	if appErr.Type == errors.ErrorTypeValidation {
		body.Details = appErr.Fields
	}
	c.JSON(appErr.Code, body)
}

// StatusCodeFor returns the HTTP status ErrorResponseWithError would use.
func StatusCodeFor(err error) int {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
