package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/trashtrack/trashtrack-api/pkg/errors"
)

const detailKey = "response_expose_detail"

// ErrorBody is the uniform error contract shared by every endpoint.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Message is the success body of update, delete and other acknowledgement responses.
type Message struct {
	Message string `json:"message"`
}

// ExposeDetails records whether underlying error messages may be rendered for this request.
func ExposeDetails(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(detailKey, enabled)
		c.Next()
	}
}

// JSON sends the payload as the response body without wrapping it.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Ack responds with HTTP 200 and a {message} body.
func Ack(c *gin.Context, message string) {
	JSON(c, http.StatusOK, Message{Message: message})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	body := ErrorBody{Error: appErr.Message}
	if appErr.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
		if appErr.Err != nil && exposeDetails(c) {
			body.Details = appErr.Err.Error()
		}
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, body)
}

// Abort renders the error and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

func exposeDetails(c *gin.Context) bool {
	v, ok := c.Get(detailKey)
	if !ok {
		return false
	}
	enabled, _ := v.(bool)
	return enabled
}
