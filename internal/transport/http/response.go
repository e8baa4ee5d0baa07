package httptransport

import "github.com/gin-gonic/gin"

// MessageResponse is the body of every plain-success reply.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every failure reply. The error string is a
// stable category, never a backend detail.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondMessage writes a success body with the given status.
func RespondMessage(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, MessageResponse{Message: message})
}

// RespondError writes a failure body with the given status.
func RespondError(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, ErrorResponse{Error: message})
}
