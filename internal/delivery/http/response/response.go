package response

import "github.com/gin-gonic/gin"

// Response is the envelope every endpoint replies with. Data is set on
// success, Error on failure; RequestID is filled in whenever the RequestID
// middleware ran.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorDetail is the typed failure payload the error middleware attaches, so
// clients can branch on the kind instead of the message text.
type ErrorDetail struct {
	Kind string `json:"kind"`
}

func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

func Error(c *gin.Context, code int, message string, detail interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     detail,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	value, ok := c.Get("RequestID")
	if !ok {
		return ""
	}
	id, _ := value.(string)
	return id
}
