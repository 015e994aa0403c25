package response

import (
	"errors"
	"net/http"
	cErr "socialelections/internal/pkg/error"

	"github.com/gin-gonic/gin"
)

type Response struct {
	RequestID   string `json:"requestID"`
	Code        int    `json:"code"`
	Data        any    `json:"data"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

func Create(c *gin.Context, data any) {
	message := "Create Success"
	if msg, ok := data.(gin.H); ok && msg["message"] != nil {
		message, _ = msg["message"].(string)
		delete(msg, "message")
	}
	c.Status(http.StatusCreated)
	c.Set("data", data)
	c.Set("message", message)
	c.Abort()
}
func Success(c *gin.Context, data any) {
	message := "Request Success"
	if msg, ok := data.(gin.H); ok && msg["message"] != nil {
		message, _ = msg["message"].(string)
		delete(msg, "message")
	}
	c.Set("data", data)
	c.Set("message", message)
	c.Abort()
}
const passthroughKey = "passthrough_raw"

// Passthrough 給自行寫出 body 的 handler（檔案下載），Response middleware 不會再封裝
func Passthrough(c *gin.Context) {
	c.Set(passthroughKey, true)
	c.Abort()
}

func IsPassthrough(c *gin.Context) bool {
	raw, ok := c.Get(passthroughKey)
	if !ok {
		return false
	}
	b, _ := raw.(bool)
	return b
}

func AbortWithError(c *gin.Context, err error) {
	c.Error(err)
	c.Abort()
}
func Fail(c *gin.Context, RequestID string, httpCode int, errorCode int, msg string, desc string) {
	c.JSON(httpCode, Response{
		RequestID:   RequestID,
		Code:        errorCode,
		Data:        nil,
		Message:     msg,
		Description: desc,
	})
	c.Abort()
}

func FailByErr(c *gin.Context, RequestID string, err error) {
	var v *cErr.Error
	if errors.As(err, &v) {
		Fail(c, RequestID, v.HttpCode(), v.ErrorCode(), v.Error(), v.ErrorDesc())
	} else {
		Fail(c, RequestID, http.StatusInternalServerError, cErr.INTERNAL_ERROR, err.Error(), "internal error")
	}
}
