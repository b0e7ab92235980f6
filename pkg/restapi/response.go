package restapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"biblioteca-service/pkg/errno"
)

// Response is the uniform envelope every JSON endpoint returns.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Success writes a 200 response with the standard envelope.
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, Response{
		Code:    errno.OK.Code,
		Message: errno.OK.Message,
		Data:    data,
	})
}

// Failed resolves the business code from err and writes the envelope.
// Unknown errors are masked as internal server errors so DB details
// never leak to clients.
func Failed(ctx *gin.Context, err error) {
	code, message := resolve(err)
	ctx.JSON(httpStatus(code), Response{Code: code, Message: message})
}

// FailedWithStatus writes the envelope with an explicit HTTP status.
func FailedWithStatus(ctx *gin.Context, err error, status int) {
	code, message := resolve(err)
	ctx.JSON(status, Response{Code: code, Message: message})
}

func resolve(err error) (int, string) {
	var bizErr errno.BizError
	if errors.As(err, &bizErr) {
		return bizErr.Code(), bizErr.Message()
	}
	var e *errno.Errno
	if errors.As(err, &e) {
		return e.Code, e.Message
	}
	return errno.ErrInternalServer.Code, errno.ErrInternalServer.Message
}

func httpStatus(code int) int {
	switch {
	case code == 404:
		return http.StatusNotFound
	case code >= 400 && code < 500:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
