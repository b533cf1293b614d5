package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "memory-agent/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Error sends an error response. HTTPErrors keep their own status code;
// anything else is rendered as 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	if data == nil {
		data = make(map[string]interface{})
	}

	status := http.StatusBadRequest
	code := 1
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		status = httpErr.Code
		code = httpErr.Code
		if status == http.StatusBadRequest {
			code = 1
		}
	}

	c.JSON(status, Resp{
		ErrorCode: code,
		Message:   err.Error(),
		Data:      data,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// InternalErrorWithDetails sends 500 and exposes the cause under errors.details.
// Use only outside production.
func InternalErrorWithDetails(c *gin.Context, err error, details map[string]any) {
	if details == nil {
		details = make(map[string]any)
	}
	if _, ok := details["details"]; !ok && err != nil {
		details["details"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
		Errors:    details,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: TooManyRequestsCode,
		Message:   "Too many requests",
	})
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: 401,
		Message:   "Unauthorized",
	})
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: 403,
		Message:   "Forbidden",
	})
}

// Render writes err as either a client error or a processing failure.
// HTTPErrors below 500 keep their status and message. Everything else
// becomes the generic 500 envelope, carrying the error text only when
// showDetails is set.
func Render(c *gin.Context, err error, showDetails bool) {
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok && httpErr.Code < http.StatusInternalServerError {
		Error(c, httpErr, nil)
		return
	}
	if showDetails {
		InternalErrorWithDetails(c, err, nil)
		return
	}
	InternalError(c, err)
}
