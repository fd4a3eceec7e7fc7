package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorCode はAPIのエラー種別
type ErrorCode string

const (
	ErrorCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrorCodeInvalidQuery   ErrorCode = "INVALID_QUERY"
	ErrorCodeSearchFailed   ErrorCode = "SEARCH_FAILED"
	ErrorCodeNotFound       ErrorCode = "NOT_FOUND"
)

type APIError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

func SendError(c *gin.Context, status int, code ErrorCode, message string) {
	c.JSON(status, &APIError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		RequestID: c.GetString(requestIDKey),
	})
}

func SendInternalError(c *gin.Context, operation string, err error) {
	_ = c.Error(err)
	SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, "failed to "+operation)
}
