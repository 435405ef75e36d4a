package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/sms-api/pkg/errors"
)

const (
	MessageSuccess = "Execution was successful"
	MessageFailure = "Execution failed"

	CodeSuccess = 1
	CodeFailure = 0
)

// Envelope is the success contract shared by every endpoint. Result is
// always present, null when there is nothing to return.
type Envelope struct {
	ExecutionMsg  string                 `json:"execution_msg"`
	ExecutionCode int                    `json:"execution_code"`
	Result        interface{}            `json:"result"`
	Meta          map[string]interface{} `json:"meta,omitempty"`
}

// ErrorEnvelope is the failure contract.
type ErrorEnvelope struct {
	ExecutionMsg  string `json:"execution_msg"`
	ExecutionCode int    `json:"execution_code"`
	Error         string `json:"error"`
	ErrorCode     string `json:"error_code"`
}

// JSON sends a success response with optional metadata.
func JSON(c *gin.Context, status int, result interface{}, meta ...map[string]interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	envelope := Envelope{ExecutionMsg: MessageSuccess, ExecutionCode: CodeSuccess, Result: result}
	if len(meta) > 0 && len(meta[0]) > 0 {
		envelope.Meta = meta[0]
	}
	c.JSON(status, envelope)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, result interface{}) {
	JSON(c, http.StatusOK, result)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, result interface{}) {
	JSON(c, http.StatusCreated, result)
}

// Error sends a failure response, taking the HTTP status from the error kind.
// Internal errors are recorded on the context for the request logger and
// rendered without their cause.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	if appErr == nil {
		appErr = appErrors.ErrInternal
	}
	message := appErr.Message
	if appErr.Status >= http.StatusInternalServerError {
		_ = c.Error(err)
	} else if appErr.Err != nil {
		message = appErr.Error()
	}
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, ErrorEnvelope{
		ExecutionMsg:  MessageFailure,
		ExecutionCode: CodeFailure,
		Error:         message,
		ErrorCode:     appErr.Code,
	})
}

// File sends a binary attachment such as an exported transcript.
func File(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, data)
}
