package response

import (
	"github.com/gin-gonic/gin"

	"leavedesk/internal/shared/apperror"
)

// PaginationMeta mirrors the HR core API's paging contract: page is
// zero-based, totalPages is the ceiling of totalElements/size.
type PaginationMeta struct {
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

func NewPaginationMeta(totalElements int64, page, size int) PaginationMeta {
	totalPages := 0
	if size > 0 {
		totalPages = int((totalElements + int64(size) - 1) / int64(size))
	}

	return PaginationMeta{
		Page:          page,
		Size:          size,
		TotalPages:    totalPages,
		TotalElements: totalElements,
	}
}

type ErrorBody struct {
	Code        string                `json:"code"`
	Message     string                `json:"message"`
	FieldErrors []apperror.FieldError `json:"fieldErrors,omitempty"`
	Details     any                   `json:"details,omitempty"`
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error *ErrorBody      `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data interface{}, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details interface{}) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: &ErrorBody{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
	})
}

// HTTPError writes an apperror.HTTPError, keeping field errors so form
// components can bind them back onto the offending inputs.
func HTTPError(c *gin.Context, httpErr apperror.HTTPError) {
	c.JSON(httpErr.Status, ApiEnvelope{
		Ok: false,
		Error: &ErrorBody{
			Code:        httpErr.Code,
			Message:     httpErr.Message,
			FieldErrors: httpErr.FieldErrors,
			Details:     httpErr.Details,
		},
	})
}
