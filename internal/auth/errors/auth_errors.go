package autherrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrSessionCreateFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not establish a session",
		http.StatusInternalServerError,
	)
	ErrUnknownRole = apperror.New(
		apperror.CodeUpstreamError,
		"The HR service returned an unknown role",
		http.StatusBadGateway,
	)
)
