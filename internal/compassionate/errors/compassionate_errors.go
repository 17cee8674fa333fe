package compassionateerrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNotEligibleDate = apperror.New(
		apperror.CodeInvalidState,
		"Compassionate leave can only be requested for weekends or recurring holidays",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be APPROVED or REJECTED",
		http.StatusBadRequest,
	)
)
