package holidayerrors

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
	ErrRestrictedWithoutReason = apperror.New(
		apperror.CodeInvalidInput,
		"A restricted holiday needs a reason",
		http.StatusBadRequest,
	)
)
