package leaveapperrors

import (
	"net/http"

	"leavedesk/internal/shared/apperror"
)

var (
	ErrUnknownLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown leave type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"Start date must be before or equal to end date",
		http.StatusBadRequest,
	)
	ErrNotEligible = apperror.New(
		apperror.CodeInvalidState,
		"The request does not pass the eligibility checks",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be APPROVED or REJECTED",
		http.StatusBadRequest,
	)
	ErrExportEmpty = apperror.New(
		apperror.CodeNotFound,
		"There are no leave applications to export",
		http.StatusNotFound,
	)
)
