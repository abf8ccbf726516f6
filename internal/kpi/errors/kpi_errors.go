package errors

import (
	"net/http"

	"github.com/ipriyanshu25/office.enoylity/internal/shared/apperror"
)

var (
	ErrKPINotFound = apperror.New(
		apperror.CodeNotFound,
		"KPI not found",
		http.StatusNotFound,
	)

	ErrUnknownEmployee = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrDeadlineBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"Deadline must not be before the start date",
		http.StatusBadRequest,
	)
)
