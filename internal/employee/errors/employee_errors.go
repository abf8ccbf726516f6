package errors

import (
	"net/http"

	"github.com/ipriyanshu25/office.enoylity/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrDuplicateEmail = apperror.New(
		apperror.CodeConflict,
		"An employee with this email already exists",
		http.StatusConflict,
	)

	ErrDuplicateEmployeeID = apperror.New(
		apperror.CodeConflict,
		"An employee with this ID already exists",
		http.StatusConflict,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
