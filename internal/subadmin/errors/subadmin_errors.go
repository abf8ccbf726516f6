package errors

import (
	"net/http"

	"github.com/ipriyanshu25/office.enoylity/internal/shared/apperror"
)

var (
	ErrSubadminNotFound = apperror.New(
		apperror.CodeNotFound,
		"Subadmin not found",
		http.StatusNotFound,
	)

	ErrDuplicateUsername = apperror.New(
		apperror.CodeConflict,
		"This username is already taken",
		http.StatusConflict,
	)

	ErrUnknownEmployee = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)

	ErrNoPermissions = apperror.New(
		apperror.CodeInvalidInput,
		"At least one permission must be granted",
		http.StatusBadRequest,
	)
)
