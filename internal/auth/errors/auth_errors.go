package errors

import (
	"net/http"

	"github.com/ipriyanshu25/office.enoylity/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrAdminNotFound = apperror.New(
		apperror.CodeNotFound,
		"Admin not found",
		http.StatusNotFound,
	)

	ErrDuplicateEmail = apperror.New(
		apperror.CodeConflict,
		"This email is already in use",
		http.StatusConflict,
	)

	ErrNothingToUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"Enter a new email and/or password to update",
		http.StatusBadRequest,
	)
)
