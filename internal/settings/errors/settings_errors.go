package errors

import (
	"net/http"

	"github.com/ipriyanshu25/office.enoylity/internal/shared/apperror"
)

var (
	ErrSettingsNotFound = apperror.New(
		apperror.CodeNotFound,
		"Settings not found",
		http.StatusNotFound,
	)

	ErrUnknownInvoiceType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown invoice type",
		http.StatusBadRequest,
	)
)
