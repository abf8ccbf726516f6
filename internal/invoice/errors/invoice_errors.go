package errors

import (
	"net/http"

	"github.com/ipriyanshu25/office.enoylity/internal/shared/apperror"
)

var (
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invoice not found",
		http.StatusNotFound,
	)

	ErrUnknownEntity = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown business entity",
		http.StatusBadRequest,
	)

	ErrNoLineItems = apperror.New(
		apperror.CodeInvalidInput,
		"An invoice needs at least one line item",
		http.StatusBadRequest,
	)

	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format",
		http.StatusBadRequest,
	)
)
