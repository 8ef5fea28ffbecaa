package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidBody = New(
		"INVALID_BODY",
		"Invalid request body",
		http.StatusBadRequest,
	)

	ErrInvalidEnvironment = New(
		"INVALID_ENVIRONMENT",
		"Invalid salar environment",
		http.StatusBadRequest,
	)

	ErrCatalogUnavailable = New(
		"CATALOG_UNAVAILABLE",
		"Salar catalog is unavailable",
		http.StatusServiceUnavailable,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
