package md2adf

import "errors"

// Sentinel errors for library operations.
var (
	ErrInputTooLarge = errors.New("markdown input too large")
	ErrJSONEncode    = errors.New("ADF JSON encoding failed")

	// Option validation errors.
	ErrInvalidMediaLayout = errors.New("invalid media layout")
	ErrInvalidLanguage    = errors.New("invalid default language")
	ErrInvalidBaseURL     = errors.New("invalid base URL")
)
