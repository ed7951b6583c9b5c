package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Asado-specific errors
	ErrAsadoNotFound    = "ASADO_NOT_FOUND"
	ErrAsadoInvalidData = "ASADO_INVALID_DATA"
	ErrAsadoNoValidCuts = "ASADO_NO_VALID_CUTS"
	ErrPartialWrite     = "ASADO_PARTIAL_WRITE"

	// Vocabulary errors
	ErrEmptyName = "EMPTY_NAME"

	// Barcode errors (a miss is not a failure; this code only tags the
	// "no suggestion" response body)
	ErrBarcodeNotFound = "BARCODE_NOT_FOUND"
	ErrBarcodeLookup   = "BARCODE_LOOKUP_FAILED"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
