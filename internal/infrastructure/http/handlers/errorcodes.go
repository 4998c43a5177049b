package handlers

// API error codes returned in JSON { "error": "...", "code": "..." } for stable client handling.
const (
	ErrCodeValidation       = "validation_failed"
	ErrCodeEmailExists      = "email_exists"
	ErrCodeForbiddenField   = "forbidden_field"
	ErrCodeUnauthorized     = "unauthorized"
	ErrCodeNotFound         = "not_found"
	ErrCodeMethodNotAllowed = "method_not_allowed"
	ErrCodeMalformedRequest = "malformed_request"
	ErrCodeNotifyFailed     = "notification_failed"
	ErrCodeInternal         = "internal_error"
)
