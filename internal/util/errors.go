package util

import "errors"

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrInvalidAction    = errors.New("invalid action")
	ErrValidation       = errors.New("validation failed")
	ErrEmptyComment     = errors.New("comment text is required")
	ErrInvalidDomain    = errors.New("email domain not allowed")
	ErrOtpMismatch      = errors.New("invalid or expired OTP")
	ErrUpstream         = errors.New("upstream AI service error")
	ErrInvalidFileExt   = errors.New("file extension not allowed")
	ErrFileTooLarge     = errors.New("file exceeds size limit")
	ErrUnauthorized     = errors.New("unauthorized")
)
