package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNoFieldsToUpdate indicates that a partial update request carried no fields to change.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

// ErrEmailNotConfigured indicates that the outbound email provider has no API key set.
var ErrEmailNotConfigured = errors.New("email service not configured")
