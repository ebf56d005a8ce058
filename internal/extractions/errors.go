package extractions

import (
	"errors"
	"fmt"
)

var (
	ErrUploadNotFound = errors.New("upload not found")
	ErrWrongClinic    = errors.New("upload does not belong to clinic")
	ErrUserNotFound   = errors.New("user not found")
	ErrRoleForbidden  = errors.New("user not authorized")
	ErrAlreadyStarted = errors.New("extraction already started")
)

// MissingFieldsError carries the full required-field contract for the
// start-extraction request.
type MissingFieldsError struct {
	Required []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing fields, required: %v", e.Required)
}
