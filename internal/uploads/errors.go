package uploads

import (
	"errors"
	"fmt"
)

var (
	ErrClinicNotFound = errors.New("clinic not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrUploadNotFound = errors.New("upload not found")
	ErrWrongClinic    = errors.New("user does not belong to this clinic")
	ErrRoleForbidden  = errors.New("only staff can upload intake forms")
)

// MissingFieldsError carries the full required-field contract for the
// creation request.
type MissingFieldsError struct {
	Required []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing fields, required: %v", e.Required)
}

// InvalidMimeTypeError carries the allow-list and the rejected value.
type InvalidMimeTypeError struct {
	Allowed  []string
	Received string
}

func (e *InvalidMimeTypeError) Error() string {
	return fmt.Sprintf("invalid mime type %q", e.Received)
}
