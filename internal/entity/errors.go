package entity

import (
	"errors"
	"fmt"
)

const (
	MsgInvalidImageFile = "Invalid image file. Ensure the image is a valid Base64 encoded string representing an image."
	MsgInvalidImage     = "Invalid image provided. Ensure the image is a valid Base64 encoded string representing an image."
)

var (
	ErrInvalidTransformationType = errors.New("Invalid transformation type")
	ErrNonPositiveResize         = errors.New("Width and height must be positive integers for resizing.")
)

// ValidationError rejects a structurally incomplete request before any
// decoding work happens. CorrectFormat shows the caller the shape expected
// for the attempted operation.
type ValidationError struct {
	Message       string
	CorrectFormat map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// BadImageError means the payload passed validation but is not a decodable
// image.
type BadImageError struct {
	Message string
}

func (e *BadImageError) Error() string {
	return e.Message
}

// BadParameterError means the image decoded fine but the transformation type
// or one of its numeric parameters is invalid.
type BadParameterError struct {
	Detail error
}

func (e *BadParameterError) Error() string {
	return fmt.Sprintf("Invalid transformation type or parameter: %s.", e.Detail)
}

func (e *BadParameterError) Unwrap() error {
	return e.Detail
}

// InternalError covers everything not classified above, including malformed
// base64 input, which deliberately skips the 400 path (see DESIGN.md).
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("Internal server error: %s", e.Err)
}

func (e *InternalError) Unwrap() error {
	return e.Err
}
