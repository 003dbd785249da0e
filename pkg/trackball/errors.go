package trackball

import "github.com/joomcode/errorx"

// Errors is the error namespace of the trackball package.
var Errors = errorx.NewNamespace("trackball")

// Configuration error types, returned at construction only.
var (
	ErrInvalidScope = Errors.NewType("invalid_scope")
	ErrInvalidFrame = Errors.NewType("invalid_frame")
)
