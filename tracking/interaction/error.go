package interaction

import (
	"net/http"

	"github.com/Abraxas-365/chamba/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("INTERACTION")

// Error codes
var (
	CodeInteractionNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Interaction not found")
	CodeInvalidType         = ErrRegistry.Register("INVALID_TYPE", errx.TypeValidation, http.StatusUnprocessableEntity, "Unknown interaction type")
)

// Helper functions
func ErrInteractionNotFound() *errx.Error {
	return ErrRegistry.New(CodeInteractionNotFound)
}

func ErrInvalidType() *errx.Error {
	return ErrRegistry.New(CodeInvalidType)
}
