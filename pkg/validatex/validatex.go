package validatex

import (
	"net/http"

	"github.com/Abraxas-365/chamba/pkg/errx"
	"github.com/go-playground/validator/v10"
)

var ErrRegistry = errx.NewRegistry("REQUEST")

var CodeInvalidPayload = ErrRegistry.Register("INVALID_PAYLOAD", errx.TypeValidation, http.StatusUnprocessableEntity, "Invalid request payload")

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidPayload reports an unparseable or malformed request body
func ErrInvalidPayload() *errx.Error {
	return ErrRegistry.New(CodeInvalidPayload)
}

// Struct validates a request DTO against its `validate` tags. The
// returned error carries one detail per offending field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errx.Wrap(err, "failed to validate request", errx.TypeInternal)
	}

	typed := ErrRegistry.New(CodeInvalidPayload)
	for _, fe := range verrs {
		typed = typed.WithDetail(fe.Field(), fe.Tag())
	}
	return typed
}
