package process

import (
	"net/http"

	"github.com/Abraxas-365/chamba/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("PROCESS")

// Error codes
var (
	// Not-found deliberately covers absent, foreign-owned and
	// soft-deleted rows alike so callers cannot probe other accounts
	CodeProcessNotFound         = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Hiring process not found")
	CodeProcessAlreadyExists    = ErrRegistry.Register("ALREADY_EXISTS", errx.TypeConflict, http.StatusConflict, "Hiring process already exists")
	CodeInvalidStatus           = ErrRegistry.Register("INVALID_STATUS", errx.TypeValidation, http.StatusUnprocessableEntity, "Unknown hiring process status")
	CodeInvalidStatusTransition = ErrRegistry.Register("INVALID_STATUS_TRANSITION", errx.TypeBusiness, http.StatusConflict, "Status transition not allowed")
	CodeInvalidCurrency         = ErrRegistry.Register("INVALID_CURRENCY", errx.TypeValidation, http.StatusUnprocessableEntity, "Unsupported currency")
	CodeInvalidSalaryRateType   = ErrRegistry.Register("INVALID_SALARY_RATE_TYPE", errx.TypeValidation, http.StatusUnprocessableEntity, "Unsupported salary rate type")
	CodeDetailsNotFound         = ErrRegistry.Register("DETAILS_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Company details not found")
	CodeDetailsAlreadyExist     = ErrRegistry.Register("DETAILS_ALREADY_EXIST", errx.TypeConflict, http.StatusConflict, "Company details already exist for this hiring process")
)

// Helper functions
func ErrProcessNotFound() *errx.Error {
	return ErrRegistry.New(CodeProcessNotFound)
}

func ErrProcessAlreadyExists() *errx.Error {
	return ErrRegistry.New(CodeProcessAlreadyExists)
}

func ErrInvalidStatus() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatus)
}

func ErrInvalidStatusTransition() *errx.Error {
	return ErrRegistry.New(CodeInvalidStatusTransition)
}

func ErrInvalidCurrency() *errx.Error {
	return ErrRegistry.New(CodeInvalidCurrency)
}

func ErrInvalidSalaryRateType() *errx.Error {
	return ErrRegistry.New(CodeInvalidSalaryRateType)
}

func ErrDetailsNotFound() *errx.Error {
	return ErrRegistry.New(CodeDetailsNotFound)
}

func ErrDetailsAlreadyExist() *errx.Error {
	return ErrRegistry.New(CodeDetailsAlreadyExist)
}
