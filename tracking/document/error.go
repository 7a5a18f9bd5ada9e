package document

import (
	"net/http"

	"github.com/Abraxas-365/chamba/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("DOCUMENT")

// Error codes
var (
	CodeDocumentNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Document not found")
	CodeEmptyFile        = ErrRegistry.Register("EMPTY_FILE", errx.TypeValidation, http.StatusUnprocessableEntity, "Uploaded file is empty")
	CodeFileTooLarge     = ErrRegistry.Register("FILE_TOO_LARGE", errx.TypeValidation, http.StatusUnprocessableEntity, "Uploaded file exceeds the size limit")
	CodeStorageFailure   = ErrRegistry.Register("STORAGE_FAILURE", errx.TypeExternal, http.StatusBadGateway, "Document storage is unavailable")
)

// Helper functions
func ErrDocumentNotFound() *errx.Error {
	return ErrRegistry.New(CodeDocumentNotFound)
}

func ErrEmptyFile() *errx.Error {
	return ErrRegistry.New(CodeEmptyFile)
}

func ErrFileTooLarge() *errx.Error {
	return ErrRegistry.New(CodeFileTooLarge)
}

func ErrStorageFailure() *errx.Error {
	return ErrRegistry.New(CodeStorageFailure)
}
