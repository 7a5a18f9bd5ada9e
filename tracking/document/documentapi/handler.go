package documentapi

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/chamba/pkg/iam/auth"
	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/pkg/validatex"
	"github.com/Abraxas-365/chamba/tracking/document"
	"github.com/Abraxas-365/chamba/tracking/document/documentsrv"
	"github.com/Abraxas-365/chamba/tracking/process"
)

// Handlers provides HTTP handlers for document operations
type Handlers struct {
	service *documentsrv.Service
}

// NewHandlers creates a new document handlers instance
func NewHandlers(service *documentsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// UploadDocument attaches a file to a hiring process
// POST /api/processes/:id/documents
func (h *Handlers) UploadDocument(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return validatex.ErrInvalidPayload().WithDetail("file", "missing multipart file field")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return validatex.ErrInvalidPayload().WithDetail("file", "unreadable multipart file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, documentsrv.MaxFileSize+1))
	if err != nil {
		return validatex.ErrInvalidPayload().WithDetail("file", "unreadable multipart file")
	}

	doc, err := h.service.UploadDocument(c.Context(), processID, authContext.UserID,
		fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toDocumentResponse(doc))
}

// ListDocuments retrieves the documents of a hiring process
// GET /api/processes/:id/documents
func (h *Handlers) ListDocuments(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	docs, err := h.service.ListDocuments(c.Context(), processID, authContext.UserID)
	if err != nil {
		return err
	}

	responses := make([]document.DocumentResponse, 0, len(docs))
	for i := range docs {
		responses = append(responses, toDocumentResponse(&docs[i]))
	}

	return c.JSON(responses)
}

// DownloadDocument streams the stored file back to the client
// GET /api/processes/:id/documents/:documentId
func (h *Handlers) DownloadDocument(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	documentID := kernel.DocumentID(c.Params("documentId"))
	if processID.IsEmpty() || documentID.IsEmpty() {
		return document.ErrDocumentNotFound().WithDetail("id", "missing or empty")
	}

	doc, stream, err := h.service.DownloadDocument(c.Context(), documentID, processID, authContext.UserID)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, doc.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", doc.FileName))
	return c.SendStream(stream, int(doc.SizeBytes))
}

// DeleteDocument removes a document and its stored bytes
// DELETE /api/processes/:id/documents/:documentId
func (h *Handlers) DeleteDocument(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	documentID := kernel.DocumentID(c.Params("documentId"))
	if processID.IsEmpty() || documentID.IsEmpty() {
		return document.ErrDocumentNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteDocument(c.Context(), documentID, processID, authContext.UserID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func toDocumentResponse(d *document.Document) document.DocumentResponse {
	return document.DocumentResponse{
		ID:              d.ID,
		HiringProcessID: d.HiringProcessID,
		FileName:        d.FileName,
		ContentType:     d.ContentType,
		SizeBytes:       d.SizeBytes,
		UploadedAt:      d.UploadedAt,
	}
}

// RegisterRoutes registers all document routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.SessionMiddleware) {
	api := app.Group("/api/processes/:id/documents", authMiddleware.Authenticate())

	api.Get("/", handlers.ListDocuments)
	api.Post("/", handlers.UploadDocument)
	api.Get("/:documentId", handlers.DownloadDocument)
	api.Delete("/:documentId", handlers.DeleteDocument)
}
