package document

import (
	"context"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

// Repository is the access path to document metadata. The file bytes
// themselves live behind fsx.FileSystem; parent ownership is
// re-verified on every operation here.
type Repository interface {
	// Create inserts a metadata row under a live, owned process
	Create(ctx context.Context, userID kernel.UserID, doc *Document) error

	// GetByID retrieves one document of an owned process
	GetByID(ctx context.Context, id kernel.DocumentID, processID kernel.ProcessID, userID kernel.UserID) (*Document, error)

	// ListByProcess retrieves all documents of a process, newest first
	ListByProcess(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID) ([]Document, error)

	// Delete removes the metadata row, returning it so the caller can
	// clean up the stored bytes
	Delete(ctx context.Context, id kernel.DocumentID, processID kernel.ProcessID, userID kernel.UserID) (*Document, error)
}
