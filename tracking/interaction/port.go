package interaction

import (
	"context"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

// Repository is the access path to interaction storage. Parent
// ownership and liveness are re-verified on every operation.
type Repository interface {
	// Create inserts a new interaction under a live, owned process
	Create(ctx context.Context, userID kernel.UserID, entry *Interaction) error

	// GetByID retrieves one interaction of an owned process
	GetByID(ctx context.Context, id kernel.InteractionID, processID kernel.ProcessID, userID kernel.UserID) (*Interaction, error)

	// List retrieves a page of a process's interactions, newest first
	List(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[Interaction], error)

	// Delete removes an interaction permanently
	Delete(ctx context.Context, id kernel.InteractionID, processID kernel.ProcessID, userID kernel.UserID) error
}
