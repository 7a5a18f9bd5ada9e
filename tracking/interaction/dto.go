package interaction

import (
	"time"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

// LogInteractionRequest - DTO for logging a new interaction
type LogInteractionRequest struct {
	Type       InteractionType `json:"type,omitempty"`
	Title      *string         `json:"title,omitempty" validate:"omitempty,max=100"`
	Content    string          `json:"content" validate:"required,min=10,max=10000"`
	OccurredAt *time.Time      `json:"occurred_at,omitempty"`
}

// InteractionResponse - DTO for returning interaction data
type InteractionResponse struct {
	ID              kernel.InteractionID `json:"id"`
	HiringProcessID kernel.ProcessID     `json:"hiring_process_id"`
	Type            InteractionType      `json:"type"`
	Title           *string              `json:"title,omitempty"`
	Content         string               `json:"content"`
	OccurredAt      time.Time            `json:"occurred_at"`
	CreatedAt       time.Time            `json:"created_at"`
}

// Response type alias for paginated interactions
type PaginatedInteractionsResponse = kernel.Paginated[InteractionResponse]
