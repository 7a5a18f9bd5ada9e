package interactionsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/pkg/validatex"
	"github.com/Abraxas-365/chamba/tracking/interaction"
)

// Service orchestrates the interaction timeline of hiring processes
type Service struct {
	repo interaction.Repository
}

// NewService creates a new interaction service
func NewService(repo interaction.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// LogInteraction records a new interaction on a hiring process. An
// omitted type defaults to note; when occurred_at is omitted the
// interaction is stamped with now.
func (s *Service) LogInteraction(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID, req interaction.LogInteractionRequest) (*interaction.Interaction, error) {
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	entryType := req.Type
	if entryType == "" {
		entryType = interaction.TypeNote
	}
	if !entryType.IsValid() {
		return nil, interaction.ErrInvalidType().WithDetail("type", entryType)
	}

	now := time.Now()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	entry := &interaction.Interaction{
		ID:              kernel.NewInteractionID(uuid.NewString()),
		HiringProcessID: processID,
		Type:            entryType,
		Title:           req.Title,
		Content:         req.Content,
		OccurredAt:      occurredAt,
		CreatedAt:       now,
	}

	if err := s.repo.Create(ctx, userID, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// GetInteraction retrieves one interaction
func (s *Service) GetInteraction(ctx context.Context, id kernel.InteractionID, processID kernel.ProcessID, userID kernel.UserID) (*interaction.Interaction, error) {
	return s.repo.GetByID(ctx, id, processID, userID)
}

// ListInteractions retrieves a page of a process's timeline
func (s *Service) ListInteractions(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[interaction.Interaction], error) {
	return s.repo.List(ctx, processID, userID, pagination)
}

// DeleteInteraction removes an interaction permanently
func (s *Service) DeleteInteraction(ctx context.Context, id kernel.InteractionID, processID kernel.ProcessID, userID kernel.UserID) error {
	return s.repo.Delete(ctx, id, processID, userID)
}
