package interactionapi

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/chamba/pkg/iam/auth"
	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/pkg/validatex"
	"github.com/Abraxas-365/chamba/tracking/interaction"
	"github.com/Abraxas-365/chamba/tracking/interaction/interactionsrv"
	"github.com/Abraxas-365/chamba/tracking/process"
)

// Handlers provides HTTP handlers for interaction operations
type Handlers struct {
	service *interactionsrv.Service
}

// NewHandlers creates a new interaction handlers instance
func NewHandlers(service *interactionsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// LogInteraction records a new interaction on a process timeline
// POST /api/processes/:id/interactions
func (h *Handlers) LogInteraction(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	var req interaction.LogInteractionRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	entry, err := h.service.LogInteraction(c.Context(), processID, authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toInteractionResponse(entry))
}

// ListInteractions pages through a process timeline, newest first
// GET /api/processes/:id/interactions
func (h *Handlers) ListInteractions(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	pagination := kernel.NewPaginationOptions(
		c.QueryInt("page", 1),
		c.QueryInt("limit", kernel.DefaultPageSize),
	)

	result, err := h.service.ListInteractions(c.Context(), processID, authContext.UserID, pagination)
	if err != nil {
		return err
	}

	responses := make([]interaction.InteractionResponse, 0, len(result.Items))
	for i := range result.Items {
		responses = append(responses, toInteractionResponse(&result.Items[i]))
	}

	return c.JSON(interaction.PaginatedInteractionsResponse{
		Items: responses,
		Page:  result.Page,
		Empty: result.Empty,
	})
}

// GetInteraction retrieves one interaction
// GET /api/processes/:id/interactions/:interactionId
func (h *Handlers) GetInteraction(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	interactionID := kernel.InteractionID(c.Params("interactionId"))
	if processID.IsEmpty() || interactionID.IsEmpty() {
		return interaction.ErrInteractionNotFound().WithDetail("id", "missing or empty")
	}

	entry, err := h.service.GetInteraction(c.Context(), interactionID, processID, authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(toInteractionResponse(entry))
}

// DeleteInteraction removes an interaction permanently
// DELETE /api/processes/:id/interactions/:interactionId
func (h *Handlers) DeleteInteraction(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	interactionID := kernel.InteractionID(c.Params("interactionId"))
	if processID.IsEmpty() || interactionID.IsEmpty() {
		return interaction.ErrInteractionNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteInteraction(c.Context(), interactionID, processID, authContext.UserID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

func toInteractionResponse(i *interaction.Interaction) interaction.InteractionResponse {
	return interaction.InteractionResponse{
		ID:              i.ID,
		HiringProcessID: i.HiringProcessID,
		Type:            i.Type,
		Title:           i.Title,
		Content:         i.Content,
		OccurredAt:      i.OccurredAt,
		CreatedAt:       i.CreatedAt,
	}
}

// RegisterRoutes registers all interaction routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.SessionMiddleware) {
	api := app.Group("/api/processes/:id/interactions", authMiddleware.Authenticate())

	api.Get("/", handlers.ListInteractions)
	api.Post("/", handlers.LogInteraction)
	api.Get("/:interactionId", handlers.GetInteraction)
	api.Delete("/:interactionId", handlers.DeleteInteraction)
}
