package processapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/chamba/pkg/iam/auth"
	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/pkg/validatex"
	"github.com/Abraxas-365/chamba/tracking/process"
	"github.com/Abraxas-365/chamba/tracking/process/processsrv"
)

// Handlers provides HTTP handlers for hiring-process operations
type Handlers struct {
	service *processsrv.Service
}

// NewHandlers creates a new process handlers instance
func NewHandlers(service *processsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// CreateProcess registers a new hiring process
// POST /api/processes
func (h *Handlers) CreateProcess(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	var req process.CreateProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	proc, err := h.service.CreateProcess(c.Context(), authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toProcessResponse(proc))
}

// GetProcess retrieves one hiring process
// GET /api/processes/:id
func (h *Handlers) GetProcess(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	proc, err := h.service.GetProcess(c.Context(), processID, authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(toProcessResponse(proc))
}

// ListProcesses retrieves a filtered page of the user's processes
// GET /api/processes
func (h *Handlers) ListProcesses(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	pagination := parsePaginationOptions(c)
	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	result, err := h.service.ListProcesses(c.Context(), authContext.UserID, pagination, filter)
	if err != nil {
		return err
	}

	responses := make([]process.ProcessResponse, 0, len(result.Items))
	for i := range result.Items {
		responses = append(responses, toProcessResponse(&result.Items[i]))
	}

	return c.JSON(process.PaginatedProcessesResponse{
		Items: responses,
		Page:  result.Page,
		Empty: result.Empty,
	})
}

// UpdateProcess partially updates a hiring process
// PATCH /api/processes/:id
func (h *Handlers) UpdateProcess(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	var req process.UpdateProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	proc, err := h.service.UpdateProcess(c.Context(), processID, authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(toProcessResponse(proc))
}

// DeleteProcess soft-deletes a hiring process
// DELETE /api/processes/:id
func (h *Handlers) DeleteProcess(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteProcess(c.Context(), processID, authContext.UserID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// GetDetails retrieves the company details of a process
// GET /api/processes/:id/details
func (h *Handlers) GetDetails(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	details, err := h.service.GetDetails(c.Context(), processID, authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(toDetailsResponse(details))
}

// SaveDetails creates the company details of a process
// POST /api/processes/:id/details
func (h *Handlers) SaveDetails(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	var req process.SaveCompanyDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	details, err := h.service.SaveDetails(c.Context(), processID, authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toDetailsResponse(details))
}

// UpdateDetails partially updates the company details
// PATCH /api/processes/:id/details
func (h *Handlers) UpdateDetails(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	var req process.UpdateCompanyDetailsRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrInvalidPayload().WithDetail("parse_error", err.Error())
	}

	details, err := h.service.UpdateDetails(c.Context(), processID, authContext.UserID, req)
	if err != nil {
		return err
	}

	return c.JSON(toDetailsResponse(details))
}

// DeleteDetails soft-deletes the company details
// DELETE /api/processes/:id/details
func (h *Handlers) DeleteDetails(c *fiber.Ctx) error {
	authContext, ok := auth.GetAuthContext(c)
	if !ok {
		return auth.ErrUnauthorized()
	}

	processID := kernel.ProcessID(c.Params("id"))
	if processID.IsEmpty() {
		return process.ErrProcessNotFound().WithDetail("id", "missing or empty")
	}

	if err := h.service.DeleteDetails(c.Context(), processID, authContext.UserID); err != nil {
		return err
	}

	return c.Status(fiber.StatusNoContent).Send(nil)
}

// ============================================================================
// Helper Functions
// ============================================================================

func toProcessResponse(p *process.HiringProcess) process.ProcessResponse {
	return process.ProcessResponse{
		ID:             p.ID,
		CompanyName:    p.CompanyName,
		JobTitle:       p.JobTitle,
		Status:         p.Status,
		Salary:         p.Salary,
		Currency:       p.Currency,
		SalaryRateType: p.SalaryRateType,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toDetailsResponse(d *process.CompanyDetails) process.CompanyDetailsResponse {
	return process.CompanyDetailsResponse{
		ID:              d.ID,
		HiringProcessID: d.HiringProcessID,
		Website:         d.Website,
		Location:        d.Location,
		Benefits:        d.Benefits,
		ContactedVia:    d.ContactedVia,
		ContactPerson:   d.ContactPerson,
		InterviewSteps:  d.InterviewSteps,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

// parsePaginationOptions extracts pagination options from query
// parameters. Out-of-range values clamp instead of erroring.
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("limit", kernel.DefaultPageSize)

	return kernel.NewPaginationOptions(page, pageSize)
}

// parseListFilter extracts the optional list filters from query
// parameters. Unknown status values are rejected rather than ignored.
func parseListFilter(c *fiber.Ctx) (process.ListProcessesFilter, error) {
	filter := process.ListProcessesFilter{}

	if raw := c.Query("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status := process.ProcessStatus(strings.TrimSpace(part))
			if !status.IsValid() {
				return filter, process.ErrInvalidStatus().WithDetail("status", status)
			}
			filter.Statuses = append(filter.Statuses, status)
		}
	}

	if raw := c.Query("salary_declared"); raw != "" {
		var declared bool
		switch raw {
		case "true", "1":
			declared = true
		case "false", "0":
			declared = false
		default:
			return filter, validatex.ErrInvalidPayload().WithDetail("salary_declared", "must be true or false")
		}
		filter.SalaryDeclared = &declared
	}

	if c.Query("salary_min") != "" {
		min := int64(c.QueryInt("salary_min"))
		filter.SalaryMin = &min
	}
	if c.Query("salary_max") != "" {
		max := int64(c.QueryInt("salary_max"))
		filter.SalaryMax = &max
	}

	return filter, nil
}

// RegisterRoutes registers all hiring-process routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.SessionMiddleware) {
	api := app.Group("/api/processes", authMiddleware.Authenticate())

	api.Get("/", handlers.ListProcesses)
	api.Post("/", handlers.CreateProcess)
	api.Get("/:id", handlers.GetProcess)
	api.Patch("/:id", handlers.UpdateProcess)
	api.Delete("/:id", handlers.DeleteProcess)

	api.Get("/:id/details", handlers.GetDetails)
	api.Post("/:id/details", handlers.SaveDetails)
	api.Patch("/:id/details", handlers.UpdateDetails)
	api.Delete("/:id/details", handlers.DeleteDetails)
}
