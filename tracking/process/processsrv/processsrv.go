package processsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/pkg/logx"
	"github.com/Abraxas-365/chamba/pkg/validatex"
	"github.com/Abraxas-365/chamba/tracking/process"
)

// Service orchestrates hiring-process use cases on top of the
// repository. Ownership scoping lives in the repository; this layer
// owns validation, defaulting and the status state machine.
type Service struct {
	repo process.Repository
}

// NewService creates a new process service
func NewService(repo process.Repository) *Service {
	return &Service{
		repo: repo,
	}
}

// CreateProcess registers a new hiring process for the user. Omitted
// fields take the tracker defaults: first-contact status, USD, monthly
// rate.
func (s *Service) CreateProcess(ctx context.Context, userID kernel.UserID, req process.CreateProcessRequest) (*process.HiringProcess, error) {
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = process.StatusFirstContact
	}
	if !status.IsValid() {
		return nil, process.ErrInvalidStatus().WithDetail("status", status)
	}

	currency := req.Currency
	if currency == "" {
		currency = kernel.CurrencyUSD
	}
	if !currency.IsValid() {
		return nil, process.ErrInvalidCurrency().WithDetail("currency", currency)
	}

	rateType := req.SalaryRateType
	if rateType == "" {
		rateType = kernel.SalaryRateMonthly
	}
	if !rateType.IsValid() {
		return nil, process.ErrInvalidSalaryRateType().WithDetail("salary_rate_type", rateType)
	}

	now := time.Now()
	proc := &process.HiringProcess{
		ID:             kernel.NewProcessID(uuid.NewString()),
		UserID:         userID,
		CompanyName:    req.CompanyName,
		JobTitle:       req.JobTitle,
		Status:         status,
		Salary:         req.Salary,
		Currency:       currency,
		SalaryRateType: rateType,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, proc); err != nil {
		return nil, err
	}

	logx.Infof("created hiring process %s for user %s", proc.ID, userID)
	return proc, nil
}

// GetProcess retrieves one hiring process
func (s *Service) GetProcess(ctx context.Context, id kernel.ProcessID, userID kernel.UserID) (*process.HiringProcess, error) {
	return s.repo.GetByID(ctx, id, userID)
}

// ListProcesses retrieves a filtered page of the user's processes
func (s *Service) ListProcesses(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions, filter process.ListProcessesFilter) (*kernel.Paginated[process.HiringProcess], error) {
	for _, status := range filter.Statuses {
		if !status.IsValid() {
			return nil, process.ErrInvalidStatus().WithDetail("status", status)
		}
	}

	return s.repo.List(ctx, userID, pagination, filter)
}

// UpdateProcess partially updates a hiring process. A status change is
// validated against the state machine before anything is written.
func (s *Service) UpdateProcess(ctx context.Context, id kernel.ProcessID, userID kernel.UserID, req process.UpdateProcessRequest) (*process.HiringProcess, error) {
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}
	if req.IsEmpty() {
		return nil, validatex.ErrInvalidPayload().WithDetail("body", "at least one field is required")
	}

	if req.Currency != nil && !req.Currency.IsValid() {
		return nil, process.ErrInvalidCurrency().WithDetail("currency", *req.Currency)
	}
	if req.SalaryRateType != nil && !req.SalaryRateType.IsValid() {
		return nil, process.ErrInvalidSalaryRateType().WithDetail("salary_rate_type", *req.SalaryRateType)
	}

	if req.Status != nil {
		// The read also gives foreign and deleted rows a uniform
		// not-found before the transition check can leak anything
		current, err := s.repo.GetByID(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		if err := current.ChangeStatus(*req.Status); err != nil {
			return nil, err
		}
	}

	return s.repo.Update(ctx, id, userID, req)
}

// DeleteProcess soft-deletes a hiring process. Deleting an already
// deleted process is a no-op.
func (s *Service) DeleteProcess(ctx context.Context, id kernel.ProcessID, userID kernel.UserID) error {
	if err := s.repo.SoftDelete(ctx, id, userID); err != nil {
		return err
	}

	logx.Infof("deleted hiring process %s for user %s", id, userID)
	return nil
}

// ============================================================================
// Company Details
// ============================================================================

// GetDetails retrieves the company details of a hiring process
func (s *Service) GetDetails(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID) (*process.CompanyDetails, error) {
	return s.repo.GetDetails(ctx, processID, userID)
}

// SaveDetails creates the single company-details record of a hiring
// process. Saving twice is a conflict; use UpdateDetails afterwards.
func (s *Service) SaveDetails(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID, req process.SaveCompanyDetailsRequest) (*process.CompanyDetails, error) {
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	// Parent must exist, be owned and be live before inserting
	if _, err := s.repo.GetByID(ctx, processID, userID); err != nil {
		return nil, err
	}

	interviewSteps := 0
	if req.InterviewSteps != nil {
		interviewSteps = *req.InterviewSteps
	}

	now := time.Now()
	details := &process.CompanyDetails{
		ID:              kernel.NewDetailsID(uuid.NewString()),
		HiringProcessID: processID,
		Website:         req.Website,
		Location:        req.Location,
		Benefits:        req.Benefits,
		ContactedVia:    req.ContactedVia,
		ContactPerson:   req.ContactPerson,
		InterviewSteps:  interviewSteps,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.CreateDetails(ctx, details); err != nil {
		return nil, err
	}

	return details, nil
}

// UpdateDetails partially updates the company details
func (s *Service) UpdateDetails(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID, req process.UpdateCompanyDetailsRequest) (*process.CompanyDetails, error) {
	if err := validatex.Struct(req); err != nil {
		return nil, err
	}

	return s.repo.UpdateDetails(ctx, processID, userID, req)
}

// DeleteDetails soft-deletes the company details, leaving the parent
// process in place
func (s *Service) DeleteDetails(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID) error {
	return s.repo.SoftDeleteDetails(ctx, processID, userID)
}
