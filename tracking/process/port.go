package process

import (
	"context"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

// Repository is the sole access path to hiring-process storage. Every
// operation is scoped to the owning user and ignores soft-deleted rows.
type Repository interface {
	// Create inserts a fully-formed new hiring process
	Create(ctx context.Context, proc *HiringProcess) error

	// GetByID retrieves one hiring process. Absent, foreign-owned and
	// soft-deleted rows are all reported as not-found.
	GetByID(ctx context.Context, id kernel.ProcessID, userID kernel.UserID) (*HiringProcess, error)

	// List retrieves a page of the user's hiring processes, newest
	// update first, with the given filters applied
	List(ctx context.Context, userID kernel.UserID, pagination kernel.PaginationOptions, filter ListProcessesFilter) (*kernel.Paginated[HiringProcess], error)

	// Update applies the present fields of req and re-stamps
	// updated_at, returning the updated row
	Update(ctx context.Context, id kernel.ProcessID, userID kernel.UserID, req UpdateProcessRequest) (*HiringProcess, error)

	// SoftDelete marks a hiring process deleted. Idempotent: deleting
	// an already-deleted row is a no-op.
	SoftDelete(ctx context.Context, id kernel.ProcessID, userID kernel.UserID) error

	// GetDetails retrieves the company details of a hiring process
	GetDetails(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID) (*CompanyDetails, error)

	// CreateDetails inserts the single company-details row of a
	// hiring process; a second insert is a conflict
	CreateDetails(ctx context.Context, details *CompanyDetails) error

	// UpdateDetails applies the present fields of req to the details
	// row, re-verifying parent ownership
	UpdateDetails(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID, req UpdateCompanyDetailsRequest) (*CompanyDetails, error)

	// SoftDeleteDetails marks the details row deleted, independently
	// of the parent
	SoftDeleteDetails(ctx context.Context, processID kernel.ProcessID, userID kernel.UserID) error
}
