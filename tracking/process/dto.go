package process

import (
	"time"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

// CreateProcessRequest - DTO for creating a new hiring process
type CreateProcessRequest struct {
	CompanyName    kernel.CompanyName    `json:"company_name" validate:"required,max=200"`
	JobTitle       *kernel.JobTitle      `json:"job_title,omitempty" validate:"omitempty,max=200"`
	Status         ProcessStatus         `json:"status,omitempty"`
	Salary         *int64                `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Currency       kernel.Currency       `json:"currency,omitempty"`
	SalaryRateType kernel.SalaryRateType `json:"salary_rate_type,omitempty"`
}

// UpdateProcessRequest - DTO for partially updating a hiring process.
// Absent fields are left untouched.
type UpdateProcessRequest struct {
	CompanyName    *kernel.CompanyName    `json:"company_name,omitempty" validate:"omitempty,max=200"`
	JobTitle       *kernel.JobTitle       `json:"job_title,omitempty" validate:"omitempty,max=200"`
	Status         *ProcessStatus         `json:"status,omitempty"`
	Salary         *int64                 `json:"salary,omitempty" validate:"omitempty,gte=0"`
	Currency       *kernel.Currency       `json:"currency,omitempty"`
	SalaryRateType *kernel.SalaryRateType `json:"salary_rate_type,omitempty"`
}

// IsEmpty reports whether the request carries no field at all
func (r UpdateProcessRequest) IsEmpty() bool {
	return r.CompanyName == nil && r.JobTitle == nil && r.Status == nil &&
		r.Salary == nil && r.Currency == nil && r.SalaryRateType == nil
}

// ListProcessesFilter - optional filters for listing hiring processes.
// Omitted fields impose no constraint; supplied ones AND together.
type ListProcessesFilter struct {
	Statuses       []ProcessStatus `json:"statuses,omitempty"`
	SalaryDeclared *bool           `json:"salary_declared,omitempty"`
	SalaryMin      *int64          `json:"salary_min,omitempty"`
	SalaryMax      *int64          `json:"salary_max,omitempty"`
}

// Response type alias for paginated processes
type PaginatedProcessesResponse = kernel.Paginated[ProcessResponse]

// ProcessResponse - DTO for returning hiring process data
type ProcessResponse struct {
	ID             kernel.ProcessID      `json:"id"`
	CompanyName    kernel.CompanyName    `json:"company_name"`
	JobTitle       *kernel.JobTitle      `json:"job_title,omitempty"`
	Status         ProcessStatus         `json:"status"`
	Salary         *int64                `json:"salary,omitempty"`
	Currency       kernel.Currency       `json:"currency"`
	SalaryRateType kernel.SalaryRateType `json:"salary_rate_type"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// SaveCompanyDetailsRequest - DTO for the first "save details" call
type SaveCompanyDetailsRequest struct {
	Website        *string `json:"website,omitempty" validate:"omitempty,max=300"`
	Location       *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Benefits       *string `json:"benefits,omitempty" validate:"omitempty,max=2000"`
	ContactedVia   *string `json:"contacted_via,omitempty" validate:"omitempty,max=100"`
	ContactPerson  *string `json:"contact_person,omitempty" validate:"omitempty,max=200"`
	InterviewSteps *int    `json:"interview_steps,omitempty" validate:"omitempty,gte=0"`
}

// UpdateCompanyDetailsRequest - DTO for partially updating details
type UpdateCompanyDetailsRequest struct {
	Website        *string `json:"website,omitempty" validate:"omitempty,max=300"`
	Location       *string `json:"location,omitempty" validate:"omitempty,max=200"`
	Benefits       *string `json:"benefits,omitempty" validate:"omitempty,max=2000"`
	ContactedVia   *string `json:"contacted_via,omitempty" validate:"omitempty,max=100"`
	ContactPerson  *string `json:"contact_person,omitempty" validate:"omitempty,max=200"`
	InterviewSteps *int    `json:"interview_steps,omitempty" validate:"omitempty,gte=0"`
}

// CompanyDetailsResponse - DTO for returning company details
type CompanyDetailsResponse struct {
	ID              kernel.DetailsID `json:"id"`
	HiringProcessID kernel.ProcessID `json:"hiring_process_id"`
	Website         *string          `json:"website,omitempty"`
	Location        *string          `json:"location,omitempty"`
	Benefits        *string          `json:"benefits,omitempty"`
	ContactedVia    *string          `json:"contacted_via,omitempty"`
	ContactPerson   *string          `json:"contact_person,omitempty"`
	InterviewSteps  int              `json:"interview_steps"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
