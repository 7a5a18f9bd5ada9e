package process

import (
	"slices"
	"time"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

// ProcessStatus represents where a hiring process currently stands
type ProcessStatus string

const (
	StatusFirstContact  ProcessStatus = "first-contact" // Creation default
	StatusOngoing       ProcessStatus = "ongoing"
	StatusOnHold        ProcessStatus = "on-hold"
	StatusRejected      ProcessStatus = "rejected"
	StatusDroppedOut    ProcessStatus = "dropped-out"
	StatusHired         ProcessStatus = "hired"
	StatusOfferMade     ProcessStatus = "offer-made"
	StatusOfferAccepted ProcessStatus = "offer-accepted"
)

// AllStatuses lists the full status vocabulary
var AllStatuses = []ProcessStatus{
	StatusFirstContact,
	StatusOngoing,
	StatusOnHold,
	StatusRejected,
	StatusDroppedOut,
	StatusHired,
	StatusOfferMade,
	StatusOfferAccepted,
}

// IsValid checks membership in the status vocabulary
func (s ProcessStatus) IsValid() bool {
	return slices.Contains(AllStatuses, s)
}

// validTransitions is the status state machine. Statuses with no entry
// are terminal.
var validTransitions = map[ProcessStatus][]ProcessStatus{
	StatusFirstContact: {StatusOngoing, StatusOnHold, StatusRejected, StatusDroppedOut},
	StatusOngoing:      {StatusOnHold, StatusRejected, StatusDroppedOut, StatusHired},
	StatusOnHold:       {StatusOngoing, StatusRejected, StatusDroppedOut, StatusHired, StatusOfferMade},
	StatusOfferMade:    {StatusOfferAccepted},
}

// IsTerminal checks whether the status admits no further transitions
func (s ProcessStatus) IsTerminal() bool {
	return len(validTransitions[s]) == 0
}

// CanTransitionTo checks whether moving to next is allowed
func (s ProcessStatus) CanTransitionTo(next ProcessStatus) bool {
	return slices.Contains(validTransitions[s], next)
}

type HiringProcess struct {
	ID             kernel.ProcessID      `db:"id" json:"id"`
	UserID         kernel.UserID         `db:"user_id" json:"user_id"`
	CompanyName    kernel.CompanyName    `db:"company_name" json:"company_name"`
	JobTitle       *kernel.JobTitle      `db:"job_title" json:"job_title,omitempty"`
	Status         ProcessStatus         `db:"status" json:"status"`
	Salary         *int64                `db:"salary" json:"salary,omitempty"`
	Currency       kernel.Currency       `db:"currency" json:"currency"`
	SalaryRateType kernel.SalaryRateType `db:"salary_rate_type" json:"salary_rate_type"`
	CreatedAt      time.Time             `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time             `db:"updated_at" json:"updated_at"`
	DeletedAt      *time.Time            `db:"deleted_at" json:"-"`
}

// ============================================================================
// Domain Methods
// ============================================================================

// IsDeleted checks if the process was soft-deleted
func (p *HiringProcess) IsDeleted() bool {
	return p.DeletedAt != nil
}

// HasDeclaredSalary checks if a meaningful salary was recorded.
// A zero salary counts as "not declared".
func (p *HiringProcess) HasDeclaredSalary() bool {
	return p.Salary != nil && *p.Salary > 0
}

// ChangeStatus moves the process along the state machine
func (p *HiringProcess) ChangeStatus(next ProcessStatus) error {
	if !next.IsValid() {
		return ErrInvalidStatus().WithDetail("status", next)
	}
	if !p.Status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition().
			WithDetail("current_status", p.Status).
			WithDetail("new_status", next)
	}

	p.Status = next
	p.UpdatedAt = time.Now()
	return nil
}

// CompanyDetails is the optional 1:1 extension of a hiring process
type CompanyDetails struct {
	ID              kernel.DetailsID `db:"id" json:"id"`
	HiringProcessID kernel.ProcessID `db:"hiring_process_id" json:"hiring_process_id"`
	Website         *string          `db:"website" json:"website,omitempty"`
	Location        *string          `db:"location" json:"location,omitempty"`
	Benefits        *string          `db:"benefits" json:"benefits,omitempty"`
	ContactedVia    *string          `db:"contacted_via" json:"contacted_via,omitempty"`
	ContactPerson   *string          `db:"contact_person" json:"contact_person,omitempty"`
	InterviewSteps  int              `db:"interview_steps" json:"interview_steps"`
	CreatedAt       time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at" json:"updated_at"`
	DeletedAt       *time.Time       `db:"deleted_at" json:"-"`
}
