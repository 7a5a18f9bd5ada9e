package process

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/chamba/pkg/errx"
	"github.com/Abraxas-365/chamba/pkg/kernel"
)

func newTestProcess(status ProcessStatus) *HiringProcess {
	now := time.Now()
	return &HiringProcess{
		ID:             kernel.NewProcessID("proc-1"),
		UserID:         kernel.NewUserID("user-1"),
		CompanyName:    kernel.CompanyName("Acme"),
		Status:         status,
		Currency:       kernel.CurrencyUSD,
		SalaryRateType: kernel.SalaryRateMonthly,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestProcessStatusIsValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}

	assert.False(t, ProcessStatus("interviewing").IsValid())
	assert.False(t, ProcessStatus("").IsValid())
	assert.False(t, ProcessStatus("FIRST-CONTACT").IsValid())
}

func TestProcessStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    ProcessStatus
		to      ProcessStatus
		allowed bool
	}{
		{"first contact starts the pipeline", StatusFirstContact, StatusOngoing, true},
		{"first contact can go on hold", StatusFirstContact, StatusOnHold, true},
		{"first contact can be rejected", StatusFirstContact, StatusRejected, true},
		{"first contact cannot skip to hired", StatusFirstContact, StatusHired, false},
		{"ongoing can end in hired", StatusOngoing, StatusHired, true},
		{"ongoing can be dropped", StatusOngoing, StatusDroppedOut, true},
		{"ongoing cannot go back to first contact", StatusOngoing, StatusFirstContact, false},
		{"on hold resumes to ongoing", StatusOnHold, StatusOngoing, true},
		{"on hold can receive an offer", StatusOnHold, StatusOfferMade, true},
		{"offer made awaits acceptance", StatusOfferMade, StatusOfferAccepted, true},
		{"offer made cannot be put on hold", StatusOfferMade, StatusOnHold, false},
		{"rejected is terminal", StatusRejected, StatusOngoing, false},
		{"hired is terminal", StatusHired, StatusOngoing, false},
		{"offer accepted is terminal", StatusOfferAccepted, StatusHired, false},
		{"self transition is not allowed", StatusOngoing, StatusOngoing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestProcessStatusIsTerminal(t *testing.T) {
	terminal := []ProcessStatus{StatusRejected, StatusDroppedOut, StatusHired, StatusOfferAccepted}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), "expected %s to be terminal", s)
	}

	open := []ProcessStatus{StatusFirstContact, StatusOngoing, StatusOnHold, StatusOfferMade}
	for _, s := range open {
		assert.False(t, s.IsTerminal(), "expected %s to be open", s)
	}
}

func TestChangeStatus(t *testing.T) {
	t.Run("valid transition updates status and timestamp", func(t *testing.T) {
		p := newTestProcess(StatusFirstContact)
		before := p.UpdatedAt

		time.Sleep(time.Millisecond)
		err := p.ChangeStatus(StatusOngoing)

		require.NoError(t, err)
		assert.Equal(t, StatusOngoing, p.Status)
		assert.True(t, p.UpdatedAt.After(before))
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		p := newTestProcess(StatusFirstContact)

		err := p.ChangeStatus(ProcessStatus("limbo"))

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeValidation))
		assert.Equal(t, StatusFirstContact, p.Status)
	})

	t.Run("disallowed transition is a business error", func(t *testing.T) {
		p := newTestProcess(StatusRejected)

		err := p.ChangeStatus(StatusOngoing)

		require.Error(t, err)
		assert.True(t, errx.IsType(err, errx.TypeBusiness))
		assert.Equal(t, StatusRejected, p.Status)
	})
}

func TestHasDeclaredSalary(t *testing.T) {
	p := newTestProcess(StatusOngoing)
	assert.False(t, p.HasDeclaredSalary())

	zero := int64(0)
	p.Salary = &zero
	assert.False(t, p.HasDeclaredSalary(), "zero salary counts as undeclared")

	salary := int64(120000)
	p.Salary = &salary
	assert.True(t, p.HasDeclaredSalary())
}

func TestIsDeleted(t *testing.T) {
	p := newTestProcess(StatusOngoing)
	assert.False(t, p.IsDeleted())

	now := time.Now()
	p.DeletedAt = &now
	assert.True(t, p.IsDeleted())
}

func TestUpdateProcessRequestIsEmpty(t *testing.T) {
	assert.True(t, UpdateProcessRequest{}.IsEmpty())

	name := kernel.CompanyName("Acme")
	assert.False(t, UpdateProcessRequest{CompanyName: &name}.IsEmpty())

	status := StatusOngoing
	assert.False(t, UpdateProcessRequest{Status: &status}.IsEmpty())
}
