package interaction

import (
	"slices"
	"time"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

// InteractionType classifies a logged touchpoint with a company
type InteractionType string

const (
	TypeNote            InteractionType = "note"
	TypePhoneCall       InteractionType = "phone-call"
	TypeEmail           InteractionType = "email"
	TypeInterview       InteractionType = "interview"
	TypeAssessment      InteractionType = "assessment"
	TypeOffer           InteractionType = "offer"
	TypeRejection       InteractionType = "rejection"
	TypeFollowUp        InteractionType = "follow-up"
	TypeLinkedInMessage InteractionType = "linkedin-message"
	TypeOther           InteractionType = "other"
)

// AllTypes lists the full interaction vocabulary
var AllTypes = []InteractionType{
	TypeNote,
	TypePhoneCall,
	TypeEmail,
	TypeInterview,
	TypeAssessment,
	TypeOffer,
	TypeRejection,
	TypeFollowUp,
	TypeLinkedInMessage,
	TypeOther,
}

// IsValid checks membership in the type vocabulary
func (t InteractionType) IsValid() bool {
	return slices.Contains(AllTypes, t)
}

// Interaction is one logged event in a hiring process timeline.
// Interactions are immutable once logged and are removed for good on
// delete, unlike the soft-deleted process they hang off.
type Interaction struct {
	ID              kernel.InteractionID `db:"id" json:"id"`
	HiringProcessID kernel.ProcessID     `db:"hiring_process_id" json:"hiring_process_id"`
	Type            InteractionType      `db:"type" json:"type"`
	Title           *string              `db:"title" json:"title,omitempty"`
	Content         string               `db:"content" json:"content"`
	OccurredAt      time.Time            `db:"occurred_at" json:"occurred_at"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
}
