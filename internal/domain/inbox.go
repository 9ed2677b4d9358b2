package domain

import "time"

// DirectorInboxItem routes an application awaiting a director's decision.
// An application has at most one open item at a time; items are removed
// when the director acts on the referenced application.
type DirectorInboxItem struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	SchoolID      string    `json:"school_id"`
	DirectorID    *string   `json:"director_id,omitempty"`
	AgentID       *string   `json:"agent_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Read          bool      `json:"read"`
}

// InboxEntry is the director-facing view of an inbox item, enriched with a
// snippet of the referenced application.
type InboxEntry struct {
	DirectorInboxItem
	ApplicantName string            `json:"applicant_name,omitempty"`
	Matricule     string            `json:"matricule,omitempty"`
	Status        ApplicationStatus `json:"status,omitempty"`
}
