package domain

import (
	"time"
)

type Application struct {
	ID                   string            `json:"id"`
	Matricule            string            `json:"matricule"`
	FirstName            string            `json:"first_name"`
	LastName             string            `json:"last_name"`
	Gender               Gender            `json:"gender"`
	DateOfBirth          time.Time         `json:"date_of_birth"`
	Email                string            `json:"email"`
	Phone                string            `json:"phone"`
	Address              string            `json:"address"`
	SchoolID             string            `json:"school_id"`
	ClassID              string            `json:"class_id"`
	Status               ApplicationStatus `json:"status"`
	Documents            []Document        `json:"documents"`
	ValidatedBy          *string           `json:"validated_by,omitempty"`
	ValidatedAt          *time.Time        `json:"validated_at,omitempty"`
	RejectionReason      *string           `json:"rejection_reason,omitempty"`
	AgentMissingDocument *string           `json:"agent_missing_document,omitempty"`
	AgentReviewedBy      *string           `json:"agent_reviewed_by,omitempty"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

func (a *Application) FullName() string {
	return a.FirstName + " " + a.LastName
}

// IsTerminal reports whether the application has reached a final decision.
func (a *Application) IsTerminal() bool {
	return a.Status == StatusValidated || a.Status == StatusRejected
}

type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type ApplicationStatus string

const (
	StatusPending    ApplicationStatus = "pending"
	StatusToValidate ApplicationStatus = "to_validate"
	StatusValidated  ApplicationStatus = "validated"
	StatusRejected   ApplicationStatus = "rejected"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type CreateApplicationInput struct {
	FirstName   string    `json:"first_name" validate:"required,min=2"`
	LastName    string    `json:"last_name" validate:"required,min=2"`
	Gender      Gender    `json:"gender" validate:"required,oneof=male female"`
	DateOfBirth time.Time `json:"date_of_birth" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone" validate:"required"`
	Address     string    `json:"address" validate:"required"`
	SchoolID    string    `json:"school_id" validate:"required"`
	ClassID     string    `json:"class_id" validate:"required"`
}

type AddDocumentInput struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

type ApplicationFilter struct {
	Status   *ApplicationStatus
	SchoolID string
	ClassID  string
	Search   string
}

// DocumentIssues is the structured payload of a failed completeness gate.
type DocumentIssues struct {
	Missing       []string `json:"missing"`
	NonConforming []string `json:"non_conforming"`
}

func (i DocumentIssues) HasIssues() bool {
	return len(i.Missing) > 0 || len(i.NonConforming) > 0
}
