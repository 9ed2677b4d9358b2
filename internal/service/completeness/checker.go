package completeness

import (
	"strings"

	"admissions-portal/internal/domain"
)

// RequiredDocuments is the canonical required-document policy. A document
// satisfies a requirement when its name contains the required name as a
// case-insensitive substring.
var RequiredDocuments = []string{
	"Diploma",
	"Transcript",
	"Motivation letter",
}

// AcceptedType is the only document type accepted by the gate.
const AcceptedType = "pdf"

// CheckIssues compares an application's attached documents against the
// required-document policy. It is deterministic and has no side effects:
// the same application always yields the same report. Non-conforming
// documents are reported by name whether or not they satisfy a requirement.
func CheckIssues(app *domain.Application) domain.DocumentIssues {
	var issues domain.DocumentIssues

	for _, required := range RequiredDocuments {
		if !hasDocument(app.Documents, required) {
			issues.Missing = append(issues.Missing, required)
		}
	}

	// Type matching is strict: only the lowercase "pdf" the upload pipeline
	// records is conforming.
	for _, doc := range app.Documents {
		if doc.URL == "" || doc.Type != AcceptedType {
			issues.NonConforming = append(issues.NonConforming, doc.Name)
		}
	}

	return issues
}

func hasDocument(docs []domain.Document, required string) bool {
	needle := strings.ToLower(required)
	for _, doc := range docs {
		if strings.Contains(strings.ToLower(doc.Name), needle) {
			return true
		}
	}
	return false
}
