package completeness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"admissions-portal/internal/domain"
	"admissions-portal/internal/service/completeness"
)

func doc(name, docType, url string) domain.Document {
	return domain.Document{Name: name, Type: docType, URL: url}
}

func TestCheckIssues(t *testing.T) {
	tests := []struct {
		name              string
		documents         []domain.Document
		wantMissing       []string
		wantNonConforming []string
	}{
		{
			name: "complete and conforming file",
			documents: []domain.Document{
				doc("Diploma.pdf", "pdf", "https://x/1"),
				doc("Transcript.pdf", "pdf", "https://x/2"),
				doc("Motivation letter.pdf", "pdf", "https://x/3"),
			},
		},
		{
			name: "only transcript attached",
			documents: []domain.Document{
				doc("Transcript.pdf", "pdf", "https://x/1"),
			},
			wantMissing: []string{"Diploma", "Motivation letter"},
		},
		{
			name:        "no documents at all",
			documents:   nil,
			wantMissing: []string{"Diploma", "Transcript", "Motivation letter"},
		},
		{
			name: "required names matched case-insensitively by substring",
			documents: []domain.Document{
				doc("scan of DIPLOMA (certified).pdf", "pdf", "https://x/1"),
				doc("official transcript 2025.pdf", "pdf", "https://x/2"),
				doc("my motivation LETTER.pdf", "pdf", "https://x/3"),
			},
		},
		{
			name: "wrong type is non-conforming but still satisfies the requirement",
			documents: []domain.Document{
				doc("Diploma.jpg", "jpg", "https://x/1"),
				doc("Transcript.pdf", "pdf", "https://x/2"),
				doc("Motivation letter.pdf", "pdf", "https://x/3"),
			},
			wantNonConforming: []string{"Diploma.jpg"},
		},
		{
			name: "type comparison is strict, uppercase PDF is non-conforming",
			documents: []domain.Document{
				doc("Diploma.PDF", "PDF", "https://x/1"),
				doc("Transcript.pdf", "pdf", "https://x/2"),
				doc("Motivation letter.pdf", "pdf", "https://x/3"),
			},
			wantNonConforming: []string{"Diploma.PDF"},
		},
		{
			name: "empty url is non-conforming",
			documents: []domain.Document{
				doc("Diploma.pdf", "pdf", ""),
				doc("Transcript.pdf", "pdf", "https://x/2"),
				doc("Motivation letter.pdf", "pdf", "https://x/3"),
			},
			wantNonConforming: []string{"Diploma.pdf"},
		},
		{
			name: "extra unrelated document with issues is still reported",
			documents: []domain.Document{
				doc("Diploma.pdf", "pdf", "https://x/1"),
				doc("Transcript.pdf", "pdf", "https://x/2"),
				doc("Motivation letter.pdf", "pdf", "https://x/3"),
				doc("Photo.png", "png", "https://x/4"),
			},
			wantNonConforming: []string{"Photo.png"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := &domain.Application{Documents: tt.documents}

			issues := completeness.CheckIssues(app)

			assert.Equal(t, tt.wantMissing, issues.Missing)
			assert.Equal(t, tt.wantNonConforming, issues.NonConforming)
			assert.Equal(t, len(tt.wantMissing) > 0 || len(tt.wantNonConforming) > 0, issues.HasIssues())
		})
	}
}

func TestCheckIssues_Deterministic(t *testing.T) {
	app := &domain.Application{Documents: []domain.Document{
		doc("Transcript.pdf", "pdf", "https://x/1"),
		doc("Photo.png", "png", ""),
	}}

	first := completeness.CheckIssues(app)
	second := completeness.CheckIssues(app)

	assert.Equal(t, first, second)
}
