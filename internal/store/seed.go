package store

import (
	"time"

	"admissions-portal/internal/domain"
)

// SeedApplications is the fixture set persisted on the very first read of
// the applications collection. The records reference the directory's seed
// schools and classes.
func SeedApplications() []domain.Application {
	created := time.Date(2025, time.September, 1, 8, 0, 0, 0, time.UTC)

	return []domain.Application{
		{
			ID:          "app-0001",
			Matricule:   "ADM-2025-0001",
			FirstName:   "Awa",
			LastName:    "Diallo",
			Gender:      domain.GenderFemale,
			DateOfBirth: time.Date(2008, time.March, 14, 0, 0, 0, 0, time.UTC),
			Email:       "awa.diallo@example.com",
			Phone:       "+221770000001",
			Address:     "12 Rue des Manguiers, Dakar",
			SchoolID:    "school-1",
			ClassID:     "class-1",
			Status:      domain.StatusPending,
			Documents: []domain.Document{
				{ID: "doc-0001", Name: "Diploma.pdf", Type: "pdf", URL: "https://files.example.com/doc-0001", UploadedAt: created},
				{ID: "doc-0002", Name: "Transcript.pdf", Type: "pdf", URL: "https://files.example.com/doc-0002", UploadedAt: created},
				{ID: "doc-0003", Name: "Motivation letter.pdf", Type: "pdf", URL: "https://files.example.com/doc-0003", UploadedAt: created},
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:          "app-0002",
			Matricule:   "ADM-2025-0002",
			FirstName:   "Moussa",
			LastName:    "Ndiaye",
			Gender:      domain.GenderMale,
			DateOfBirth: time.Date(2007, time.November, 2, 0, 0, 0, 0, time.UTC),
			Email:       "moussa.ndiaye@example.com",
			Phone:       "+221770000002",
			Address:     "5 Avenue Bourguiba, Dakar",
			SchoolID:    "school-1",
			ClassID:     "class-2",
			Status:      domain.StatusPending,
			Documents: []domain.Document{
				{ID: "doc-0004", Name: "Transcript.pdf", Type: "pdf", URL: "https://files.example.com/doc-0004", UploadedAt: created},
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:          "app-0003",
			Matricule:   "ADM-2025-0003",
			FirstName:   "Fatou",
			LastName:    "Sow",
			Gender:      domain.GenderFemale,
			DateOfBirth: time.Date(2008, time.June, 21, 0, 0, 0, 0, time.UTC),
			Email:       "fatou.sow@example.com",
			Phone:       "+221770000003",
			Address:     "Quartier Escale, Saint-Louis",
			SchoolID:    "school-2",
			ClassID:     "class-3",
			Status:      domain.StatusPending,
			Documents: []domain.Document{
				{ID: "doc-0005", Name: "Diploma.pdf", Type: "pdf", URL: "https://files.example.com/doc-0005", UploadedAt: created},
				{ID: "doc-0006", Name: "Transcript scan.jpg", Type: "jpg", URL: "https://files.example.com/doc-0006", UploadedAt: created},
				{ID: "doc-0007", Name: "Motivation letter.pdf", Type: "pdf", URL: "", UploadedAt: created},
			},
			CreatedAt: created,
			UpdatedAt: created,
		},
		{
			ID:          "app-0004",
			Matricule:   "ADM-2025-0004",
			FirstName:   "Ibrahima",
			LastName:    "Fall",
			Gender:      domain.GenderMale,
			DateOfBirth: time.Date(2007, time.January, 30, 0, 0, 0, 0, time.UTC),
			Email:       "ibrahima.fall@example.com",
			Phone:       "+221770000004",
			Address:     "Cité Niakh, Thiès",
			SchoolID:    "school-2",
			ClassID:     "class-4",
			Status:      domain.StatusPending,
			Documents:   []domain.Document{},
			CreatedAt:   created,
			UpdatedAt:   created,
		},
	}
}
