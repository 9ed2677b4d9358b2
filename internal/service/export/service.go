package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/xuri/excelize/v2"

	"admissions-portal/internal/config"
	"admissions-portal/internal/domain"
	"admissions-portal/internal/repository"
)

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var ErrStorageUnavailable = errors.New("object storage unavailable")

// Store is the slice of the record store the exporter reads from.
type Store interface {
	GetApplications(ctx context.Context) ([]domain.Application, error)
}

// Service turns validated applications into spreadsheet artifacts. Each
// call builds a fresh workbook, uploads it to object storage and returns
// the object URL.
type Service interface {
	GenerateForClass(ctx context.Context, classID string) (string, error)
	GenerateForSchool(ctx context.Context, schoolID string) (string, error)
	GenerateAll(ctx context.Context) (string, error)
}

type service struct {
	store     Store
	directory repository.DirectoryRepository
	client    *minio.Client
	cfg       *config.Config
}

func NewService(st Store, directory repository.DirectoryRepository, client *minio.Client, cfg *config.Config) Service {
	return &service{
		store:     st,
		directory: directory,
		client:    client,
		cfg:       cfg,
	}
}

func (s *service) GenerateForClass(ctx context.Context, classID string) (string, error) {
	class, err := s.directory.GetClassByID(ctx, classID)
	if err != nil {
		return "", err
	}

	apps, err := s.validatedApplications(ctx, func(a *domain.Application) bool {
		return a.ClassID == classID
	})
	if err != nil {
		return "", err
	}

	return s.upload(ctx, fmt.Sprintf("class-%s", class.Name), apps)
}

func (s *service) GenerateForSchool(ctx context.Context, schoolID string) (string, error) {
	school, err := s.directory.GetSchoolByID(ctx, schoolID)
	if err != nil {
		return "", err
	}

	apps, err := s.validatedApplications(ctx, func(a *domain.Application) bool {
		return a.SchoolID == schoolID
	})
	if err != nil {
		return "", err
	}

	return s.upload(ctx, fmt.Sprintf("school-%s", school.Name), apps)
}

func (s *service) GenerateAll(ctx context.Context) (string, error) {
	apps, err := s.validatedApplications(ctx, func(*domain.Application) bool { return true })
	if err != nil {
		return "", err
	}

	return s.upload(ctx, "all-schools", apps)
}

func (s *service) validatedApplications(ctx context.Context, keep func(*domain.Application) bool) ([]domain.Application, error) {
	apps, err := s.store.GetApplications(ctx)
	if err != nil {
		return nil, err
	}

	validated := make([]domain.Application, 0, len(apps))
	for i := range apps {
		if apps[i].Status == domain.StatusValidated && keep(&apps[i]) {
			validated = append(validated, apps[i])
		}
	}
	return validated, nil
}

func (s *service) upload(ctx context.Context, name string, apps []domain.Application) (string, error) {
	if s.client == nil {
		return "", ErrStorageUnavailable
	}

	buf, err := buildWorkbook(apps)
	if err != nil {
		return "", err
	}

	objectName := fmt.Sprintf("exports/%s-%s.xlsx", name, time.Now().UTC().Format("20060102-150405"))
	_, err = s.client.PutObject(ctx, s.cfg.MinIOBucket, objectName, buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: contentTypeXLSX,
	})
	if err != nil {
		return "", fmt.Errorf("upload export: %w", err)
	}

	scheme := "http"
	if s.cfg.MinIOUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOEndpoint, s.cfg.MinIOBucket, objectName), nil
}

func buildWorkbook(apps []domain.Application) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Validated"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Matricule", "Last name", "First name", "Gender", "Date of birth", "Email", "Phone", "Validated by", "Validated at"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, app := range apps {
		values := []any{
			app.Matricule,
			app.LastName,
			app.FirstName,
			string(app.Gender),
			app.DateOfBirth.Format("2006-01-02"),
			app.Email,
			app.Phone,
			deref(app.ValidatedBy),
			formatTime(app.ValidatedAt),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}
