package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"admissions-portal/internal/domain"
)

// DirectoryRepository serves the read-only school/class reference data the
// workflow uses to route inbox items and label exports.
type DirectoryRepository interface {
	GetSchoolByID(ctx context.Context, id string) (*domain.School, error)
	GetClassByID(ctx context.Context, id string) (*domain.Class, error)
	ListSchools(ctx context.Context) ([]domain.School, error)
	ListClassesBySchool(ctx context.Context, schoolID string) ([]domain.Class, error)
}

type directoryRepository struct {
	db *sqlx.DB
}

func NewDirectoryRepository(db *sqlx.DB) DirectoryRepository {
	return &directoryRepository{db: db}
}

func (r *directoryRepository) GetSchoolByID(ctx context.Context, id string) (*domain.School, error) {
	var school domain.School
	query := `SELECT * FROM schools WHERE id = $1`
	err := r.db.GetContext(ctx, &school, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &school, nil
}

func (r *directoryRepository) GetClassByID(ctx context.Context, id string) (*domain.Class, error) {
	var class domain.Class
	query := `SELECT * FROM classes WHERE id = $1`
	err := r.db.GetContext(ctx, &class, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *directoryRepository) ListSchools(ctx context.Context) ([]domain.School, error) {
	var schools []domain.School
	query := `SELECT * FROM schools ORDER BY name`
	err := r.db.SelectContext(ctx, &schools, query)
	return schools, err
}

func (r *directoryRepository) ListClassesBySchool(ctx context.Context, schoolID string) ([]domain.Class, error) {
	var classes []domain.Class
	query := `SELECT * FROM classes WHERE school_id = $1 ORDER BY name`
	err := r.db.SelectContext(ctx, &classes, query, schoolID)
	return classes, err
}
