package repository

import (
	"context"
	"time"

	"medinote/internal/domain/entity"
)

// PatientRepository persists patient visit records. Find methods return
// (nil, nil) when no row matches.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id int64) (*entity.Patient, error)
	FindAll(ctx context.Context, filter entity.PatientFilter) ([]entity.Patient, error)
	Count(ctx context.Context, filter entity.PatientFilter) (int64, error)
	CountByVisitDate(ctx context.Context, day time.Time) (int64, error)
	Update(ctx context.Context, patient *entity.Patient) error
	Delete(ctx context.Context, id int64) (int64, error)
}
