package repository

import (
	"context"
	"errors"
	"time"

	"medinote/internal/domain/entity"
	domainRepo "medinote/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRepository) FindByID(ctx context.Context, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context, filter entity.PatientFilter) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := applyVisitRange(r.db.WithContext(ctx), filter).
		Order("visit_date DESC, id DESC").
		Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context, filter entity.PatientFilter) (int64, error) {
	var total int64
	err := applyVisitRange(r.db.WithContext(ctx).Model(&entity.Patient{}), filter).Count(&total).Error
	return total, err
}

func (r *patientRepository) CountByVisitDate(ctx context.Context, day time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entity.Patient{}).
		Where("visit_date = ?", day.Format(entity.DateLayout)).
		Count(&total).Error
	return total, err
}

func (r *patientRepository) Update(ctx context.Context, patient *entity.Patient) error {
	return r.db.WithContext(ctx).
		Model(patient).
		Select("name", "birth_date", "visit_date", "diagnosis", "procedure", "doctor", "updated_at").
		Updates(patient).Error
}

func (r *patientRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Patient{})
	return result.RowsAffected, result.Error
}

// applyVisitRange narrows the query to an inclusive visit-date range.
func applyVisitRange(query *gorm.DB, filter entity.PatientFilter) *gorm.DB {
	if filter.IsEmpty() {
		return query
	}
	if filter.VisitFrom != nil {
		query = query.Where("visit_date >= ?", filter.VisitFrom.Format(entity.DateLayout))
	}
	if filter.VisitTo != nil {
		query = query.Where("visit_date <= ?", filter.VisitTo.Format(entity.DateLayout))
	}
	return query
}
