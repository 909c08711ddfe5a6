package usecase

import (
	"context"

	"medinote/internal/converter"
	"medinote/internal/delivery/dto"
	"medinote/internal/domain/entity"
	"medinote/internal/domain/repository"
	"medinote/pkg/validator"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error)
	UpdatePatient(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id int64) error
}

type patientUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	validator   *validator.CustomValidator
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, validator *validator.CustomValidator) PatientUsecase {
	return &patientUsecase{
		log:         log,
		patientRepo: patientRepo,
		validator:   validator,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	patient := &entity.Patient{}
	if err := bindPatient(u.validator, patient, req); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if err := bindPatient(u.validator, patient, req); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id int64) error {
	affected, err := u.patientRepo.Delete(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrPatientNotFound
	}

	return nil
}

// bindPatient validates req and copies it onto patient. Create, update and
// import all go through here so they share one rule set.
func bindPatient(v *validator.CustomValidator, patient *entity.Patient, req *dto.PatientRequest) error {
	req.Normalize()
	if err := v.Validate(req); err != nil {
		return &ValidationError{Fields: v.FormatValidationErrors(err)}
	}

	if err := converter.ApplyPatientRequest(patient, req); err != nil {
		return &ValidationError{Fields: map[string]string{"date": "dates must be in YYYY-MM-DD format"}}
	}

	return nil
}
