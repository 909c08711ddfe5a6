package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"medinote/internal/delivery/dto"
	"medinote/internal/domain/entity"
	"medinote/internal/domain/repository"
	"medinote/pkg/validator"

	"github.com/sirupsen/logrus"
)

type ImportUsecase interface {
	ImportPatients(ctx context.Context, records []json.RawMessage) (*dto.ImportResult, error)
}

type importUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	validator   *validator.CustomValidator
}

func NewImportUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, validator *validator.CustomValidator) ImportUsecase {
	return &importUsecase{
		log:         log,
		patientRepo: patientRepo,
		validator:   validator,
	}
}

// ImportPatients decodes and inserts each record on its own. Records that
// do not decode or validate are reported by their position in the payload
// and do not block the others. A storage failure aborts the import; rows
// already inserted stay.
func (u *importUsecase) ImportPatients(ctx context.Context, records []json.RawMessage) (*dto.ImportResult, error) {
	if len(records) == 0 {
		return nil, ErrEmptyImport
	}

	result := &dto.ImportResult{
		Total:  len(records),
		Failed: []dto.ImportFailure{},
	}

	for i, raw := range records {
		var req dto.PatientRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			result.Failed = append(result.Failed, dto.ImportFailure{Index: i, Errors: decodeErrors(err)})
			continue
		}

		patient := &entity.Patient{}
		if err := bindPatient(u.validator, patient, &req); err != nil {
			vErr, ok := AsValidationError(err)
			if !ok {
				return nil, err
			}
			result.Failed = append(result.Failed, dto.ImportFailure{Index: i, Errors: vErr.Fields})
			continue
		}

		if err := u.patientRepo.Create(ctx, patient); err != nil {
			u.log.Warnf("Failed to import patient at index %d: %+v", i, err)
			return nil, err
		}
		result.Imported++
	}

	u.log.WithFields(logrus.Fields{
		"total":    result.Total,
		"imported": result.Imported,
		"failed":   len(result.Failed),
	}).Info("Patients imported")

	return result, nil
}

// decodeErrors names the offending field when a record has a value of the
// wrong JSON type, and the whole record otherwise.
func decodeErrors(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return map[string]string{typeErr.Field: typeErr.Field + " must be a string"}
	}
	return map[string]string{"record": "record must be a JSON object"}
}
