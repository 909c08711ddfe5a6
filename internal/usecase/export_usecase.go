package usecase

import (
	"context"
	"strings"

	"medinote/internal/converter"
	"medinote/internal/delivery/dto"
	"medinote/internal/domain/repository"
	"medinote/pkg/spreadsheet"
	"medinote/pkg/validator"

	"github.com/sirupsen/logrus"
)

const exportSheetName = "Patients"

type ExportUsecase interface {
	ExportPatients(ctx context.Context, query dto.DateRangeQuery) (*dto.PatientExport, error)
}

type exportUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	validator   *validator.CustomValidator
}

func NewExportUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, validator *validator.CustomValidator) ExportUsecase {
	return &exportUsecase{
		log:         log,
		patientRepo: patientRepo,
		validator:   validator,
	}
}

func (u *exportUsecase) ExportPatients(ctx context.Context, query dto.DateRangeQuery) (*dto.PatientExport, error) {
	filter, err := parseDateRange(u.validator, query)
	if err != nil {
		return nil, err
	}

	patients, err := u.patientRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find patients for export: %+v", err)
		return nil, err
	}

	rows := make([][]interface{}, len(patients))
	for i := range patients {
		rows[i] = converter.PatientToRow(&patients[i])
	}

	return &dto.PatientExport{
		Filename: exportFilename(query),
		Table: spreadsheet.Table{
			Sheet:  exportSheetName,
			Header: converter.PatientExportHeader,
			Rows:   rows,
		},
	}, nil
}

// exportFilename is patients.xlsx, suffixed with whichever range bounds were given.
func exportFilename(query dto.DateRangeQuery) string {
	parts := []string{"patients"}
	if query.StartDate != "" {
		parts = append(parts, query.StartDate)
	}
	if query.EndDate != "" {
		parts = append(parts, query.EndDate)
	}
	return strings.Join(parts, "_") + ".xlsx"
}
