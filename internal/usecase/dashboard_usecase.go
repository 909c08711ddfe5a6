package usecase

import (
	"context"
	"time"

	"medinote/internal/converter"
	"medinote/internal/delivery/dto"
	"medinote/internal/domain/entity"
	"medinote/internal/domain/repository"
	"medinote/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type DashboardUsecase interface {
	GetDashboard(ctx context.Context, query dto.DateRangeQuery) (*dto.DashboardResponse, error)
}

type dashboardUsecase struct {
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	validator   *validator.CustomValidator
	location    *time.Location
	now         func() time.Time
}

func NewDashboardUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	validator *validator.CustomValidator,
	location *time.Location,
) DashboardUsecase {
	return &dashboardUsecase{
		log:         log,
		patientRepo: patientRepo,
		validator:   validator,
		location:    location,
		now:         time.Now,
	}
}

// GetDashboard returns the overall and today's counts plus the records
// inside the requested visit-date range.
func (u *dashboardUsecase) GetDashboard(ctx context.Context, query dto.DateRangeQuery) (*dto.DashboardResponse, error) {
	filter, err := parseDateRange(u.validator, query)
	if err != nil {
		return nil, err
	}

	today := entity.TruncateDay(u.now().In(u.location))

	var (
		total    int64
		todayCnt int64
		patients []entity.Patient
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = u.patientRepo.Count(gctx, entity.PatientFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		todayCnt, err = u.patientRepo.CountByVisitDate(gctx, today)
		return err
	})
	g.Go(func() error {
		var err error
		patients, err = u.patientRepo.FindAll(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		u.log.Warnf("Failed to load dashboard: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalPatients: total,
		TodayPatients: todayCnt,
		Patients:      converter.PatientsToResponses(patients),
		Filter:        query,
	}, nil
}
