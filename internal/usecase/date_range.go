package usecase

import (
	"time"

	"medinote/internal/delivery/dto"
	"medinote/internal/domain/entity"
	"medinote/pkg/validator"
)

// parseDateRange turns the query strings into a repository filter.
func parseDateRange(v *validator.CustomValidator, q dto.DateRangeQuery) (entity.PatientFilter, error) {
	var filter entity.PatientFilter
	if q.IsEmpty() {
		return filter, nil
	}

	if err := v.Validate(&q); err != nil {
		return filter, &ValidationError{Fields: v.FormatValidationErrors(err)}
	}

	if q.StartDate != "" {
		from, _ := time.Parse(entity.DateLayout, q.StartDate)
		filter.VisitFrom = &from
	}
	if q.EndDate != "" {
		to, _ := time.Parse(entity.DateLayout, q.EndDate)
		filter.VisitTo = &to
	}

	if filter.VisitFrom != nil && filter.VisitTo != nil && filter.VisitFrom.After(*filter.VisitTo) {
		return filter, ErrInvalidDateRange
	}

	return filter, nil
}
