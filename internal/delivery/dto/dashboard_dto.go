package dto

// DateRangeQuery is the optional visit-date filter shared by the
// dashboard and the export.
type DateRangeQuery struct {
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (q DateRangeQuery) IsEmpty() bool {
	return q.StartDate == "" && q.EndDate == ""
}

type DashboardResponse struct {
	TotalPatients int64             `json:"total_patients"`
	TodayPatients int64             `json:"today_patients"`
	Patients      []PatientResponse `json:"patients"`
	Filter        DateRangeQuery    `json:"filter"`
}
