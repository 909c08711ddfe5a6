package handler

import (
	"net/http"
	"strconv"

	"medinote/internal/delivery/dto"

	"github.com/gorilla/mux"
)

func patientRequestFromForm(r *http.Request) dto.PatientRequest {
	return dto.PatientRequest{
		Name:      r.PostFormValue("name"),
		BirthDate: r.PostFormValue("birth_date"),
		VisitDate: r.PostFormValue("visit_date"),
		Diagnosis: r.PostFormValue("diagnosis"),
		Procedure: r.PostFormValue("procedure"),
		Doctor:    r.PostFormValue("doctor"),
	}
}

func patientResponseToForm(p *dto.PatientResponse) dto.PatientRequest {
	return dto.PatientRequest{
		Name:      p.Name,
		BirthDate: p.BirthDate,
		VisitDate: p.VisitDate,
		Diagnosis: p.Diagnosis,
		Procedure: p.Procedure,
		Doctor:    p.Doctor,
	}
}

func dateRangeFromQuery(r *http.Request) dto.DateRangeQuery {
	q := r.URL.Query()
	return dto.DateRangeQuery{
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
	}
}

func patientIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
