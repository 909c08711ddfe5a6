package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"medinote/internal/domain/entity"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type capturedQuery struct {
	sql  string
	vars []interface{}
}

// newDryRunDB builds statements with the postgres dialect without ever
// opening a connection, recording every query it would have sent.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedQuery) {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=medinote dbname=medinote sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("gorm.Open: %v", err)
	}

	var captured []capturedQuery
	err = db.Callback().Query().After("gorm:query").Register("test:capture", func(tx *gorm.DB) {
		captured = append(captured, capturedQuery{
			sql:  tx.Statement.SQL.String(),
			vars: append([]interface{}(nil), tx.Statement.Vars...),
		})
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}
	return db, &captured
}

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		t.Fatal(err)
	}
	return &d
}

func TestPatientRepository_FindAllVisitRange(t *testing.T) {
	tests := []struct {
		name     string
		filter   entity.PatientFilter
		wantSQL  []string
		skipSQL  []string
		wantVars []interface{}
	}{
		{
			name:     "no filter",
			filter:   entity.PatientFilter{},
			skipSQL:  []string{"WHERE"},
			wantVars: nil,
		},
		{
			name:     "both bounds inclusive",
			filter:   entity.PatientFilter{VisitFrom: date(t, "2024-01-01"), VisitTo: date(t, "2024-01-31")},
			wantSQL:  []string{"visit_date >= $1", "visit_date <= $2"},
			wantVars: []interface{}{"2024-01-01", "2024-01-31"},
		},
		{
			name:     "end bound only",
			filter:   entity.PatientFilter{VisitTo: date(t, "2024-01-31")},
			wantSQL:  []string{"visit_date <= $1"},
			skipSQL:  []string{">="},
			wantVars: []interface{}{"2024-01-31"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, captured := newDryRunDB(t)
			repo := NewPatientRepository(db)

			if _, err := repo.FindAll(context.Background(), tt.filter); err != nil {
				t.Fatalf("FindAll: %v", err)
			}
			if len(*captured) != 1 {
				t.Fatalf("expected one query, got %d", len(*captured))
			}
			q := (*captured)[0]

			if !strings.Contains(q.sql, `FROM "patients"`) || !strings.HasSuffix(q.sql, "ORDER BY visit_date DESC, id DESC") {
				t.Errorf("unexpected SQL: %s", q.sql)
			}
			for _, want := range tt.wantSQL {
				if !strings.Contains(q.sql, want) {
					t.Errorf("SQL %q missing %q", q.sql, want)
				}
			}
			for _, skip := range tt.skipSQL {
				if strings.Contains(q.sql, skip) {
					t.Errorf("SQL %q must not contain %q", q.sql, skip)
				}
			}
			if len(q.vars) != len(tt.wantVars) {
				t.Fatalf("vars = %v, want %v", q.vars, tt.wantVars)
			}
			for i := range tt.wantVars {
				if q.vars[i] != tt.wantVars[i] {
					t.Errorf("vars[%d] = %v, want %v", i, q.vars[i], tt.wantVars[i])
				}
			}
		})
	}
}

func TestPatientRepository_CountByVisitDate(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewPatientRepository(db)

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	if _, err := repo.CountByVisitDate(context.Background(), day); err != nil {
		t.Fatalf("CountByVisitDate: %v", err)
	}
	if len(*captured) != 1 {
		t.Fatalf("expected one query, got %d", len(*captured))
	}
	q := (*captured)[0]

	if !strings.Contains(q.sql, "count(*)") || !strings.Contains(q.sql, "visit_date = $1") {
		t.Errorf("unexpected SQL: %s", q.sql)
	}
	if len(q.vars) != 1 || q.vars[0] != "2024-05-01" {
		t.Errorf("vars = %v, want [2024-05-01]", q.vars)
	}
}
