package validator

import "testing"

type sample struct {
	Name      string `validate:"required,max=5"`
	VisitDate string `validate:"required,datetime=2006-01-02"`
	Role      string `validate:"omitempty,oneof=doctor admin"`
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name  string
		input sample
		want  map[string]string
	}{
		{
			name:  "valid",
			input: sample{Name: "Ana", VisitDate: "2024-02-29"},
			want:  map[string]string{},
		},
		{
			name:  "missing fields",
			input: sample{},
			want: map[string]string{
				"name":       "name is required",
				"visit_date": "visit_date is required",
			},
		},
		{
			name:  "bad date and role",
			input: sample{Name: "Ana", VisitDate: "2023-02-29", Role: "nurse"},
			want: map[string]string{
				"visit_date": "visit_date must be a date in YYYY-MM-DD format",
				"role":       "role must be one of: doctor admin",
			},
		},
		{
			name:  "too long",
			input: sample{Name: "Anastasia", VisitDate: "2024-01-01"},
			want:  map[string]string{"name": "name must be at most 5 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.FormatValidationErrors(v.Validate(&tt.input))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for k, msg := range tt.want {
				if got[k] != msg {
					t.Errorf("%s: got %q, want %q", k, got[k], msg)
				}
			}
		})
	}
}
