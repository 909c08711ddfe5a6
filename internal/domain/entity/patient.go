package entity

import "time"

// DateLayout is the wire and form format of patient dates
const DateLayout = "2006-01-02"

// Patient is a single visit record
type Patient struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	BirthDate time.Time `gorm:"type:date;not null" json:"birth_date"`
	VisitDate time.Time `gorm:"type:date;not null;index" json:"visit_date"`
	Diagnosis *string   `gorm:"type:text" json:"diagnosis,omitempty"`
	Procedure *string   `gorm:"column:procedure;type:text" json:"procedure,omitempty"`
	Doctor    *string   `gorm:"type:varchar(255)" json:"doctor,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
