package dto

import "medinote/pkg/spreadsheet"

type PatientExport struct {
	Filename string
	Table    spreadsheet.Table
}
