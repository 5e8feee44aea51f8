package Models

import (
	"gorm.io/gorm"
)

// ProcessedFile logs every spreadsheet upload so repeated imports of the same
// export can be spotted from the admin side.
type ProcessedFile struct {
	gorm.Model
	Filename    string `json:"filename"`
	TargetTable string `json:"target_table"`
	RowCount    int    `json:"row_count"`
}

func (ProcessedFile) TableName() string {
	return "processed_files"
}
