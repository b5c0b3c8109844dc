package entities

import "time"

type ApplicationTask struct {
	TaskID   uint      `gorm:"primaryKey" json:"task_id"`
	FarmID   uint      `gorm:"index" json:"farm_id"`
	RecID    uint      `gorm:"index" json:"rec_id"`
	Date     time.Time `json:"date"`
	Title    string    `json:"title"`
	Type     string    `json:"type"` // organic|basal|topdress
	Qty      *float64  `json:"qty"`
	Unit     string    `json:"unit"`
	Notes    string    `json:"notes"`
	Status   string    `json:"status"` // todo|done|skipped
	CreatedAt time.Time
	UpdatedAt time.Time
}
