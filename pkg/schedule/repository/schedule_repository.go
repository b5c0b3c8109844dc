package repository

import "krishi/entities"

type ScheduleRepository interface {
	BulkInsert([]entities.ApplicationTask) error
	List(farmID uint, from, to string) ([]entities.ApplicationTask, error)
	PatchStatus(taskID uint, status string, qty *float64) error
}
