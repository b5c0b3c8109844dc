package service

import "krishi/entities"

type ScheduleService interface {
List(farmID uint, from, to string) ([]entities.ApplicationTask, error)
Patch(taskID uint, status string, qty *float64) error
}
