package serviceImp

import (
"krishi/pkg/schedule/service"
repo "krishi/pkg/schedule/repository"
"krishi/entities"
)

type schedSvc struct{ r repo.ScheduleRepository }

func NewScheduleService(r repo.ScheduleRepository) service.ScheduleService { return &schedSvc{r} }

func (s *schedSvc) List(farmID uint, from, to string) ([]entities.ApplicationTask, error) {
return s.r.List(farmID, from, to)
}

func (s *schedSvc) Patch(taskID uint, status string, qty *float64) error {
return s.r.PatchStatus(taskID, status, qty)
}
