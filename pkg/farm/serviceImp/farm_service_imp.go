package serviceImp

import (
	"krishi/entities"
	repo "krishi/pkg/farm/repository"
	"krishi/pkg/farm/service"
)

type farmSvc struct{ r repo.FarmRepository }

func NewFarmService(r repo.FarmRepository) service.FarmService { return &farmSvc{r} }

func (s *farmSvc) CreateFarm(f *entities.Farm) (*entities.Farm, error) {
	if err := s.r.Create(f); err != nil { return nil, err }
	return f, nil
}

func (s *farmSvc) GetFarmByID(id uint, uid string) (*entities.Farm, error) {
	return s.r.FindByID(id, uid)
}

func (s *farmSvc) ListFarms(uid string) ([]entities.Farm, error) {
	return s.r.ListByUser(uid)
}
