package serviceImp

import (
"krishi/entities"
repo "krishi/pkg/soiltest/repository"
"krishi/pkg/soiltest/service"
)

type soilTestSvc struct{ r repo.SoilTestRepository }

func NewSoilTestService(r repo.SoilTestRepository) service.SoilTestService { return &soilTestSvc{r} }

func (s *soilTestSvc) Create(t *entities.SoilTest) (*entities.SoilTest, error) {
if err := s.r.Create(t); err != nil { return nil, err }
return t, nil
}

func (s *soilTestSvc) Recent(farmID uint, days int) ([]entities.SoilTest, error) {
return s.r.Recent(farmID, days)
}
