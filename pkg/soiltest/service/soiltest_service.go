package service

import (
"krishi/entities"
)

type SoilTestService interface {
Create(t *entities.SoilTest) (*entities.SoilTest, error)
Recent(farmID uint, days int) ([]entities.SoilTest, error)
}
