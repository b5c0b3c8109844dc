package repository

import "krishi/entities"

type SoilTestRepository interface {
	Create(t *entities.SoilTest) error
	Recent(farmID uint, days int) ([]entities.SoilTest, error)
	Latest(farmID uint) (*entities.SoilTest, error)
}
