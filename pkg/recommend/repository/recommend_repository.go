package repository

import "krishi/entities"

type RecommendRepository interface {
	Create(r *entities.Recommendation) error
	LatestByFarm(farmID uint) (*entities.Recommendation, error)
	ListByFarm(farmID uint) ([]entities.Recommendation, error)
}
