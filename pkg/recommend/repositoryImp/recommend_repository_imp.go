package repositoryImp

import (
	"krishi/entities"
	"krishi/pkg/recommend/repository"
	"gorm.io/gorm"
)

type recRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendRepository { return &recRepo{db} }

func (r *recRepo) Create(rec *entities.Recommendation) error { return r.db.Create(rec).Error }

func (r *recRepo) LatestByFarm(farmID uint) (*entities.Recommendation, error) {
	var rec entities.Recommendation
	if err := r.db.Where("farm_id = ?", farmID).Order("version DESC").First(&rec).Error; err != nil { return nil, err }
	return &rec, nil
}

func (r *recRepo) ListByFarm(farmID uint) ([]entities.Recommendation, error) {
	var recs []entities.Recommendation
	if err := r.db.Where("farm_id = ?", farmID).Order("version ASC").Find(&recs).Error; err != nil { return nil, err }
	return recs, nil
}
