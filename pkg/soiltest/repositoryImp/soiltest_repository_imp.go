package repositoryImp

import (
	"time"
	"krishi/entities"
	"krishi/pkg/soiltest/repository"
	"gorm.io/gorm"
)

type soilTestRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SoilTestRepository { return &soilTestRepo{db} }

func (r *soilTestRepo) Create(t *entities.SoilTest) error { return r.db.Create(t).Error }

func (r *soilTestRepo) Recent(farmID uint, days int) ([]entities.SoilTest, error) {
	var out []entities.SoilTest
	cut := time.Now().AddDate(0, 0, -days)
	if err := r.db.Where("farm_id = ? AND date >= ?", farmID, cut).Order("date ASC").Find(&out).Error; err != nil { return nil, err }
	return out, nil
}

func (r *soilTestRepo) Latest(farmID uint) (*entities.SoilTest, error) {
	var t entities.SoilTest
	if err := r.db.Where("farm_id = ?", farmID).Order("date DESC").First(&t).Error; err != nil { return nil, err }
	return &t, nil
}
