package repositoryImp

import (
	"krishi/entities"
	"krishi/pkg/farm/repository"
	"gorm.io/gorm"
)

type farmRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.FarmRepository { return &farmRepo{db} }

func (r *farmRepo) Create(f *entities.Farm) error { return r.db.Create(f).Error }

func (r *farmRepo) FindByID(id uint, uid string) (*entities.Farm, error) {
	var f entities.Farm
	if err := r.db.Where("farm_id = ? AND user_id = ?", id, uid).First(&f).Error; err != nil { return nil, err }
	return &f, nil
}

func (r *farmRepo) ListByUser(uid string) ([]entities.Farm, error) {
	var fs []entities.Farm
	if err := r.db.Where("user_id = ?", uid).Order("farm_id ASC").Find(&fs).Error; err != nil { return nil, err }
	return fs, nil
}
