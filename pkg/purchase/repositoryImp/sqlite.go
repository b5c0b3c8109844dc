package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"krishi/pkg/purchase"
	"krishi/pkg/purchase/repository"
)

type sqliteRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.Repo { return &sqliteRepo{db: db} }

func (r *sqliteRepo) Create(p *purchase.Purchase) error { return r.db.Create(p).Error }

func (r *sqliteRepo) Update(p *purchase.Purchase) error { return r.db.Save(p).Error }

func (r *sqliteRepo) FindByID(id uint) (*purchase.Purchase, error) {
	var out purchase.Purchase
	if err := r.db.First(&out, id).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *sqliteRepo) ListByFarm(farmID uint, from, to *time.Time) ([]purchase.Purchase, error) {
	q := r.db.Model(&purchase.Purchase{}).Where("farm_id = ?", farmID)
	if from != nil {
		q = q.Where("date >= ?", from.Format("2006-01-02"))
	}
	if to != nil {
		q = q.Where("date <= ?", to.Format("2006-01-02"))
	}
	var list []purchase.Purchase
	return list, q.Order("date asc, id asc").Find(&list).Error
}
