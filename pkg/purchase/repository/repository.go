package repository

import (
	"time"

	"krishi/pkg/purchase"
)

type Repo interface {
	Create(p *purchase.Purchase) error
	Update(p *purchase.Purchase) error
	FindByID(id uint) (*purchase.Purchase, error)
	ListByFarm(farmID uint, from, to *time.Time) ([]purchase.Purchase, error)
}
