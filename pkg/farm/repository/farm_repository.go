package repository

import "krishi/entities"

type FarmRepository interface {
	Create(f *entities.Farm) error
	FindByID(id uint, uid string) (*entities.Farm, error)
	ListByUser(uid string) ([]entities.Farm, error)
}
