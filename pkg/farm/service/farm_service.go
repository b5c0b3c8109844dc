package service

import "krishi/entities"

type FarmService interface {
	CreateFarm(f *entities.Farm) (*entities.Farm, error)
	GetFarmByID(id uint, uid string) (*entities.Farm, error)
	ListFarms(uid string) ([]entities.Farm, error)
}
