package repository

import "farmstock/entities"

type StockRepository interface {
	Create(s *entities.StockItem) error
	List(uid, nameFilter string) ([]entities.StockItem, error)
	FindByID(id uint, uid string) (*entities.StockItem, error)
	FindByNameKey(uid, key string) (*entities.StockItem, error)
	Update(s *entities.StockItem) error
	Delete(id uint, uid string) error
}
