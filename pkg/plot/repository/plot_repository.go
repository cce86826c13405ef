package repository

import "farmstock/entities"

type PlotRepository interface {
	Create(p *entities.Plot) error
	List(uid string) ([]entities.Plot, error)
	FindByID(id uint, uid string) (*entities.Plot, error)
	FindByName(uid, name string) (*entities.Plot, error)
	Update(p *entities.Plot) error
	Delete(id uint, uid string) error
}
