package repository

import "farmstock/entities"

type ScheduleRepository interface {
	Create(s *entities.Schedule) error
	// ListByPlot and ListAll return schedules in ascending date order.
	ListByPlot(uid string, plotID uint) ([]entities.Schedule, error)
	ListAll(uid string) ([]entities.Schedule, error)
	FindByID(id, plotID uint, uid string) (*entities.Schedule, error)
	Update(s *entities.Schedule) error
	Delete(id, plotID uint, uid string) error
}
