package repositoryImp

import (
	"gorm.io/gorm"

	"farmstock/entities"
	"farmstock/pkg/schedule/repository"
)

type schedRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ScheduleRepository { return &schedRepo{db} }

func (r *schedRepo) Create(s *entities.Schedule) error { return r.db.Create(s).Error }

func (r *schedRepo) ListByPlot(uid string, plotID uint) ([]entities.Schedule, error) {
	var out []entities.Schedule
	err := r.db.Where("user_id = ? AND plot_id = ?", uid, plotID).
		Order("schedule_date ASC, schedule_id ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) ListAll(uid string) ([]entities.Schedule, error) {
	var out []entities.Schedule
	err := r.db.Where("user_id = ?", uid).
		Order("schedule_date ASC, schedule_id ASC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *schedRepo) FindByID(id, plotID uint, uid string) (*entities.Schedule, error) {
	var s entities.Schedule
	err := r.db.Where("schedule_id = ? AND plot_id = ? AND user_id = ?", id, plotID, uid).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *schedRepo) Update(s *entities.Schedule) error { return r.db.Save(s).Error }

func (r *schedRepo) Delete(id, plotID uint, uid string) error {
	return r.db.Where("schedule_id = ? AND plot_id = ? AND user_id = ?", id, plotID, uid).
		Delete(&entities.Schedule{}).Error
}
