package repositoryImp

import (
	"gorm.io/gorm"

	"farmstock/entities"
	"farmstock/pkg/plot/repository"
)

type plotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.PlotRepository { return &plotRepo{db} }

func (r *plotRepo) Create(p *entities.Plot) error { return r.db.Create(p).Error }

func (r *plotRepo) List(uid string) ([]entities.Plot, error) {
	var out []entities.Plot
	if err := r.db.Where("user_id = ?", uid).Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *plotRepo) FindByID(id uint, uid string) (*entities.Plot, error) {
	var p entities.Plot
	if err := r.db.Where("plot_id = ? AND user_id = ?", id, uid).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plotRepo) FindByName(uid, name string) (*entities.Plot, error) {
	var p entities.Plot
	if err := r.db.Where("user_id = ? AND name = ?", uid, name).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *plotRepo) Update(p *entities.Plot) error { return r.db.Save(p).Error }

func (r *plotRepo) Delete(id uint, uid string) error {
	return r.db.Where("plot_id = ? AND user_id = ?", id, uid).Delete(&entities.Plot{}).Error
}
