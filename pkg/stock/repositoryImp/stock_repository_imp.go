package repositoryImp

import (
	"strings"

	"gorm.io/gorm"

	"farmstock/entities"
	"farmstock/pkg/stock/repository"
)

type stockRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StockRepository { return &stockRepo{db} }

func (r *stockRepo) Create(s *entities.StockItem) error { return r.db.Create(s).Error }

func (r *stockRepo) List(uid, nameFilter string) ([]entities.StockItem, error) {
	var out []entities.StockItem
	q := r.db.Where("user_id = ?", uid)
	if nameFilter != "" {
		q = q.Where("name_key LIKE ?", "%"+strings.ToLower(nameFilter)+"%")
	}
	if err := q.Order("created_at DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *stockRepo) FindByID(id uint, uid string) (*entities.StockItem, error) {
	var s entities.StockItem
	if err := r.db.Where("stock_id = ? AND user_id = ?", id, uid).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *stockRepo) FindByNameKey(uid, key string) (*entities.StockItem, error) {
	var s entities.StockItem
	if err := r.db.Where("user_id = ? AND name_key = ?", uid, key).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *stockRepo) Update(s *entities.StockItem) error { return r.db.Save(s).Error }

func (r *stockRepo) Delete(id uint, uid string) error {
	return r.db.Where("stock_id = ? AND user_id = ?", id, uid).Delete(&entities.StockItem{}).Error
}
