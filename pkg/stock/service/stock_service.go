package service

import (
	"github.com/xuri/excelize/v2"

	"farmstock/entities"
)

type CreateStockInput struct {
	Name      string `json:"name"`
	Remaining string `json:"remaining"`
	Used      string `json:"used"`
	Unit      string `json:"unit"`
}

type StockService interface {
	Create(uid string, in CreateStockInput) (*entities.StockItem, error)
	List(uid, nameFilter string) ([]entities.StockItem, error)
	// Use deducts from remaining; the item is deleted when it reaches zero,
	// in which case the returned item is nil.
	Use(uid string, id uint, value string) (*entities.StockItem, error)
	Add(uid string, id uint, value string) (*entities.StockItem, error)
	Delete(uid string, id uint) error
	ExportXLSX(uid string) (*excelize.File, error)
}
