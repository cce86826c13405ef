package entities

import "time"

// StockItem is one inventory record. NameKey is the lower-cased name and is
// the legacy join key for schedules created before stock ids were captured
// on line items.
type StockItem struct {
	StockID   uint    `gorm:"primaryKey" json:"stock_id"`
	UserID    string  `json:"user_id" gorm:"index;uniqueIndex:uidx_stock_user_name"`
	Name      string  `json:"name"`
	NameKey   string  `json:"-" gorm:"uniqueIndex:uidx_stock_user_name"`
	Remaining float64 `json:"remaining"` // >= 0 at every committed state
	Used      float64 `json:"used"`
	Unit      string  `json:"unit"` // display unit, e.g. "kg", "liter"
	CreatedAt time.Time
	UpdatedAt time.Time
}
