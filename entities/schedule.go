package entities

import "time"

// LineItem is one fertilizer entry embedded in a schedule. Quantity, Unit and
// Area are kept as entered; FinalQty/FinalUnit are resolved once at save time
// and never re-derived. StockID is captured at authoring when the name matches
// an existing stock item; 0 means older data that still joins by name.
type LineItem struct {
	StockID   uint    `json:"stock_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  string  `json:"quantity"`
	Unit      string  `json:"unit"` // liters|ml|kg|g
	Area      string  `json:"area,omitempty"`
	FinalQty  float64 `json:"final_qty"`
	FinalUnit string  `json:"final_unit"`
}

type Schedule struct {
	ScheduleID   uint       `gorm:"primaryKey" json:"schedule_id"`
	PlotID       uint       `gorm:"index" json:"plot_id"`
	UserID       string     `gorm:"index" json:"user_id"`
	ScheduleDate time.Time  `json:"schedule_date"`
	Spray        bool       `json:"spray"`
	Drip         bool       `json:"drip"`
	SprayItems   []LineItem `gorm:"serializer:json" json:"spray_items"`
	DripItems    []LineItem `gorm:"serializer:json" json:"drip_items"`
	Completed    bool       `json:"completed"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Items returns spray items followed by drip items, the order the reservation
// and projection paths walk them.
func (s *Schedule) Items() []LineItem {
	out := make([]LineItem, 0, len(s.SprayItems)+len(s.DripItems))
	out = append(out, s.SprayItems...)
	out = append(out, s.DripItems...)
	return out
}
