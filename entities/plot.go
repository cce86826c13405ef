package entities

import "time"

type Plot struct {
	PlotID         uint       `gorm:"primaryKey" json:"plot_id"`
	UserID         string     `json:"user_id" gorm:"index"`
	Name           string     `json:"name"` // <=20 chars, unique within user
	Size           float64    `json:"size"` // area in acres
	Location       string     `json:"location"`
	SprayTankLevel float64    `json:"spray_tank_level"` // liters per full tank
	SessionStart   time.Time  `json:"session_start"`
	EndDate        *time.Time `json:"end_date,omitempty"` // nil while the session runs

	CreatedAt time.Time
	UpdatedAt time.Time
}
