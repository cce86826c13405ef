package service

import "farmstock/entities"

type RawLineItem struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
	Area     string `json:"area,omitempty"`
}

type ScheduleInput struct {
	ScheduleDate string        `json:"schedule_date"` // YYYY-MM-DD
	Spray        bool          `json:"spray"`
	Drip         bool          `json:"drip"`
	SprayItems   []RawLineItem `json:"spray_items"`
	DripItems    []RawLineItem `json:"drip_items"`
}

// Availability is the simulated remaining stock for one item at the point a
// schedule comes due.
type Availability struct {
	Remaining float64 `json:"remaining"`
	Unit      string  `json:"unit"`
}

// ScheduleOverview pairs a schedule with the projected stock available to it,
// keyed by lower-cased item name.
type ScheduleOverview struct {
	Schedule     entities.Schedule       `json:"schedule"`
	Availability map[string]Availability `json:"availability"`
}

// Schedule list filters.
const (
	FilterToday     = "today"
	FilterUpcoming  = "upcoming"
	FilterCompleted = "completed"
	FilterPending   = "pending"
)

type ScheduleService interface {
	Create(uid string, plotID uint, in ScheduleInput) (*entities.Schedule, error)
	ListByPlot(uid string, plotID uint) ([]entities.Schedule, error)
	ListAll(uid, filter string) ([]entities.Schedule, error)
	// Overview replays pending and completed schedules chronologically against
	// current stock; it never mutates inventory.
	Overview(uid, filter string) ([]ScheduleOverview, error)
	Update(uid string, plotID, id uint, in ScheduleInput) (*entities.Schedule, error)
	// ToggleComplete deducts stock when completing and restores it when
	// uncompleting, all-or-nothing.
	ToggleComplete(uid string, plotID, id uint) (*entities.Schedule, error)
	Delete(uid string, plotID, id uint) error
}
