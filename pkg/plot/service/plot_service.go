package service

import "farmstock/entities"

type PlotInput struct {
	Name           string `json:"name"`
	Size           string `json:"size"`
	Location       string `json:"location"`
	SprayTankLevel string `json:"spray_tank_level"`
	SessionStart   string `json:"session_start"` // YYYY-MM-DD, defaults to today
}

type PlotService interface {
	Create(uid string, in PlotInput) (*entities.Plot, error)
	List(uid string) ([]entities.Plot, error)
	Get(uid string, id uint) (*entities.Plot, error)
	Update(uid string, id uint, in PlotInput) (*entities.Plot, error)
	// End stamps the session end date; UndoEnd clears it again.
	End(uid string, id uint) (*entities.Plot, error)
	UndoEnd(uid string, id uint) (*entities.Plot, error)
	Delete(uid string, id uint) error
}
