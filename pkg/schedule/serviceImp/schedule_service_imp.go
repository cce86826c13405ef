package serviceImp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmstock/entities"
	"farmstock/pkg/apperr"
	"farmstock/pkg/dosage"
	"farmstock/pkg/events"
	plotRepo "farmstock/pkg/plot/repository"
	"farmstock/pkg/schedule/repository"
	svc "farmstock/pkg/schedule/service"
	stockRepo "farmstock/pkg/stock/repository"
)

// defaultTankLevel is assumed for plots saved without a tank capacity.
const defaultTankLevel = 200

type service struct {
	db     *gorm.DB // reservation transactions
	repo   repository.ScheduleRepository
	plots  plotRepo.PlotRepository
	stocks stockRepo.StockRepository
	broker *events.Broker
	loc    *time.Location // zone for the "today" filter window
	log    *zap.Logger
}

func New(db *gorm.DB, repo repository.ScheduleRepository, plots plotRepo.PlotRepository,
	stocks stockRepo.StockRepository, broker *events.Broker, loc *time.Location,
	log *zap.Logger) svc.ScheduleService {
	if loc == nil {
		loc = time.Local
	}
	return &service{db: db, repo: repo, plots: plots, stocks: stocks, broker: broker, loc: loc, log: log}
}

func (s *service) Create(uid string, plotID uint, in svc.ScheduleInput) (*entities.Schedule, error) {
	plot, err := s.findPlot(uid, plotID)
	if err != nil {
		return nil, err
	}
	sch, err := s.resolve(uid, plot, in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(sch); err != nil {
		return nil, err
	}
	s.log.Info("schedule created",
		zap.String("uid", uid), zap.Uint("plot", plotID), zap.Time("date", sch.ScheduleDate))
	s.broker.Publish(events.Event{Topic: events.TopicSchedules, Kind: "created", UserID: uid, Payload: sch})
	return sch, nil
}

func (s *service) ListByPlot(uid string, plotID uint) ([]entities.Schedule, error) {
	return s.repo.ListByPlot(uid, plotID)
}

func (s *service) ListAll(uid, filter string) ([]entities.Schedule, error) {
	all, err := s.repo.ListAll(uid)
	if err != nil {
		return nil, err
	}
	return applyFilter(filter, all, time.Now().In(s.loc)), nil
}

func (s *service) Overview(uid, filter string) ([]svc.ScheduleOverview, error) {
	all, err := s.repo.ListAll(uid)
	if err != nil {
		return nil, err
	}
	stocks, err := s.stocks.List(uid, "")
	if err != nil {
		return nil, err
	}
	// Project over everything so a filtered view still sees the depletion
	// caused by schedules outside the filter.
	snapshots := Project(stocks, all)
	shown := applyFilter(filter, all, time.Now().In(s.loc))
	out := make([]svc.ScheduleOverview, len(shown))
	for i, sch := range shown {
		out[i] = svc.ScheduleOverview{Schedule: sch, Availability: snapshots[sch.ScheduleID]}
	}
	return out, nil
}

func (s *service) Update(uid string, plotID, id uint, in svc.ScheduleInput) (*entities.Schedule, error) {
	cur, err := s.find(uid, plotID, id)
	if err != nil {
		return nil, err
	}
	// A completed schedule has already moved stock; editing it would make the
	// later restore return the new quantities instead of what was deducted.
	if cur.Completed {
		return nil, &apperr.ConflictError{Msg: "uncomplete the schedule before editing it"}
	}
	plot, err := s.findPlot(uid, plotID)
	if err != nil {
		return nil, err
	}
	next, err := s.resolve(uid, plot, in)
	if err != nil {
		return nil, err
	}
	cur.ScheduleDate = next.ScheduleDate
	cur.Spray = next.Spray
	cur.Drip = next.Drip
	cur.SprayItems = next.SprayItems
	cur.DripItems = next.DripItems
	if err := s.repo.Update(cur); err != nil {
		return nil, err
	}
	s.broker.Publish(events.Event{Topic: events.TopicSchedules, Kind: "updated", UserID: uid, Payload: cur})
	return cur, nil
}

// ToggleComplete flips a schedule between pending and completed inside one
// transaction. Completing validates every line item against stock before any
// mutation; a single shortfall or unknown item aborts the whole toggle.
// Uncompleting restores the same quantities. The flag flip itself is a
// compare-and-swap on the prior value, so a racing double toggle rolls back
// instead of double-applying.
func (s *service) ToggleComplete(uid string, plotID, scheduleID uint) (*entities.Schedule, error) {
	var out *entities.Schedule
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var sch entities.Schedule
		err := tx.Where("schedule_id = ? AND plot_id = ? AND user_id = ?", scheduleID, plotID, uid).
			First(&sch).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperr.NotFoundError{Entity: "schedule", Name: fmt.Sprint(scheduleID)}
		} else if err != nil {
			return err
		}
		completing := !sch.Completed

		var stocks []entities.StockItem
		if err := tx.Where("user_id = ?", uid).Find(&stocks).Error; err != nil {
			return err
		}
		byID := make(map[uint]*entities.StockItem, len(stocks))
		byKey := make(map[string]*entities.StockItem, len(stocks))
		for i := range stocks {
			byID[stocks[i].StockID] = &stocks[i]
			byKey[stocks[i].NameKey] = &stocks[i]
		}

		// Pre-validate every item before touching anything. Line items that
		// resolve to the same stock (say, spray and drip both carrying urea)
		// are summed first, so the joint requirement is what gets checked.
		type reservation struct {
			stock *entities.StockItem
			qty   float64
		}
		need := make(map[uint]*reservation)
		var order []uint
		for _, li := range sch.Items() {
			stock := byID[li.StockID]
			if stock == nil {
				stock = byKey[strings.ToLower(li.Name)]
			}
			if stock == nil {
				return &apperr.NotFoundError{Entity: "stock item", Name: li.Name}
			}
			r := need[stock.StockID]
			if r == nil {
				r = &reservation{stock: stock}
				need[stock.StockID] = r
				order = append(order, stock.StockID)
			}
			r.qty += requiredQty(li)
			if completing && stock.Remaining < r.qty {
				return &apperr.InsufficientStockError{
					Item: stock.Name, Required: r.qty, Remaining: stock.Remaining,
				}
			}
		}

		plan := make([]reservation, 0, len(order))
		for _, id := range order {
			plan = append(plan, *need[id])
		}
		for _, r := range plan {
			if completing {
				r.stock.Remaining = round1(r.stock.Remaining - r.qty)
				r.stock.Used = round1(r.stock.Used + r.qty)
			} else {
				r.stock.Remaining = round1(r.stock.Remaining + r.qty)
				r.stock.Used = round1(r.stock.Used - r.qty)
			}
			if err := tx.Save(r.stock).Error; err != nil {
				return err
			}
		}

		res := tx.Model(&entities.Schedule{}).
			Where("schedule_id = ? AND completed = ?", sch.ScheduleID, sch.Completed).
			Update("completed", completing)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return &apperr.ConflictError{Msg: "schedule completion changed concurrently"}
		}
		sch.Completed = completing
		out = &sch
		return nil
	})
	if err != nil {
		return nil, err
	}

	kind := "uncompleted"
	if out.Completed {
		kind = "completed"
	}
	s.log.Info("schedule toggled",
		zap.String("uid", uid), zap.Uint("schedule", scheduleID), zap.Bool("completed", out.Completed))
	s.broker.Publish(events.Event{Topic: events.TopicSchedules, Kind: kind, UserID: uid, Payload: out})
	return out, nil
}

func (s *service) Delete(uid string, plotID, id uint) error {
	sch, err := s.find(uid, plotID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id, plotID, uid); err != nil {
		return err
	}
	s.broker.Publish(events.Event{Topic: events.TopicSchedules, Kind: "deleted", UserID: uid, Payload: sch})
	return nil
}

// resolve validates the schedule shape and computes FinalQty/FinalUnit for
// every line item. Stock ids are captured here so later completion toggles
// survive item renames.
func (s *service) resolve(uid string, plot *entities.Plot, in svc.ScheduleInput) (*entities.Schedule, error) {
	if !in.Spray && !in.Drip {
		return nil, &apperr.ValidationError{Msg: "select at least one option: spray or drip"}
	}
	if in.Spray && len(in.SprayItems) == 0 {
		return nil, &apperr.ValidationError{Msg: "add at least one spray item"}
	}
	if in.Drip && len(in.DripItems) == 0 {
		return nil, &apperr.ValidationError{Msg: "add at least one drip item"}
	}
	date, err := time.Parse("2006-01-02", in.ScheduleDate)
	if err != nil {
		return nil, &apperr.ValidationError{Msg: "schedule_date must be YYYY-MM-DD"}
	}

	tank := plot.SprayTankLevel
	if tank <= 0 {
		tank = defaultTankLevel
	}

	sch := &entities.Schedule{
		PlotID:       plot.PlotID,
		UserID:       uid,
		ScheduleDate: date,
		Spray:        in.Spray,
		Drip:         in.Drip,
	}
	if in.Spray {
		for _, raw := range in.SprayItems {
			resolved, err := dosage.ResolveSprayItem(rawItem(raw), tank)
			if err != nil {
				return nil, err
			}
			sch.SprayItems = append(sch.SprayItems, s.lineItem(uid, raw, resolved))
		}
	}
	if in.Drip {
		for _, raw := range in.DripItems {
			resolved, err := dosage.ResolveDripItem(rawItem(raw), plot.Size)
			if err != nil {
				return nil, err
			}
			sch.DripItems = append(sch.DripItems, s.lineItem(uid, raw, resolved))
		}
	}
	return sch, nil
}

func (s *service) lineItem(uid string, raw svc.RawLineItem, resolved dosage.Resolved) entities.LineItem {
	li := entities.LineItem{
		Name:      strings.TrimSpace(raw.Name),
		Quantity:  raw.Quantity,
		Unit:      raw.Unit,
		Area:      raw.Area,
		FinalQty:  resolved.FinalQty,
		FinalUnit: resolved.FinalUnit,
	}
	if stock, err := s.stocks.FindByNameKey(uid, strings.ToLower(li.Name)); err == nil {
		li.StockID = stock.StockID
	}
	return li
}

func (s *service) find(uid string, plotID, id uint) (*entities.Schedule, error) {
	sch, err := s.repo.FindByID(id, plotID, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: "schedule", Name: fmt.Sprint(id)}
	}
	return sch, err
}

func (s *service) findPlot(uid string, plotID uint) (*entities.Plot, error) {
	plot, err := s.plots.FindByID(plotID, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: "plot", Name: fmt.Sprint(plotID)}
	}
	return plot, err
}

func applyFilter(filter string, all []entities.Schedule, now time.Time) []entities.Schedule {
	if filter == "" {
		return all
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)
	var out []entities.Schedule
	for _, sch := range all {
		switch filter {
		case svc.FilterToday:
			if !sch.ScheduleDate.Before(start) && sch.ScheduleDate.Before(end) {
				out = append(out, sch)
			}
		case svc.FilterUpcoming:
			if !sch.ScheduleDate.Before(end) {
				out = append(out, sch)
			}
		case svc.FilterCompleted:
			if sch.Completed {
				out = append(out, sch)
			}
		case svc.FilterPending:
			if !sch.Completed {
				out = append(out, sch)
			}
		}
	}
	return out
}

func rawItem(in svc.RawLineItem) dosage.RawItem {
	return dosage.RawItem{Name: in.Name, Quantity: in.Quantity, Unit: in.Unit, Area: in.Area}
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
