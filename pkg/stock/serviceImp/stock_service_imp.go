package serviceImp

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmstock/entities"
	"farmstock/pkg/apperr"
	"farmstock/pkg/events"
	"farmstock/pkg/stock/repository"
	svc "farmstock/pkg/stock/service"
)

// Adjustment values allow at most one decimal place, the precision stock is
// tracked at.
var oneDecimal = regexp.MustCompile(`^\d+(\.\d)?$`)

type service struct {
	repo   repository.StockRepository
	broker *events.Broker
	log    *zap.Logger
}

func New(repo repository.StockRepository, broker *events.Broker, log *zap.Logger) svc.StockService {
	return &service{repo: repo, broker: broker, log: log}
}

func (s *service) Create(uid string, in svc.CreateStockInput) (*entities.StockItem, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Remaining == "" || in.Unit == "" {
		return nil, &apperr.ValidationError{Msg: "name, remaining and unit are required"}
	}
	remaining, err := parseQty(in.Remaining)
	if err != nil {
		return nil, &apperr.ValidationError{Msg: "remaining: " + err.Error()}
	}
	used := 0.0
	if in.Used != "" {
		if used, err = parseQty(in.Used); err != nil {
			return nil, &apperr.ValidationError{Msg: "used: " + err.Error()}
		}
	}

	key := strings.ToLower(name)
	if _, err := s.repo.FindByNameKey(uid, key); err == nil {
		return nil, &apperr.ValidationError{Msg: fmt.Sprintf("item %q already exists", name)}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &entities.StockItem{
		UserID:    uid,
		Name:      name,
		NameKey:   key,
		Remaining: remaining,
		Used:      used,
		Unit:      in.Unit,
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	s.log.Info("stock created", zap.String("uid", uid), zap.String("name", name))
	s.broker.Publish(events.Event{Topic: events.TopicStocks, Kind: "created", UserID: uid, Payload: item})
	return item, nil
}

func (s *service) List(uid, nameFilter string) ([]entities.StockItem, error) {
	return s.repo.List(uid, nameFilter)
}

func (s *service) Use(uid string, id uint, value string) (*entities.StockItem, error) {
	item, err := s.find(uid, id)
	if err != nil {
		return nil, err
	}
	v, err := parseAdjustment(value)
	if err != nil {
		return nil, err
	}
	if v > item.Remaining {
		return nil, &apperr.InsufficientStockError{Item: item.Name, Required: v, Remaining: item.Remaining}
	}

	item.Remaining = round1(item.Remaining - v)
	item.Used = round1(item.Used + v)

	// Fully consumed items drop off the stock list.
	if item.Remaining <= 0 {
		if err := s.repo.Delete(item.StockID, uid); err != nil {
			return nil, err
		}
		s.broker.Publish(events.Event{Topic: events.TopicStocks, Kind: "deleted", UserID: uid, Payload: item})
		return nil, nil
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	s.broker.Publish(events.Event{Topic: events.TopicStocks, Kind: "updated", UserID: uid, Payload: item})
	return item, nil
}

func (s *service) Add(uid string, id uint, value string) (*entities.StockItem, error) {
	item, err := s.find(uid, id)
	if err != nil {
		return nil, err
	}
	v, err := parseAdjustment(value)
	if err != nil {
		return nil, err
	}
	item.Remaining = round1(item.Remaining + v)
	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	s.broker.Publish(events.Event{Topic: events.TopicStocks, Kind: "updated", UserID: uid, Payload: item})
	return item, nil
}

func (s *service) Delete(uid string, id uint) error {
	item, err := s.find(uid, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(id, uid); err != nil {
		return err
	}
	s.broker.Publish(events.Event{Topic: events.TopicStocks, Kind: "deleted", UserID: uid, Payload: item})
	return nil
}

func (s *service) ExportXLSX(uid string) (*excelize.File, error) {
	items, err := s.repo.List(uid, "")
	if err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	const sheet = "Stocks"
	f.SetSheetName("Sheet1", sheet)
	headers := []string{"Name", "Remaining", "Used", "Unit"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for row, it := range items {
		values := []any{it.Name, it.Remaining, it.Used, it.Unit}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}
	return f, nil
}

func (s *service) find(uid string, id uint) (*entities.StockItem, error) {
	item, err := s.repo.FindByID(id, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: "stock item", Name: fmt.Sprint(id)}
	}
	return item, err
}

func parseAdjustment(value string) (float64, error) {
	v, err := parseQty(value)
	if err != nil {
		return 0, &apperr.ValidationError{Msg: err.Error()}
	}
	if v <= 0 {
		return 0, &apperr.ValidationError{Msg: "value must be > 0"}
	}
	return v, nil
}

func parseQty(value string) (float64, error) {
	if !oneDecimal.MatchString(strings.TrimSpace(value)) {
		return 0, errors.New("enter a valid number (1 decimal max)")
	}
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	return d.Round(1).InexactFloat64(), nil
}

func round1(v float64) float64 {
	return decimal.NewFromFloat(v).Round(1).InexactFloat64()
}
