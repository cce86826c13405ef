package serviceImp

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmstock/entities"
	"farmstock/pkg/apperr"
	"farmstock/pkg/plot/repository"
	svc "farmstock/pkg/plot/service"
)

var numeric = regexp.MustCompile(`^\d+(\.\d+)?$`)

type service struct {
	repo repository.PlotRepository
	log  *zap.Logger
}

func New(repo repository.PlotRepository, log *zap.Logger) svc.PlotService {
	return &service{repo: repo, log: log}
}

func (s *service) Create(uid string, in svc.PlotInput) (*entities.Plot, error) {
	p, err := s.validate(in)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByName(uid, p.Name); err == nil {
		return nil, &apperr.ValidationError{Msg: fmt.Sprintf("a plot named %q already exists", p.Name)}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p.UserID = uid
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	s.log.Info("plot created", zap.String("uid", uid), zap.String("name", p.Name))
	return p, nil
}

func (s *service) List(uid string) ([]entities.Plot, error) { return s.repo.List(uid) }

func (s *service) Get(uid string, id uint) (*entities.Plot, error) { return s.find(uid, id) }

func (s *service) Update(uid string, id uint, in svc.PlotInput) (*entities.Plot, error) {
	cur, err := s.find(uid, id)
	if err != nil {
		return nil, err
	}
	next, err := s.validate(in)
	if err != nil {
		return nil, err
	}
	if next.Name != cur.Name {
		if _, err := s.repo.FindByName(uid, next.Name); err == nil {
			return nil, &apperr.ValidationError{Msg: fmt.Sprintf("a plot named %q already exists", next.Name)}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}
	cur.Name = next.Name
	cur.Size = next.Size
	cur.Location = next.Location
	cur.SprayTankLevel = next.SprayTankLevel
	cur.SessionStart = next.SessionStart
	return cur, s.repo.Update(cur)
}

func (s *service) End(uid string, id uint) (*entities.Plot, error) {
	p, err := s.find(uid, id)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p.EndDate = &now
	return p, s.repo.Update(p)
}

func (s *service) UndoEnd(uid string, id uint) (*entities.Plot, error) {
	p, err := s.find(uid, id)
	if err != nil {
		return nil, err
	}
	p.EndDate = nil
	return p, s.repo.Update(p)
}

func (s *service) Delete(uid string, id uint) error {
	if _, err := s.find(uid, id); err != nil {
		return err
	}
	return s.repo.Delete(id, uid)
}

func (s *service) find(uid string, id uint) (*entities.Plot, error) {
	p, err := s.repo.FindByID(id, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFoundError{Entity: "plot", Name: fmt.Sprint(id)}
	}
	return p, err
}

func (s *service) validate(in svc.PlotInput) (*entities.Plot, error) {
	name := strings.TrimSpace(in.Name)
	switch {
	case name == "":
		return nil, &apperr.ValidationError{Msg: "plot name is required"}
	case len(name) > 20:
		return nil, &apperr.ValidationError{Msg: "plot name must be 20 characters or less"}
	case strings.TrimSpace(in.Location) == "":
		return nil, &apperr.ValidationError{Msg: "location is required"}
	case !numeric.MatchString(in.Size):
		return nil, &apperr.ValidationError{Msg: "plot size must be a number"}
	case !numeric.MatchString(in.SprayTankLevel):
		return nil, &apperr.ValidationError{Msg: "spray tank level must be a number"}
	}
	size, _ := strconv.ParseFloat(in.Size, 64)
	tank, _ := strconv.ParseFloat(in.SprayTankLevel, 64)

	start := time.Now()
	if in.SessionStart != "" {
		t, err := time.Parse("2006-01-02", in.SessionStart)
		if err != nil {
			return nil, &apperr.ValidationError{Msg: "session_start must be YYYY-MM-DD"}
		}
		start = t
	}
	return &entities.Plot{
		Name:           name,
		Size:           size,
		Location:       strings.TrimSpace(in.Location),
		SprayTankLevel: tank,
		SessionStart:   start,
	}, nil
}
