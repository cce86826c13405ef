package serviceImp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmstock/entities"
	"farmstock/pkg/apperr"
	svc "farmstock/pkg/schedule/service"
)

func seedPlot(t *testing.T, db *gorm.DB, name string, size, tank float64) *entities.Plot {
	t.Helper()
	p := &entities.Plot{
		UserID: "u1", Name: name, Size: size, Location: "east",
		SprayTankLevel: tank, SessionStart: day(1),
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func TestCreateResolvesSprayItems(t *testing.T) {
	s, db := newTestService(t)
	plot := seedPlot(t, db, "North", 10, 200)

	sch, err := s.Create("u1", plot.PlotID, svc.ScheduleInput{
		ScheduleDate: "2026-03-01",
		Spray:        true,
		SprayItems:   []svc.RawLineItem{{Name: "NPK", Quantity: "10", Unit: "liters", Area: "200"}},
	})
	require.NoError(t, err)
	require.Len(t, sch.SprayItems, 1)
	assert.Equal(t, 10.00, sch.SprayItems[0].FinalQty)
	assert.Equal(t, "liters", sch.SprayItems[0].FinalUnit)
	assert.False(t, sch.Completed)
}

func TestCreateResolvesDripItemsAgainstPlotSize(t *testing.T) {
	s, db := newTestService(t)
	plot := seedPlot(t, db, "North", 10, 200)

	sch, err := s.Create("u1", plot.PlotID, svc.ScheduleInput{
		ScheduleDate: "2026-03-01",
		Drip:         true,
		DripItems:    []svc.RawLineItem{{Name: "DAP", Quantity: "50", Unit: "kg", Area: "5"}},
	})
	require.NoError(t, err)
	require.Len(t, sch.DripItems, 1)
	assert.Equal(t, 100.00, sch.DripItems[0].FinalQty)
	assert.Equal(t, "kg", sch.DripItems[0].FinalUnit)
}

func TestCreateCapturesStockID(t *testing.T) {
	s, db := newTestService(t)
	plot := seedPlot(t, db, "North", 10, 200)
	urea := seedStock(t, db, "Urea", 10, 0, "kg")

	sch, err := s.Create("u1", plot.PlotID, svc.ScheduleInput{
		ScheduleDate: "2026-03-01",
		Spray:        true,
		SprayItems:   []svc.RawLineItem{{Name: "urea", Quantity: "4", Unit: "kg", Area: "200"}},
	})
	require.NoError(t, err)
	assert.Equal(t, urea.StockID, sch.SprayItems[0].StockID)
}

func TestCreateValidation(t *testing.T) {
	s, db := newTestService(t)
	plot := seedPlot(t, db, "North", 10, 200)

	tests := []struct {
		name string
		in   svc.ScheduleInput
	}{
		{"no_method", svc.ScheduleInput{ScheduleDate: "2026-03-01"}},
		{"spray_without_items", svc.ScheduleInput{ScheduleDate: "2026-03-01", Spray: true}},
		{"drip_without_items", svc.ScheduleInput{ScheduleDate: "2026-03-01", Drip: true}},
		{"bad_date", svc.ScheduleInput{ScheduleDate: "soon", Spray: true,
			SprayItems: []svc.RawLineItem{{Name: "x", Quantity: "1", Unit: "kg"}}}},
		{"drip_item_without_area", svc.ScheduleInput{ScheduleDate: "2026-03-01", Drip: true,
			DripItems: []svc.RawLineItem{{Name: "x", Quantity: "1", Unit: "kg"}}}},
		{"unknown_unit", svc.ScheduleInput{ScheduleDate: "2026-03-01", Spray: true,
			SprayItems: []svc.RawLineItem{{Name: "x", Quantity: "1", Unit: "gallon", Area: "10"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create("u1", plot.PlotID, tt.in)
			require.Error(t, err)
			assert.Equal(t, 400, apperr.HTTPStatus(err))
		})
	}
}

func TestCreateUnknownPlot(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.Create("u1", 99, svc.ScheduleInput{
		ScheduleDate: "2026-03-01", Spray: true,
		SprayItems: []svc.RawLineItem{{Name: "x", Quantity: "1", Unit: "kg"}},
	})
	var nerr *apperr.NotFoundError
	require.ErrorAs(t, err, &nerr)
}

func TestUpdateReResolvesItems(t *testing.T) {
	s, db := newTestService(t)
	plot := seedPlot(t, db, "North", 10, 200)
	sch, err := s.Create("u1", plot.PlotID, svc.ScheduleInput{
		ScheduleDate: "2026-03-01", Spray: true,
		SprayItems: []svc.RawLineItem{{Name: "NPK", Quantity: "10", Unit: "liters", Area: "200"}},
	})
	require.NoError(t, err)

	updated, err := s.Update("u1", plot.PlotID, sch.ScheduleID, svc.ScheduleInput{
		ScheduleDate: "2026-03-02", Spray: true,
		SprayItems: []svc.RawLineItem{{Name: "NPK", Quantity: "20", Unit: "liters", Area: "200"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 20.00, updated.SprayItems[0].FinalQty)
	assert.Equal(t, sch.ScheduleID, updated.ScheduleID)
}

func TestUpdateRejectsCompletedSchedule(t *testing.T) {
	s, db := newTestService(t)
	plot := seedPlot(t, db, "North", 10, 200)
	seedStock(t, db, "Urea", 10, 0, "kg")
	sch, err := s.Create("u1", plot.PlotID, svc.ScheduleInput{
		ScheduleDate: "2026-03-01", Spray: true,
		SprayItems: []svc.RawLineItem{{Name: "Urea", Quantity: "4", Unit: "kg", Area: "200"}},
	})
	require.NoError(t, err)
	_, err = s.ToggleComplete("u1", plot.PlotID, sch.ScheduleID)
	require.NoError(t, err)

	// Editing after completion would desync the restore quantities.
	_, err = s.Update("u1", plot.PlotID, sch.ScheduleID, svc.ScheduleInput{
		ScheduleDate: "2026-03-02", Spray: true,
		SprayItems: []svc.RawLineItem{{Name: "Urea", Quantity: "8", Unit: "kg", Area: "200"}},
	})
	var cerr *apperr.ConflictError
	require.ErrorAs(t, err, &cerr)

	// Uncomplete, then the edit goes through.
	_, err = s.ToggleComplete("u1", plot.PlotID, sch.ScheduleID)
	require.NoError(t, err)
	updated, err := s.Update("u1", plot.PlotID, sch.ScheduleID, svc.ScheduleInput{
		ScheduleDate: "2026-03-02", Spray: true,
		SprayItems: []svc.RawLineItem{{Name: "Urea", Quantity: "8", Unit: "kg", Area: "200"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 8.00, updated.SprayItems[0].FinalQty)
}

func TestApplyFilter(t *testing.T) {
	now := time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC)
	all := []entities.Schedule{
		{ScheduleID: 1, ScheduleDate: day(5), Completed: true},
		{ScheduleID: 2, ScheduleDate: day(10)},
		{ScheduleID: 3, ScheduleDate: day(20)},
	}

	ids := func(in []entities.Schedule) []uint {
		var out []uint
		for _, s := range in {
			out = append(out, s.ScheduleID)
		}
		return out
	}

	assert.Equal(t, []uint{1, 2, 3}, ids(applyFilter("", all, now)))
	assert.Equal(t, []uint{2}, ids(applyFilter(svc.FilterToday, all, now)))
	assert.Equal(t, []uint{3}, ids(applyFilter(svc.FilterUpcoming, all, now)))
	assert.Equal(t, []uint{1}, ids(applyFilter(svc.FilterCompleted, all, now)))
	assert.Equal(t, []uint{2, 3}, ids(applyFilter(svc.FilterPending, all, now)))
}

func TestApplyFilterWindowFollowsClockZone(t *testing.T) {
	// 20:00 UTC on March 9 is already March 10 east of UTC+4.
	instant := time.Date(2026, time.March, 9, 20, 0, 0, 0, time.UTC)
	east := time.FixedZone("UTC+6", 6*60*60)
	all := []entities.Schedule{{ScheduleID: 1, ScheduleDate: day(10)}}

	assert.Empty(t, applyFilter(svc.FilterToday, all, instant))
	assert.Len(t, applyFilter(svc.FilterToday, all, instant.In(east)), 1)
}

func TestOverviewPairsSchedulesWithAvailability(t *testing.T) {
	s, db := newTestService(t)
	seedStock(t, db, "Urea", 10, 0, "kg")
	seedSchedule(t, db, 1, entities.LineItem{Name: "Urea", FinalQty: 4})
	sch2 := &entities.Schedule{
		UserID: "u1", PlotID: 1, ScheduleDate: day(2),
		Spray: true, SprayItems: []entities.LineItem{{Name: "Urea", FinalQty: 4}},
	}
	require.NoError(t, db.Create(sch2).Error)

	out, err := s.Overview("u1", "")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 10.0, out[0].Availability["urea"].Remaining)
	assert.Equal(t, 6.0, out[1].Availability["urea"].Remaining)
}

func TestDeleteSchedule(t *testing.T) {
	s, db := newTestService(t)
	sch := seedSchedule(t, db, 1, entities.LineItem{Name: "Urea", FinalQty: 4})

	require.NoError(t, s.Delete("u1", 1, sch.ScheduleID))

	var count int64
	db.Model(&entities.Schedule{}).Count(&count)
	assert.Equal(t, int64(0), count)

	err := s.Delete("u1", 1, sch.ScheduleID)
	var nerr *apperr.NotFoundError
	require.ErrorAs(t, err, &nerr)
}
