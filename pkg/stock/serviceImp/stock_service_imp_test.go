package serviceImp

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"farmstock/database"
	"farmstock/entities"
	"farmstock/pkg/apperr"
	"farmstock/pkg/events"
	"farmstock/pkg/stock/repositoryImp"
	svc "farmstock/pkg/stock/service"
)

func newTestService(t *testing.T) (svc.StockService, *gorm.DB) {
	t.Helper()
	db := database.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	return New(repositoryImp.New(db), events.NewBroker(), zap.NewNop()), db
}

func create(t *testing.T, s svc.StockService, name, remaining, unit string) *entities.StockItem {
	t.Helper()
	item, err := s.Create("u1", svc.CreateStockInput{Name: name, Remaining: remaining, Unit: unit})
	require.NoError(t, err)
	return item
}

func TestCreateStock(t *testing.T) {
	s, _ := newTestService(t)
	item := create(t, s, "Urea", "10", "kg")
	assert.Equal(t, "Urea", item.Name)
	assert.Equal(t, "urea", item.NameKey)
	assert.Equal(t, 10.0, item.Remaining)
	assert.Equal(t, 0.0, item.Used)
}

func TestCreateStockRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	s, _ := newTestService(t)
	create(t, s, "Urea", "10", "kg")
	_, err := s.Create("u1", svc.CreateStockInput{Name: "UREA", Remaining: "5", Unit: "kg"})
	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestCreateStockAllowsSameNameForOtherUser(t *testing.T) {
	s, _ := newTestService(t)
	create(t, s, "Urea", "10", "kg")
	_, err := s.Create("u2", svc.CreateStockInput{Name: "Urea", Remaining: "5", Unit: "kg"})
	require.NoError(t, err)
}

func TestCreateStockValidation(t *testing.T) {
	s, _ := newTestService(t)
	tests := []struct {
		name string
		in   svc.CreateStockInput
	}{
		{"missing_name", svc.CreateStockInput{Remaining: "10", Unit: "kg"}},
		{"missing_remaining", svc.CreateStockInput{Name: "Urea", Unit: "kg"}},
		{"missing_unit", svc.CreateStockInput{Name: "Urea", Remaining: "10"}},
		{"two_decimals", svc.CreateStockInput{Name: "Urea", Remaining: "10.55", Unit: "kg"}},
		{"negative", svc.CreateStockInput{Name: "Urea", Remaining: "-1", Unit: "kg"}},
		{"non_numeric", svc.CreateStockInput{Name: "Urea", Remaining: "lots", Unit: "kg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create("u1", tt.in)
			var verr *apperr.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestUseDeducts(t *testing.T) {
	s, _ := newTestService(t)
	item := create(t, s, "Urea", "10", "kg")

	got, err := s.Use("u1", item.StockID, "2.5")
	require.NoError(t, err)
	assert.Equal(t, 7.5, got.Remaining)
	assert.Equal(t, 2.5, got.Used)
}

func TestUseRejectsMoreThanRemaining(t *testing.T) {
	s, _ := newTestService(t)
	item := create(t, s, "Urea", "10", "kg")

	_, err := s.Use("u1", item.StockID, "10.5")
	var serr *apperr.InsufficientStockError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "Urea", serr.Item)
}

func TestUseToZeroDeletesItem(t *testing.T) {
	s, db := newTestService(t)
	item := create(t, s, "Urea", "10", "kg")

	got, err := s.Use("u1", item.StockID, "10")
	require.NoError(t, err)
	assert.Nil(t, got)

	var count int64
	db.Model(&entities.StockItem{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestUseValidatesValue(t *testing.T) {
	s, _ := newTestService(t)
	item := create(t, s, "Urea", "10", "kg")

	for _, v := range []string{"0", "-1", "1.25", "abc", ""} {
		_, err := s.Use("u1", item.StockID, v)
		var verr *apperr.ValidationError
		require.ErrorAs(t, err, &verr, "value %q", v)
	}
}

func TestAddReplenishes(t *testing.T) {
	s, _ := newTestService(t)
	item := create(t, s, "Urea", "10", "kg")

	got, err := s.Add("u1", item.StockID, "4.5")
	require.NoError(t, err)
	assert.Equal(t, 14.5, got.Remaining)
	assert.Equal(t, 0.0, got.Used)
}

func TestListFiltersByName(t *testing.T) {
	s, _ := newTestService(t)
	create(t, s, "Urea", "10", "kg")
	create(t, s, "DAP", "5", "kg")

	all, err := s.List("u1", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	matched, err := s.List("u1", "ure")
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Urea", matched[0].Name)
}

func TestDeleteStock(t *testing.T) {
	s, _ := newTestService(t)
	item := create(t, s, "Urea", "10", "kg")

	require.NoError(t, s.Delete("u1", item.StockID))

	err := s.Delete("u1", item.StockID)
	var nerr *apperr.NotFoundError
	require.ErrorAs(t, err, &nerr)
}

func TestOtherUsersStockIsInvisible(t *testing.T) {
	s, _ := newTestService(t)
	item := create(t, s, "Urea", "10", "kg")

	_, err := s.Use("u2", item.StockID, "1")
	var nerr *apperr.NotFoundError
	require.ErrorAs(t, err, &nerr)
}

func TestExportXLSX(t *testing.T) {
	s, _ := newTestService(t)
	create(t, s, "Urea", "10", "kg")

	f, err := s.ExportXLSX("u1")
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Stocks", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Urea", name)
	remaining, err := f.GetCellValue("Stocks", "B2")
	require.NoError(t, err)
	assert.Equal(t, "10", remaining)
}
