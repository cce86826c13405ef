package dosage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultSprayArea is assumed when a spray item carries no area (acres).
const DefaultSprayArea = 200

// RawItem is a line item as entered by the user, before resolution.
type RawItem struct {
	Name     string
	Quantity string
	Unit     string
	Area     string
}

// Resolved is the absolute quantity for one full application. It is computed
// once at schedule save time and persisted; later reads never re-derive it.
type Resolved struct {
	FinalQty  float64
	FinalUnit string
}

// ValidationError reports a line item that cannot be resolved.
type ValidationError struct {
	Item   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("item %q: %s", e.Item, e.Reason)
}

// ResolveSprayItem scales a per-area dosage to one full spray tank:
// round2(base / area * sprayTankLevel). The dosage dimension follows the
// entered unit, volume first then mass.
func ResolveSprayItem(item RawItem, sprayTankLevel float64) (Resolved, error) {
	area := DefaultSprayArea * 1.0
	if strings.TrimSpace(item.Area) != "" {
		v, err := strconv.ParseFloat(strings.TrimSpace(item.Area), 64)
		if err != nil {
			return Resolved{}, &ValidationError{Item: item.Name, Reason: "area is not a number"}
		}
		area = v
	}
	if area <= 0 {
		return Resolved{}, &ValidationError{Item: item.Name, Reason: "area must be > 0"}
	}

	base, ok := ToLiters(item.Quantity, item.Unit)
	unit := UnitLiters
	if !ok {
		base, ok = ToKilograms(item.Quantity, item.Unit)
		unit = UnitKg
	}
	if !ok {
		return Resolved{}, &ValidationError{Item: item.Name, Reason: "quantity/unit not convertible"}
	}

	qty := decimal.NewFromFloat(base).
		Div(decimal.NewFromFloat(area)).
		Mul(decimal.NewFromFloat(sprayTankLevel)).
		Round(2)
	return Resolved{FinalQty: qty.InexactFloat64(), FinalUnit: unit}, nil
}

// ResolveDripItem scales a per-area dosage to the whole plot:
// round2(quantity / area * plotSize). The unit passes through unchanged; drip
// items always need an explicit area.
func ResolveDripItem(item RawItem, plotSize float64) (Resolved, error) {
	if strings.TrimSpace(item.Area) == "" {
		return Resolved{}, &ValidationError{Item: item.Name, Reason: "area is required"}
	}
	area, err := strconv.ParseFloat(strings.TrimSpace(item.Area), 64)
	if err != nil {
		return Resolved{}, &ValidationError{Item: item.Name, Reason: "area is not a number"}
	}
	if area <= 0 {
		return Resolved{}, &ValidationError{Item: item.Name, Reason: "area must be > 0"}
	}
	qty, err := strconv.ParseFloat(strings.TrimSpace(item.Quantity), 64)
	if err != nil {
		return Resolved{}, &ValidationError{Item: item.Name, Reason: "quantity is not a number"}
	}

	final := decimal.NewFromFloat(qty).
		Div(decimal.NewFromFloat(area)).
		Mul(decimal.NewFromFloat(plotSize)).
		Round(2)
	return Resolved{FinalQty: final.InexactFloat64(), FinalUnit: item.Unit}, nil
}
