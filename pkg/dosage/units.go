package dosage

import (
	"strconv"
	"strings"
)

// Units accepted on schedule line items.
const (
	UnitLiters = "liters"
	UnitML     = "ml"
	UnitKg     = "kg"
	UnitG      = "g"
)

// ToLiters converts a raw quantity to liters. The second return is false when
// the value is not numeric or the unit is not a volume unit.
func ToLiters(value, unit string) (float64, bool) {
	num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	switch unit {
	case UnitLiters:
		return num, true
	case UnitML:
		return num / 1000, true
	}
	return 0, false
}

// ToKilograms converts a raw quantity to kilograms. The second return is false
// when the value is not numeric or the unit is not a mass unit.
func ToKilograms(value, unit string) (float64, bool) {
	num, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	switch unit {
	case UnitKg:
		return num, true
	case UnitG:
		return num / 1000, true
	}
	return 0, false
}
