package serviceImp

import (
	"sort"
	"strconv"
	"strings"

	"farmstock/entities"
	svc "farmstock/pkg/schedule/service"
)

// Project replays schedules in ascending date order (ties keep listing order)
// against a working copy of current stock, recording for every schedule+item
// the remaining figure before that schedule depletes it. The working copy is
// floored at zero, so the curve per item never goes negative and never rises.
// Items with no matching stock read as zero with an empty unit. Read-only:
// neither argument is mutated.
func Project(stocks []entities.StockItem, schedules []entities.Schedule) map[uint]map[string]svc.Availability {
	remaining := make(map[string]float64, len(stocks))
	units := make(map[string]string, len(stocks))
	byID := make(map[uint]string, len(stocks))
	for _, st := range stocks {
		key := st.NameKey
		if key == "" {
			key = strings.ToLower(st.Name)
		}
		remaining[key] = st.Remaining
		units[key] = st.Unit
		byID[st.StockID] = key
	}

	ordered := make([]entities.Schedule, len(schedules))
	copy(ordered, schedules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ScheduleDate.Before(ordered[j].ScheduleDate)
	})

	out := make(map[uint]map[string]svc.Availability, len(ordered))
	for _, sch := range ordered {
		snap := make(map[string]svc.Availability)
		walk := func(items []entities.LineItem) {
			for _, li := range items {
				key := itemKey(li, byID)
				avail := remaining[key]
				snap[key] = svc.Availability{Remaining: avail, Unit: units[key]}
				next := avail - requiredQty(li)
				if next < 0 {
					next = 0
				}
				remaining[key] = next
			}
		}
		if sch.Spray {
			walk(sch.SprayItems)
		}
		if sch.Drip {
			walk(sch.DripItems)
		}
		out[sch.ScheduleID] = snap
	}
	return out
}

// itemKey prefers the stock id captured at authoring time; older line items
// fall back to the case-insensitive name join.
func itemKey(li entities.LineItem, byID map[uint]string) string {
	if li.StockID != 0 {
		if key, ok := byID[li.StockID]; ok {
			return key
		}
	}
	return strings.ToLower(li.Name)
}

// requiredQty reads the persisted resolved quantity, falling back to the raw
// entry for data saved before resolution existed.
func requiredQty(li entities.LineItem) float64 {
	if li.FinalQty > 0 {
		return li.FinalQty
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(li.Quantity), 64)
	if err != nil {
		return 0
	}
	return v
}
