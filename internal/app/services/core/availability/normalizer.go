package availability

import (
	"riraku-service/internal/app/models"
	"riraku-service/internal/pkg/civiltime"
	"riraku-service/internal/pkg/salon_dto"
	"sort"
	"strings"
)

// statusVocabulary folds the backing service's loose status strings into the
// canonical three-value enum. Lookup is case-insensitive.
var statusVocabulary = map[string]models.SlotStatus{
	"open":        models.SlotStatusOpen,
	"available":   models.SlotStatusOpen,
	"ok":          models.SlotStatusOpen,
	"tentative":   models.SlotStatusTentative,
	"maybe":       models.SlotStatusTentative,
	"blocked":     models.SlotStatusBlocked,
	"busy":        models.SlotStatusBlocked,
	"unavailable": models.SlotStatusBlocked,
}

// NormalizeStatus maps one raw status value. Unknown or missing values fall
// open (bookable): the backing service is the final authority at submit time,
// and hiding a slot over a vocabulary drift would silently lose bookings.
func NormalizeStatus(raw string) models.SlotStatus {
	status, ok := statusVocabulary[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return models.SlotStatusOpen
	}
	return status
}

// Normalize converts the backing service's slot list into a canonical
// calendar. A nil return means no availability is registered at all, which
// callers must distinguish from a calendar whose slots are all blocked.
// Malformed slots are dropped one by one rather than failing the calendar.
func Normalize(rawSlots []salon_dto.RawSlot, today string) *models.AvailabilityCalendar {
	if len(rawSlots) == 0 {
		return nil
	}

	type slotKey struct {
		start int64
		end   int64
	}

	seen := make(map[slotKey]bool, len(rawSlots))
	byDate := make(map[string][]models.NormalizedSlot)

	for _, raw := range rawSlots {
		start, err := civiltime.ParseInstant(raw.Start)
		if err != nil {
			continue
		}
		end, err := civiltime.ParseInstant(raw.End)
		if err != nil {
			continue
		}

		key := slotKey{start: start.UnixNano(), end: end.UnixNano()}
		if seen[key] {
			continue
		}
		seen[key] = true

		date := civiltime.ToCivilDate(start)
		byDate[date] = append(byDate[date], models.NormalizedSlot{
			Start:   start,
			End:     end,
			Status:  NormalizeStatus(raw.Status),
			TimeKey: civiltime.ToCivilTime(start),
		})
	}

	if len(byDate) == 0 {
		return nil
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	calendar := &models.AvailabilityCalendar{Days: make([]models.NormalizedDay, 0, len(dates))}
	for _, date := range dates {
		slots := byDate[date]
		sort.Slice(slots, func(i, j int) bool {
			return slots[i].Start.Before(slots[j].Start)
		})

		// Within a day a TimeKey identifies at most one slot.
		deduped := slots[:0]
		usedKeys := make(map[string]bool, len(slots))
		for _, slot := range slots {
			if usedKeys[slot.TimeKey] {
				continue
			}
			usedKeys[slot.TimeKey] = true
			deduped = append(deduped, slot)
		}

		calendar.Days = append(calendar.Days, models.NormalizedDay{
			Date:    date,
			IsToday: date == today,
			Slots:   deduped,
		})
	}

	return calendar
}
