package schedule

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Schedule - khung giờ lặp lại theo tuần (volunteer shift, visit slot)
type Schedule struct {
	ID          int64          `json:"id" db:"id"`
	Days        []time.Weekday `json:"days" db:"days"`
	StartHour   int            `json:"start_hour" db:"start_time_hour"`
	StartMinute int            `json:"start_minute" db:"start_time_minute"`
	EndHour     int            `json:"end_hour" db:"end_time_hour"`
	EndMinute   int            `json:"end_minute" db:"end_time_minute"`
}

// String renders "Hours: MON, TUE from 09:00 to 17:30". Never persisted.
func (s Schedule) String() string {
	days := SortDays(s.Days)

	abbrevs := make([]string, 0, len(days))
	for _, d := range days {
		name := DayName(d)
		if len(name) < 3 {
			continue // weekday ngoài 0..6
		}
		abbrevs = append(abbrevs, name[:3])
	}

	var sb strings.Builder
	sb.WriteString("Hours: ")
	if len(abbrevs) > 0 {
		sb.WriteString(strings.Join(abbrevs, ", "))
		sb.WriteString(" ")
	}
	fmt.Fprintf(&sb, "from %02d:%02d to %02d:%02d", s.StartHour, s.StartMinute, s.EndHour, s.EndMinute)
	return sb.String()
}

// ════════════════════════════════════════════════════════════════
// WEEKDAYS
// ════════════════════════════════════════════════════════════════

var dayNames = map[time.Weekday]string{
	time.Monday:    "MONDAY",
	time.Tuesday:   "TUESDAY",
	time.Wednesday: "WEDNESDAY",
	time.Thursday:  "THURSDAY",
	time.Friday:    "FRIDAY",
	time.Saturday:  "SATURDAY",
	time.Sunday:    "SUNDAY",
}

// DayName trả về tên upper-case dùng trên wire và trong DB ("MONDAY")
func DayName(d time.Weekday) string {
	return dayNames[d]
}

func ParseDay(name string) (time.Weekday, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for d, n := range dayNames {
		if n == upper {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, name)
}

func ParseDays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		d, err := ParseDay(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return SortDays(days), nil
}

func DayNames(days []time.Weekday) []string {
	sorted := SortDays(days)
	names := make([]string, 0, len(sorted))
	for _, d := range sorted {
		if name := DayName(d); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// SortDays: Monday → Sunday, bỏ trùng
func SortDays(days []time.Weekday) []time.Weekday {
	out := slices.Clone(days)
	slices.SortFunc(out, func(a, b time.Weekday) int {
		return isoIndex(a) - isoIndex(b)
	})
	return slices.Compact(out)
}

func isoIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
