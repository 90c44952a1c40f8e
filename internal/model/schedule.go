package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNoScheduledTime = errors.New("model: task has no scheduled time")
	ErrInvalidClock    = errors.New("model: invalid clock time")
)

var (
	clockPattern    = regexp.MustCompile(`(\d{1,2}):(\d{2})\s*([AaPp][Mm])?`)
	meridiemPattern = regexp.MustCompile(`(?i)\b([ap]m)\b`)
	dayRangePattern = regexp.MustCompile(`(?i)\b(mon|tue|wed|thu|fri|sat|sun)[a-z]*\s*[–—-]\s*(mon|tue|wed|thu|fri|sat|sun)[a-z]*\b`)
	dayPattern      = regexp.MustCompile(`(?i)\b(mon|tue|wed|thu|fri|sat|sun)[a-z]*\b`)
)

var weekdayByPrefix = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// Slot is one start time of a scheduled-time label. An empty Days set means
// every day of the week.
type Slot struct {
	Hour   int
	Minute int
	Days   map[time.Weekday]bool
}

func (s Slot) allows(d time.Weekday) bool {
	if len(s.Days) == 0 {
		return true
	}
	return s.Days[d]
}

type Schedule struct {
	Label string
	Slots []Slot
}

// ParseSchedule reads the start clock time(s) out of a free-text label such as
// "1:00 PM", "10:30–10:45 AM" or "10:00 PM Tue–Thu / 11:00 PM Fri–Sat".
// Alternatives are separated by "/", ranges keep only their start.
func ParseSchedule(label string) (Schedule, error) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return Schedule{}, ErrNoScheduledTime
	}
	out := Schedule{Label: trimmed}
	for _, part := range strings.Split(trimmed, "/") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		slot, err := parseSlot(part)
		if err != nil {
			return Schedule{}, fmt.Errorf("parse %q: %w", trimmed, err)
		}
		out.Slots = append(out.Slots, slot)
	}
	if len(out.Slots) == 0 {
		return Schedule{}, fmt.Errorf("%w: %q", ErrInvalidClock, trimmed)
	}
	return out, nil
}

// On returns the first slot start on the calendar day of day, in day's location.
func (s Schedule) On(day time.Time) (time.Time, bool) {
	y, m, d := day.Date()
	for _, slot := range s.Slots {
		if !slot.allows(day.Weekday()) {
			continue
		}
		return time.Date(y, m, d, slot.Hour, slot.Minute, 0, 0, day.Location()), true
	}
	return time.Time{}, false
}

func parseSlot(part string) (Slot, error) {
	match := clockPattern.FindStringSubmatchIndex(part)
	if match == nil {
		return Slot{}, fmt.Errorf("%w: no clock in %q", ErrInvalidClock, part)
	}
	hour, _ := strconv.Atoi(part[match[2]:match[3]])
	minute, _ := strconv.Atoi(part[match[4]:match[5]])

	meridiem := ""
	if match[6] >= 0 {
		meridiem = part[match[6]:match[7]]
	} else if mm := meridiemPattern.FindStringSubmatch(part[match[1]:]); mm != nil {
		meridiem = mm[1]
	}
	if meridiem == "" {
		return Slot{}, fmt.Errorf("%w: missing AM/PM in %q", ErrInvalidClock, part)
	}
	if hour < 1 || hour > 12 || minute > 59 {
		return Slot{}, fmt.Errorf("%w: %d:%02d", ErrInvalidClock, hour, minute)
	}
	hour %= 12
	if strings.EqualFold(meridiem, "pm") {
		hour += 12
	}
	return Slot{Hour: hour, Minute: minute, Days: parseDays(part)}, nil
}

func parseDays(part string) map[time.Weekday]bool {
	days := make(map[time.Weekday]bool)
	for _, rng := range dayRangePattern.FindAllStringSubmatch(part, -1) {
		from := weekdayByPrefix[strings.ToLower(rng[1])]
		to := weekdayByPrefix[strings.ToLower(rng[2])]
		for d := from; ; d = (d + 1) % 7 {
			days[d] = true
			if d == to {
				break
			}
		}
	}
	if len(days) > 0 {
		return days
	}
	for _, tok := range dayPattern.FindAllStringSubmatch(part, -1) {
		days[weekdayByPrefix[strings.ToLower(tok[1])]] = true
	}
	if len(days) == 0 {
		return nil
	}
	return days
}
