package model

import (
	"errors"
	"testing"
	"time"
)

func TestParseScheduleSingleClock(t *testing.T) {
	s, err := ParseSchedule("1:00 PM")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	day := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	at, ok := s.On(day)
	if !ok {
		t.Fatal("expected slot on any day")
	}
	if at.Format("2006-01-02 15:04") != "2026-02-10 13:00" {
		t.Fatalf("unexpected trigger: %s", at.Format(time.RFC3339))
	}
}

func TestParseScheduleRangeUsesStartAndTrailingMeridiem(t *testing.T) {
	s, err := ParseSchedule("10:30–10:45 AM")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(s.Slots) != 1 || s.Slots[0].Hour != 10 || s.Slots[0].Minute != 30 {
		t.Fatalf("unexpected slots: %+v", s.Slots)
	}
}

func TestParseScheduleWeekdayAlternatives(t *testing.T) {
	s, err := ParseSchedule("10:00 PM Tue–Thu / 11:00 PM Fri–Sat")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(s.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %+v", s.Slots)
	}

	wed := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC) // Wednesday
	at, ok := s.On(wed)
	if !ok || at.Hour() != 22 {
		t.Fatalf("expected 22:00 on wednesday, got %v ok=%v", at, ok)
	}

	sat := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC) // Saturday
	at, ok = s.On(sat)
	if !ok || at.Hour() != 23 {
		t.Fatalf("expected 23:00 on saturday, got %v ok=%v", at, ok)
	}

	mon := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC) // Monday
	if _, ok := s.On(mon); ok {
		t.Fatal("expected no slot on monday")
	}
}

func TestParseScheduleMidnightAndNoon(t *testing.T) {
	s, err := ParseSchedule("12:15 AM / 12:00 PM")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if s.Slots[0].Hour != 0 || s.Slots[1].Hour != 12 {
		t.Fatalf("unexpected hours: %+v", s.Slots)
	}
}

func TestParseScheduleErrors(t *testing.T) {
	if _, err := ParseSchedule("  "); !errors.Is(err, ErrNoScheduledTime) {
		t.Fatalf("expected ErrNoScheduledTime, got %v", err)
	}
	for _, label := range []string{"after lunch", "13:00 PM", "9:00"} {
		if _, err := ParseSchedule(label); !errors.Is(err, ErrInvalidClock) {
			t.Fatalf("label %q: expected ErrInvalidClock, got %v", label, err)
		}
	}
}
