package scheduler

import (
	"testing"
	"time"

	"github.com/sandeepkv93/backalley/internal/model"
)

func TestPlanSkipsUntimedPastAndOffDayTasks(t *testing.T) {
	tasks := []model.Task{
		model.NewTask(model.SectionOpening, "", "Prep controllers & trackers", ""),
		model.NewTask(model.SectionHourly, "1:00 PM", "Refresh waiting area", ""),
		model.NewTask(model.SectionHourly, "5:00 PM", "Entry tidy-up", ""),
		model.NewTask(model.SectionHourly, "whenever", "Unreadable", ""),
		model.NewTask(model.SectionClosing, "10:00 PM Tue–Thu / 11:00 PM Fri–Sat", "Power down gear", ""),
	}
	// Monday 14:00: 1 PM has passed, closing has no Monday slot.
	now := time.Date(2026, 2, 9, 14, 0, 0, 0, time.UTC)

	events := Plan(tasks, now)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %+v", events)
	}
	if events[0].Title != "Entry tidy-up" || events[0].TriggerAt.Hour() != 17 {
		t.Fatalf("unexpected event: %+v", events[0])
	}
	if events[0].TaskID != tasks[2].ID || events[0].Label != "5:00 PM" {
		t.Fatalf("event lost task identity: %+v", events[0])
	}
}

func TestPlanUsesWeekdaySlot(t *testing.T) {
	tasks := []model.Task{
		model.NewTask(model.SectionClosing, "10:00 PM Tue–Thu / 11:00 PM Fri–Sat", "Power down gear", ""),
	}
	friday := time.Date(2026, 2, 13, 9, 0, 0, 0, time.UTC)
	events := Plan(tasks, friday)
	if len(events) != 1 || events[0].TriggerAt.Hour() != 23 {
		t.Fatalf("expected 23:00 friday reminder, got %+v", events)
	}
}

func TestScheduleAllQueuesEveryEvent(t *testing.T) {
	engine := NewEngine(4)
	now := time.Now()
	n, err := engine.ScheduleAll([]DueEvent{
		{TaskID: "a", TriggerAt: now.Add(time.Hour)},
		{TaskID: "b", TriggerAt: now.Add(2 * time.Hour)},
	})
	if err != nil || n != 2 {
		t.Fatalf("schedule all: n=%d err=%v", n, err)
	}
	if engine.Pending() != 2 {
		t.Fatalf("expected 2 pending, got %d", engine.Pending())
	}

	n, err = engine.ScheduleAll([]DueEvent{{TaskID: "c"}})
	if err != ErrInvalidTriggerTime || n != 0 {
		t.Fatalf("expected invalid trigger error, n=%d err=%v", n, err)
	}
}
