package scheduler

import (
	"time"

	"github.com/sandeepkv93/backalley/internal/model"
)

// Plan turns the timed tasks into today's reminders. Tasks without a time,
// with an unreadable label, with no slot on today's weekday, or whose time
// has already passed are skipped.
func Plan(tasks []model.Task, now time.Time) []DueEvent {
	out := make([]DueEvent, 0)
	for _, task := range tasks {
		sched, err := model.ParseSchedule(task.Time)
		if err != nil {
			continue
		}
		at, ok := sched.On(now)
		if !ok || !at.After(now) {
			continue
		}
		out = append(out, DueEvent{
			TaskID:    task.ID,
			Title:     task.Title,
			Label:     task.Time,
			TriggerAt: at,
		})
	}
	return out
}

// ScheduleAll queues events and reports how many were accepted.
func (e *Engine) ScheduleAll(events []DueEvent) (int, error) {
	n := 0
	for _, ev := range events {
		if err := e.Schedule(ev); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
