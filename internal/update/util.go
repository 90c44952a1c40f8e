package update

import "strings"

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func parseTab(raw string) (Tab, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "dashboard", "dash":
		return TabDashboard, true
	case "2", "inventory", "inv":
		return TabInventory, true
	case "3", "checklist", "omni", "omni checklist":
		return TabChecklist, true
	default:
		return "", false
	}
}

func isKnownTab(t Tab) bool {
	for _, known := range tabOrder {
		if known == t {
			return true
		}
	}
	return false
}

// cycleTab steps through tabOrder by delta, wrapping at either end.
func cycleTab(current Tab, delta int) Tab {
	idx := 0
	for i, t := range tabOrder {
		if t == current {
			idx = i
			break
		}
	}
	n := len(tabOrder)
	return tabOrder[((idx+delta)%n+n)%n]
}

func clampIndex(i, n int) int {
	if n <= 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func ratio(done, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(done) / float64(total)
}
