package update

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type RuntimeConfig struct {
	StartTab       string
	Reminders      bool
	ReminderBuffer int
	InventoryDSN   string
	DebugLogPath   string
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		StartTab:       "dashboard",
		Reminders:      false,
		ReminderBuffer: 16,
	}
}

// LoadDotEnv reads KEY=VALUE pairs from path into the process environment.
// Variables already set win, and a missing file is not an error.
func LoadDotEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("BACKALLEY_START_TAB")); v != "" {
		if _, ok := parseTab(v); ok {
			cfg.StartTab = v
		}
	}
	if v, ok := getEnvBool("BACKALLEY_REMINDERS"); ok {
		cfg.Reminders = v
	}
	if v, ok := getEnvInt("BACKALLEY_REMINDER_BUFFER"); ok && v > 0 {
		cfg.ReminderBuffer = v
	}
	if v := strings.TrimSpace(os.Getenv("BACKALLEY_INVENTORY_DSN")); v != "" {
		cfg.InventoryDSN = v
	}
	if v := strings.TrimSpace(os.Getenv("BACKALLEY_DEBUG_LOG")); v != "" {
		cfg.DebugLogPath = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
