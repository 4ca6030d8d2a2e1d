package status

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// scheduleTimeLayout is the HH:MM form the restart slots are written in.
const scheduleTimeLayout = "15:04"

type serverConfigFile struct {
	Monitor struct {
		RestarterSchedule []string `json:"restarterSchedule"`
	} `json:"monitor"`
}

// Schedule reads the game server's restart slots from its JSON config file.
// The file is re-read on every call so schedule edits apply without a restart.
type Schedule struct {
	path string
}

func NewSchedule(path string) *Schedule {
	return &Schedule{path: path}
}

// Slots returns the configured HH:MM restart times, or an empty list when the
// file is missing, malformed, or carries no schedule.
func (s *Schedule) Slots() ([]string, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	var cfg serverConfigFile
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}
	return cfg.Monitor.RestarterSchedule, nil
}

// NextRestart returns the next upcoming restart relative to now: the first
// slot later today, or the earliest slot tomorrow once all of today's slots
// have passed. Returns the zero time and false when no schedule exists.
func (s *Schedule) NextRestart(now time.Time) (time.Time, bool, error) {
	slots, err := s.Slots()
	if err != nil {
		return time.Time{}, false, err
	}
	if len(slots) == 0 {
		return time.Time{}, false, nil
	}

	times := make([]time.Time, 0, len(slots))
	for _, slot := range slots {
		parsed, err := time.Parse(scheduleTimeLayout, slot)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("invalid restart slot %q: %w", slot, err)
		}
		times = append(times, time.Date(now.Year(), now.Month(), now.Day(),
			parsed.Hour(), parsed.Minute(), 0, 0, now.Location()))
	}

	for _, candidate := range times {
		if candidate.After(now) {
			return candidate, true, nil
		}
	}
	return times[0].AddDate(0, 0, 1), true, nil
}
