// ABOUTME: Hydration log mutators - pure transformations over AppState.
// ABOUTME: Reaching the 3000ml daily goal flips the h2o-master badge.
package tracker

import (
	"strings"
	"time"

	"github.com/harperreed/healthflow/internal/models"
)

// DailyGoalML is the hydration goal that earns the h2o-master badge.
const DailyGoalML = 3000

// LogWater appends a water intake entry stamped at now. When the day's
// running total (inclusive of this entry) reaches the goal, h2o-master
// is achieved; re-triggering when already achieved changes nothing.
func LogWater(st models.AppState, amountML int, now time.Time) models.AppState {
	if amountML <= 0 {
		return st
	}

	entry := models.HydrationLog{
		Date:   now.UTC().Format(time.RFC3339),
		Amount: amountML,
	}
	logs := make([]models.HydrationLog, len(st.Hydration), len(st.Hydration)+1)
	copy(logs, st.Hydration)
	st.Hydration = append(logs, entry)

	if DayTotal(st, now) >= DailyGoalML {
		st = achieve(st, models.BadgeH2OMaster)
	}
	return st
}

// RemoveLog deletes the entry with the exact timestamp. Display order
// may be reversed for presentation, so removal matches on the date
// field, never on a positional index.
func RemoveLog(st models.AppState, date string) models.AppState {
	for i, l := range st.Hydration {
		if l.Date == date {
			logs := make([]models.HydrationLog, 0, len(st.Hydration)-1)
			logs = append(logs, st.Hydration[:i]...)
			logs = append(logs, st.Hydration[i+1:]...)
			st.Hydration = logs
			return st
		}
	}
	return st
}

// DayTotal sums the intake logged on the same UTC day as day.
func DayTotal(st models.AppState, day time.Time) int {
	total := 0
	for _, l := range LogsOn(st, day) {
		total += l.Amount
	}
	return total
}

// LogsOn returns the entries logged on the same UTC day as day, in
// insertion order.
func LogsOn(st models.AppState, day time.Time) []models.HydrationLog {
	prefix := day.UTC().Format("2006-01-02")
	var logs []models.HydrationLog
	for _, l := range st.Hydration {
		if strings.HasPrefix(l.Date, prefix) {
			logs = append(logs, l)
		}
	}
	return logs
}
