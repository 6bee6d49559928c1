// ABOUTME: Tests for hydration mutators and the h2o-master badge rule.
// ABOUTME: Goal check is inclusive of the triggering entry and idempotent.
package tracker

import (
	"testing"
	"time"

	"github.com/harperreed/healthflow/internal/models"
)

var noon = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func badgeAchieved(t *testing.T, st models.AppState, id string) bool {
	t.Helper()
	b, ok := BadgeByID(st, id)
	if !ok {
		t.Fatalf("badge %s not present", id)
	}
	return b.Achieved
}

func TestLogWaterAppendsEntry(t *testing.T) {
	st := LogWater(models.DefaultState(), 250, noon)

	if len(st.Hydration) != 1 {
		t.Fatalf("len(Hydration) = %d, want 1", len(st.Hydration))
	}
	if st.Hydration[0].Amount != 250 {
		t.Errorf("Amount = %d, want 250", st.Hydration[0].Amount)
	}
	if st.Hydration[0].Date != noon.Format(time.RFC3339) {
		t.Errorf("Date = %s, want %s", st.Hydration[0].Date, noon.Format(time.RFC3339))
	}
	if badgeAchieved(t, st, models.BadgeH2OMaster) {
		t.Error("h2o-master achieved at 250ml")
	}
}

func TestLogWaterIgnoresNonPositiveAmounts(t *testing.T) {
	st := LogWater(models.DefaultState(), 0, noon)
	st = LogWater(st, -100, noon)

	if len(st.Hydration) != 0 {
		t.Errorf("len(Hydration) = %d, want 0", len(st.Hydration))
	}
}

func TestLogWaterGoalIsInclusive(t *testing.T) {
	st := LogWater(models.DefaultState(), 2900, noon)
	if badgeAchieved(t, st, models.BadgeH2OMaster) {
		t.Fatal("badge achieved below the goal")
	}

	// The entry that lands exactly on the goal counts.
	st = LogWater(st, 100, noon)
	if !badgeAchieved(t, st, models.BadgeH2OMaster) {
		t.Error("badge not achieved at exactly 3000ml")
	}

	// Logging past the goal changes nothing.
	st = LogWater(st, 500, noon)
	if !badgeAchieved(t, st, models.BadgeH2OMaster) {
		t.Error("badge lost after further logging")
	}
}

func TestLogWaterGoalResetsAcrossDays(t *testing.T) {
	st := LogWater(models.DefaultState(), 2000, noon)
	nextDay := noon.Add(24 * time.Hour)
	st = LogWater(st, 2000, nextDay)

	if badgeAchieved(t, st, models.BadgeH2OMaster) {
		t.Error("intake must not accumulate across days")
	}
	if got := DayTotal(st, nextDay); got != 2000 {
		t.Errorf("DayTotal(next day) = %d, want 2000", got)
	}
}

func TestRemoveLogMatchesExactTimestamp(t *testing.T) {
	st := LogWater(models.DefaultState(), 250, noon)
	st = LogWater(st, 500, noon.Add(time.Hour))

	st = RemoveLog(st, noon.Format(time.RFC3339))

	if len(st.Hydration) != 1 {
		t.Fatalf("len(Hydration) = %d, want 1", len(st.Hydration))
	}
	if st.Hydration[0].Amount != 500 {
		t.Errorf("wrong entry removed, Amount = %d", st.Hydration[0].Amount)
	}

	// Removing a timestamp that does not exist is a no-op.
	st = RemoveLog(st, "2026-01-01T00:00:00Z")
	if len(st.Hydration) != 1 {
		t.Errorf("no-op removal changed the log")
	}
}

func TestRemoveLogDoesNotRevokeBadge(t *testing.T) {
	st := LogWater(models.DefaultState(), 3000, noon)
	if !badgeAchieved(t, st, models.BadgeH2OMaster) {
		t.Fatal("badge not achieved at 3000ml")
	}

	st = RemoveLog(st, st.Hydration[0].Date)
	if !badgeAchieved(t, st, models.BadgeH2OMaster) {
		t.Error("achieved badge revoked by log removal")
	}
}

func TestDayTotalSumsOnlyThatDay(t *testing.T) {
	st := LogWater(models.DefaultState(), 250, noon)
	st = LogWater(st, 750, noon.Add(2*time.Hour))
	st = LogWater(st, 9999, noon.Add(-24*time.Hour))

	if got := DayTotal(st, noon); got != 1000 {
		t.Errorf("DayTotal = %d, want 1000", got)
	}
	logs := LogsOn(st, noon)
	if len(logs) != 2 {
		t.Errorf("len(LogsOn) = %d, want 2", len(logs))
	}
}
