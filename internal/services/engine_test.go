package services

import (
	"facility-capacity-service/internal/domain"
	"reflect"
	"testing"
	"time"
)

// The canonical continuous-operation scenario: 300/day incoming, 750/day
// shared equipment (450/day unload surplus), no weekend loading or
// unloading, treatment phases running 7 days a week.
func continuousParams() domain.FacilityParameters {
	allWeek := domain.WeekendPolicy{Saturday: true, Sunday: true}
	return domain.FacilityParameters{
		DailyIncomingVolume: 300,
		EquipmentCapacity:   750,
		RipDays:             1,
		TreatDays:           3,
		DryDays:             5,
		Weekend: domain.WorkPolicy{
			Rip:   allWeek,
			Treat: allWeek,
			Dry:   allWeek,
		},
	}
}

func mustEngine(t *testing.T, params domain.FacilityParameters, policy domain.SimulationPolicy, capacity, count int) *Engine {
	t.Helper()
	start := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	engine, err := NewEngine(params, policy, capacity, count, start)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngineRejectsInvalidParameters(t *testing.T) {
	params := continuousParams()
	params.DailyIncomingVolume = 0

	start := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	if _, err := NewEngine(params, domain.DefaultPolicy(), 900, 4, start); err == nil {
		t.Fatal("zero daily volume must be rejected before the engine runs")
	}
}

func TestEngineContinuousOperation(t *testing.T) {
	engine := mustEngine(t, continuousParams(), domain.DefaultPolicy(), 900, 4)

	for day := 0; day < 180; day++ {
		engine.Step()
	}

	if got := engine.IdleDays(); got != 0 {
		t.Errorf("idle days = %d, want 0 for the canonical continuous configuration", got)
	}
	if got := engine.PeakBacklog(); got != 0 {
		t.Errorf("peak backlog = %d, want 0", got)
	}
}

func TestEngineFirstDays(t *testing.T) {
	// 2025-12-01 is a Monday. The first cell fills over exactly
	// ceil(900/300) = 3 workdays, then rips on Thursday while the loader
	// moves to the second cell.
	engine := mustEngine(t, continuousParams(), domain.DefaultPolicy(), 900, 4)

	day1 := engine.Step()
	if day1.DayName != "Monday" {
		t.Fatalf("day 1 = %s, want Monday", day1.DayName)
	}
	if day1.Cells[0].Label != "Load (300)" {
		t.Errorf("day 1 cell 1 label = %q, want %q", day1.Cells[0].Label, "Load (300)")
	}
	if day1.VolumeIn != 300 || day1.Backlog != 0 {
		t.Errorf("day 1 in=%d backlog=%d, want 300 and 0", day1.VolumeIn, day1.Backlog)
	}

	engine.Step() // Tuesday
	engine.Step() // Wednesday, first cell reaches 900

	day4 := engine.Step()
	if day4.Cells[0].Label != "Rip" {
		t.Errorf("day 4 cell 1 label = %q, want Rip", day4.Cells[0].Label)
	}
	if day4.Cells[1].Label != "Load (300)" {
		t.Errorf("day 4 cell 2 label = %q, want the loader on cell 2", day4.Cells[1].Label)
	}
}

func TestEngineWeekendPause(t *testing.T) {
	engine := mustEngine(t, continuousParams(), domain.DefaultPolicy(), 900, 4)

	var saturday domain.DayRecord
	for day := 0; day < 6; day++ {
		saturday = engine.Step()
	}

	if saturday.DayName != "Saturday" {
		t.Fatalf("day 6 = %s, want Saturday", saturday.DayName)
	}
	if saturday.VolumeIn != 0 {
		t.Errorf("saturday volume in = %d, want 0 (no weekend loading)", saturday.VolumeIn)
	}
	if saturday.Idle {
		t.Error("a non-work day must not count as idle")
	}
}

func TestEngineMassConservationAndCapacityBound(t *testing.T) {
	// An undersized facility that backs up badly still conserves mass.
	engine := mustEngine(t, continuousParams(), domain.DefaultPolicy(), 900, 2)

	for day := 0; day < 180; day++ {
		engine.Step()

		if !engine.State().MassBalanced() {
			t.Fatalf("day %d: mass balance violated: loaded=%d unloaded=%d contained=%d",
				day, engine.State().TotalLoaded, engine.State().TotalUnloaded, engine.State().ContainedVolume())
		}
		for _, cell := range engine.State().Cells {
			if cell.Fill < 0 || cell.Fill > 900 {
				t.Fatalf("day %d: cell %d fill %d outside [0, 900]", day, cell.Number, cell.Fill)
			}
		}
	}
}

func TestEngineIdleDayDefinition(t *testing.T) {
	// Two 900-unit cells at 300/day cannot keep up; the first idle day is
	// a work day with backlog on hand and nothing loaded.
	engine := mustEngine(t, continuousParams(), domain.DefaultPolicy(), 900, 2)

	idle := 0
	for day := 0; day < 180; day++ {
		rec := engine.Step()

		if rec.VolumeIn > 0 && rec.Idle {
			t.Fatalf("%s: a day that loaded material can never be idle", rec.Date.Format("2006-01-02"))
		}
		if rec.Idle {
			idle++
			if rec.VolumeIn != 0 {
				t.Fatalf("%s: idle day with volume in %d", rec.Date.Format("2006-01-02"), rec.VolumeIn)
			}
			if rec.Backlog == 0 {
				t.Fatalf("%s: idle day without backlog", rec.Date.Format("2006-01-02"))
			}
		}
	}

	if idle != engine.IdleDays() {
		t.Errorf("record idle count %d != engine idle count %d", idle, engine.IdleDays())
	}
	if idle != 52 {
		t.Errorf("idle days = %d, want 52 for 2x900 at 300/day over 180 days", idle)
	}
}

func TestEngineSingleUnloaderPerDay(t *testing.T) {
	engine := mustEngine(t, continuousParams(), domain.DefaultPolicy(), 750, 4)

	for day := 0; day < 180; day++ {
		rec := engine.Step()

		unloading := 0
		for _, c := range rec.Cells {
			if c.Unloaded > 0 {
				unloading++
			}
		}
		if unloading > 1 {
			t.Fatalf("%s: %d cells unloaded, at most one may", rec.Date.Format("2006-01-02"), unloading)
		}
	}
}

func TestEngineSameDayOverflowLoadsSecondCell(t *testing.T) {
	// With 750-unit cells at 300/day the third load day has only 150 units
	// of headroom left in the first cell; the remainder flows into the
	// next cell the same day.
	engine := mustEngine(t, continuousParams(), domain.DefaultPolicy(), 750, 4)

	engine.Step()
	engine.Step()
	day3 := engine.Step()

	if day3.Cells[0].Label != "Load (150)" || day3.Cells[1].Label != "Load (150)" {
		t.Errorf("day 3 labels = %q, %q; want overflow split Load (150) / Load (150)",
			day3.Cells[0].Label, day3.Cells[1].Label)
	}
}

func TestEngineFillOneCellPerDayPolicy(t *testing.T) {
	policy := domain.DefaultPolicy()
	policy.Fill = domain.FillOneCellPerDay
	engine := mustEngine(t, continuousParams(), policy, 750, 4)

	engine.Step()
	engine.Step()
	day3 := engine.Step()

	if day3.Cells[0].Label != "Load (150)" {
		t.Errorf("day 3 cell 1 label = %q, want Load (150)", day3.Cells[0].Label)
	}
	if day3.Cells[1].Label != "" {
		t.Errorf("day 3 cell 2 label = %q, want no overflow under one-cell-per-day", day3.Cells[1].Label)
	}
	if day3.Backlog != 150 {
		t.Errorf("day 3 backlog = %d, want 150 left waiting", day3.Backlog)
	}
}

func TestEngineReloadPolicyVariants(t *testing.T) {
	// Three 900-unit cells are slightly undersized. Allowing a cell
	// emptied mid-unload to reload the same day recovers some days.
	nextDay := mustEngine(t, continuousParams(), domain.DefaultPolicy(), 900, 3)
	sameDay := func() *Engine {
		p := domain.DefaultPolicy()
		p.Reload = domain.ReloadSameDay
		return mustEngine(t, continuousParams(), p, 900, 3)
	}()

	for day := 0; day < 180; day++ {
		nextDay.Step()
		sameDay.Step()
	}

	if got := nextDay.IdleDays(); got != 25 {
		t.Errorf("next-day reload idle days = %d, want 25", got)
	}
	if got := sameDay.IdleDays(); got != 20 {
		t.Errorf("same-day reload idle days = %d, want 20", got)
	}
}

func TestScheduleDeterminism(t *testing.T) {
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	first, err := BuildSchedule(continuousParams(), domain.DefaultPolicy(), 900, 4, start, 120)
	if err != nil {
		t.Fatalf("build schedule: %v", err)
	}
	second, err := BuildSchedule(continuousParams(), domain.DefaultPolicy(), 900, 4, start, 120)
	if err != nil {
		t.Fatalf("build schedule: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce identical day records")
	}
	if len(first) != 120 {
		t.Errorf("schedule length = %d, want 120", len(first))
	}
}

func TestEstimateCycle(t *testing.T) {
	est := EstimateCycle(continuousParams(), 900)

	if est.LoadWorkdays != 3 {
		t.Errorf("load workdays = %d, want ceil(900/300) = 3", est.LoadWorkdays)
	}
	if est.UnloadWorkdays != 2 {
		t.Errorf("unload workdays = %d, want ceil(900/750) = 2", est.UnloadWorkdays)
	}
	// Anchored on a Monday with no weekend load/unload work, every segment
	// fits inside a week: 3 + 1 + 3 + 5 + 2.
	if est.TotalCalendarDays != 14 {
		t.Errorf("total cycle = %d calendar days, want 14", est.TotalCalendarDays)
	}
}
