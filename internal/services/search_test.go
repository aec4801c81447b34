package services

import (
	"context"
	"errors"
	"facility-capacity-service/internal/domain"
	"testing"
)

func TestRunProbeScenarios(t *testing.T) {
	params := continuousParams()

	sustained, err := RunProbe(params, domain.DefaultPolicy(), 900, 4, DefaultSearchHorizonDays)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if !sustained.Sustainable() {
		t.Errorf("4x900 at 300/day: idle=%d peak=%d, want sustained operation",
			sustained.IdleDays, sustained.PeakBacklog)
	}

	undersized, err := RunProbe(params, domain.DefaultPolicy(), 900, 2, DefaultSearchHorizonDays)
	if err != nil {
		t.Fatalf("probe: %v", err)
	}
	if undersized.IdleDays != 52 {
		t.Errorf("2x900 idle days = %d, want 52", undersized.IdleDays)
	}
	if undersized.Sustainable() {
		t.Error("2x900 must not be sustainable")
	}
}

func TestRunProbeRejectsZeroVolume(t *testing.T) {
	params := continuousParams()
	params.DailyIncomingVolume = 0

	_, err := RunProbe(params, domain.DefaultPolicy(), 900, 4, DefaultSearchHorizonDays)
	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("zero volume: got %v, want ErrInvalidParameter before any simulation", err)
	}
}

func TestIdleDaysMonotonicInVolume(t *testing.T) {
	// Doubling a sustainable volume must not decrease idle days.
	params := continuousParams()
	params.EquipmentCapacity = 1350

	at300, err := RunProbe(params, domain.DefaultPolicy(), 900, 4, DefaultSearchHorizonDays)
	if err != nil {
		t.Fatalf("probe at 300: %v", err)
	}
	at600, err := RunProbe(params.WithDailyVolume(600), domain.DefaultPolicy(), 900, 4, DefaultSearchHorizonDays)
	if err != nil {
		t.Fatalf("probe at 600: %v", err)
	}

	if at600.IdleDays < at300.IdleDays {
		t.Errorf("idle days dropped from %d to %d as volume doubled", at300.IdleDays, at600.IdleDays)
	}
}

func TestFindMaxVolume(t *testing.T) {
	params := continuousParams()

	got, err := FindMaxVolume(params, domain.DefaultPolicy(), 900, 4, DefaultSearchHorizonDays)
	if err != nil {
		t.Fatalf("find max volume: %v", err)
	}
	// The bisection settles below the planned 300/day here: the feasible
	// region is not monotonic (the unload surplus shrinks as volume
	// grows). The search layer reconciles that against the verified
	// planned volume.
	if got.MaxDailyVolume != 271 {
		t.Errorf("max volume = %d, want 271", got.MaxDailyVolume)
	}

	smaller, err := FindMaxVolume(params, domain.DefaultPolicy(), 900, 2, DefaultSearchHorizonDays)
	if err != nil {
		t.Fatalf("find max volume: %v", err)
	}
	if smaller.MaxDailyVolume != 92 {
		t.Errorf("2-cell max volume = %d, want 92", smaller.MaxDailyVolume)
	}
	if smaller.MaxDailyVolume >= got.MaxDailyVolume {
		t.Error("fewer cells should not sustain more volume here")
	}
}

func TestSearchConfigurations(t *testing.T) {
	req := SearchRequest{
		Params: continuousParams(),
		Policy: domain.DefaultPolicy(),
		Bounds: domain.SearchBounds{
			MinCellCapacity: 900,
			MaxCellCapacity: 1200,
			CapacityStep:    300,
			MinCellCount:    2,
			MaxCellCount:    6,
		},
	}

	got, err := SearchConfigurations(context.Background(), req)
	if err != nil {
		t.Fatalf("search: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("candidates = %d, want 2 (one per viable capacity, early break on count)", len(got))
	}

	best := got[0]
	if best.CellCapacity != 900 || best.CellCount != 4 {
		t.Errorf("best = %dx%d, want 4x900", best.CellCount, best.CellCapacity)
	}
	if best.IdleDays != 0 || best.PeakBacklog != 0 {
		t.Errorf("best idle=%d peak=%d, want both 0", best.IdleDays, best.PeakBacklog)
	}
	if best.Score != 4*scoreCellCountWeight+900 {
		t.Errorf("best score = %d, want %d", best.Score, 4*scoreCellCountWeight+900)
	}
	if best.MaxDailyVolume < 300 {
		t.Errorf("best max volume = %d, must cover the verified planned volume", best.MaxDailyVolume)
	}
	if !best.NonMonotonic {
		t.Error("bisection landed below the planned volume; candidate should carry the monotonicity warning")
	}

	second := got[1]
	if second.CellCapacity != 1200 || second.CellCount != 4 {
		t.Errorf("second = %dx%d, want 4x1200", second.CellCount, second.CellCapacity)
	}
	if second.Score <= best.Score {
		t.Errorf("ranking broken: second score %d <= best score %d", second.Score, best.Score)
	}
}

func TestSearchNoViableConfiguration(t *testing.T) {
	// A tight loading-days cap excludes every cell size in the bounds.
	params := continuousParams()
	params.DailyIncomingVolume = 50
	params.EquipmentCapacity = 200

	req := SearchRequest{
		Params: params,
		Policy: domain.DefaultPolicy(),
		Bounds: domain.SearchBounds{
			MinCellCapacity: 100,
			MaxCellCapacity: 150,
			CapacityStep:    100,
			MinCellCount:    2,
			MaxCellCount:    12,
			MaxLoadingDays:  1,
		},
	}

	_, err := SearchConfigurations(context.Background(), req)
	if !errors.Is(err, ErrNoViableConfiguration) {
		t.Fatalf("got %v, want ErrNoViableConfiguration", err)
	}
}

func TestSearchRejectsInvalidBounds(t *testing.T) {
	req := SearchRequest{
		Params: continuousParams(),
		Policy: domain.DefaultPolicy(),
		Bounds: domain.SearchBounds{
			MinCellCapacity: 1200,
			MaxCellCapacity: 900,
			CapacityStep:    100,
			MinCellCount:    2,
			MaxCellCount:    6,
		},
	}

	_, err := SearchConfigurations(context.Background(), req)
	if !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("inverted bounds: got %v, want ErrInvalidParameter", err)
	}
}

func TestSearchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := SearchRequest{
		Params: continuousParams(),
		Policy: domain.DefaultPolicy(),
		Bounds: domain.SearchBounds{
			MinCellCapacity: 900,
			MaxCellCapacity: 5000,
			CapacityStep:    100,
			MinCellCount:    2,
			MaxCellCount:    12,
		},
	}

	_, err := SearchConfigurations(ctx, req)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled search: got %v, want context.Canceled", err)
	}
}
