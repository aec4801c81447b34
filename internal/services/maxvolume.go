package services

import (
	"facility-capacity-service/internal/domain"
	"fmt"
)

// Bounded search range for the daily volume, in volume units per day.
const (
	minSearchVolume = 50
	maxSearchVolume = 1500
)

// Offsets above the accepted maximum probed by the monotonicity self-check.
var selfCheckOffsets = [...]int{10, 50, 100}

// MaxVolumeResult is the outcome of the max-volume search for one
// configuration.
type MaxVolumeResult struct {
	// Largest daily volume in [50, 1500] the configuration sustained with
	// zero idle days and zero backlog buildup. Zero when none did.
	MaxDailyVolume int

	// The bisection assumes higher volume never reduces idle days. That is
	// an assumption, not a proof: when a sampled volume above the accepted
	// maximum turns out feasible, the region is non-monotonic and
	// MaxDailyVolume is only a lower bound.
	NonMonotonic bool
}

// FindMaxVolume binary-searches the largest sustainable daily volume for a
// fixed (cell capacity, cell count) configuration.
func FindMaxVolume(
	params domain.FacilityParameters,
	policy domain.SimulationPolicy,
	cellCapacity int,
	cellCount int,
	horizonDays int,
) (MaxVolumeResult, error) {
	if horizonDays < 1 {
		return MaxVolumeResult{}, fmt.Errorf("find max volume: %w: horizon must be at least 1 day, got %d", domain.ErrInvalidParameter, horizonDays)
	}

	sustainable := func(volume int) (bool, error) {
		trial := params.WithDailyVolume(volume)
		// A volume that leaves the equipment no unload surplus can never
		// sustain; treat it as infeasible rather than an input error.
		if trial.Validate() != nil {
			return false, nil
		}
		res, err := RunProbe(trial, policy, cellCapacity, cellCount, horizonDays)
		if err != nil {
			return false, err
		}
		return res.Sustainable(), nil
	}

	low, high := minSearchVolume, maxSearchVolume
	found := 0

	for low <= high {
		mid := (low + high) / 2
		ok, err := sustainable(mid)
		if err != nil {
			return MaxVolumeResult{}, err
		}
		if ok {
			found = mid
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	result := MaxVolumeResult{MaxDailyVolume: found}
	if found == 0 {
		return result, nil
	}

	// Self-check a few points above the accepted maximum. Any feasible
	// sample there contradicts the monotonicity assumption, so flag the
	// result instead of silently reporting a wrong maximum.
	for _, offset := range selfCheckOffsets {
		probeAt := found + offset
		if probeAt > maxSearchVolume {
			break
		}
		ok, err := sustainable(probeAt)
		if err != nil {
			return MaxVolumeResult{}, err
		}
		if ok {
			result.NonMonotonic = true
			break
		}
	}

	return result, nil
}
