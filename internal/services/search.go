package services

import (
	"context"
	"errors"
	"facility-capacity-service/internal/domain"
	"fmt"
	"sort"
	"sync"
)

// ErrNoViableConfiguration reports a search that completed but found no
// candidate with continuous operation inside the given bounds. This is a
// normal, reportable outcome, not a fault; the caller should widen the
// bounds.
var ErrNoViableConfiguration = errors.New("no viable configuration within bounds")

// Scoring weights enforce a lexicographic priority: feasibility first,
// fewest cells second, smallest cells third (lower score is better).
const (
	scoreIdleDayWeight   = 100000
	scoreCellCountWeight = 1000
)

// DefaultMaxResults caps the ranked candidate list.
const DefaultMaxResults = 10

// SearchRequest bounds one configuration search. Zero HorizonDays and
// MaxResults fall back to the defaults.
type SearchRequest struct {
	Params domain.FacilityParameters
	Policy domain.SimulationPolicy
	Bounds domain.SearchBounds

	HorizonDays int
	MaxResults  int
}

type capacityResult struct {
	candidates []domain.CandidateConfiguration
	err        error
}

// SearchConfigurations grid-searches cell capacity and cell count for
// configurations that sustain the planned daily volume, ranks the survivors
// and returns the top candidates.
//
// Candidates are independent of one another, so capacities fan out across a
// bounded worker pool; cancelling the context stops dispatching new
// capacities without unwinding any finished candidate.
func SearchConfigurations(ctx context.Context, req SearchRequest) ([]domain.CandidateConfiguration, error) {
	if err := req.Params.Validate(); err != nil {
		return nil, fmt.Errorf("search configurations: %w", err)
	}
	if err := req.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("search configurations: %w", err)
	}
	if err := req.Bounds.Validate(); err != nil {
		return nil, fmt.Errorf("search configurations: %w", err)
	}

	horizon := req.HorizonDays
	if horizon == 0 {
		horizon = DefaultSearchHorizonDays
	}
	if horizon < 1 {
		return nil, fmt.Errorf("search configurations: %w: horizon must be at least 1 day, got %d", domain.ErrInvalidParameter, horizon)
	}

	maxResults := req.MaxResults
	if maxResults == 0 {
		maxResults = DefaultMaxResults
	}

	bounds := req.Bounds
	capacities := make([]int, 0)
	for c := bounds.MinCellCapacity; c <= bounds.MaxCellCapacity; c += bounds.CapacityStep {
		capacities = append(capacities, c)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sem := make(chan struct{}, 4)
	resultsCh := make(chan capacityResult, len(capacities))
	var wg sync.WaitGroup

	for _, capacity := range capacities {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		go func(cellCapacity int) {
			sem <- struct{}{}
			defer wg.Done()
			defer func() { <-sem }()

			cands, err := searchCapacity(ctx, req, cellCapacity, horizon)
			if err != nil {
				resultsCh <- capacityResult{err: err}
				cancel()
				return
			}
			resultsCh <- capacityResult{candidates: cands}
		}(capacity)
	}

	wg.Wait()
	close(resultsCh)

	var results []domain.CandidateConfiguration
	var searchErr error
	for res := range resultsCh {
		if res.err != nil {
			if searchErr == nil {
				searchErr = res.err
			}
			continue
		}
		results = append(results, res.candidates...)
	}
	if searchErr != nil {
		return nil, fmt.Errorf("search configurations: %w", searchErr)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("search configurations: %w", err)
	}

	if len(results) == 0 {
		return nil, ErrNoViableConfiguration
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.CellCount != b.CellCount {
			return a.CellCount < b.CellCount
		}
		return a.CellCapacity < b.CellCapacity
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// searchCapacity walks the cell-count range for one cell capacity. Counting
// stops at the first feasible count: more cells never hurt feasibility for
// a fixed size (an assumption the max-volume self-check keeps honest for
// the volume axis).
func searchCapacity(
	ctx context.Context,
	req SearchRequest,
	cellCapacity int,
	horizon int,
) ([]domain.CandidateConfiguration, error) {
	cycle := EstimateCycle(req.Params, cellCapacity)

	if req.Bounds.MaxLoadingDays > 0 && cycle.LoadWorkdays > req.Bounds.MaxLoadingDays {
		return nil, nil
	}

	var out []domain.CandidateConfiguration

	for count := req.Bounds.MinCellCount; count <= req.Bounds.MaxCellCount; count++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		probe, err := RunProbe(req.Params, req.Policy, cellCapacity, count, horizon)
		if err != nil {
			return nil, fmt.Errorf("capacity %d count %d: %w", cellCapacity, count, err)
		}
		if !probe.Sustainable() {
			continue
		}

		maxVol, err := FindMaxVolume(req.Params, req.Policy, cellCapacity, count, horizon)
		if err != nil {
			return nil, fmt.Errorf("capacity %d count %d: %w", cellCapacity, count, err)
		}

		// The bisection can land below the planned volume in a
		// non-monotonic region; the planned volume is already verified,
		// so report at least that. Landing below it is itself proof the
		// feasible region is not monotonic.
		maxDaily := maxVol.MaxDailyVolume
		nonMonotonic := maxVol.NonMonotonic
		if maxDaily < req.Params.DailyIncomingVolume {
			maxDaily = req.Params.DailyIncomingVolume
			nonMonotonic = true
		}

		out = append(out, domain.CandidateConfiguration{
			CellCapacity:   cellCapacity,
			CellCount:      count,
			Cycle:          cycle,
			IdleDays:       probe.IdleDays,
			PeakBacklog:    probe.PeakBacklog,
			MaxDailyVolume: maxDaily,
			Headroom:       maxDaily - req.Params.DailyIncomingVolume,
			NonMonotonic:   nonMonotonic,
			Score: probe.IdleDays*scoreIdleDayWeight +
				count*scoreCellCountWeight +
				cellCapacity,
		})
		break
	}

	return out, nil
}
