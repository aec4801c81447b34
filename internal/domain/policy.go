package domain

import "fmt"

// The engine's loading and unloading rules have a few historically divergent
// readings. Each is a named, testable policy rather than a silent choice.

// ReloadPolicy decides when a cell emptied during today's unload step may
// start loading again.
type ReloadPolicy string

const (
	// ReloadNextDay stages the Empty transition; the cell becomes loadable
	// at the start of the following day. This is the canonical rule.
	ReloadNextDay ReloadPolicy = "next-day"
	// ReloadSameDay flips the cell straight to Empty so the load step later
	// in the same day may claim it.
	ReloadSameDay ReloadPolicy = "same-day"
)

// LoadRateBasis decides how much volume the loader may move per work day.
type LoadRateBasis string

const (
	// LoadRateIncoming caps loading at the daily incoming volume: loading
	// can never outrun what physically arrived. Canonical.
	LoadRateIncoming LoadRateBasis = "incoming"
	// LoadRateEquipment caps loading at the full equipment capacity.
	LoadRateEquipment LoadRateBasis = "equipment"
	// LoadRateSurplus caps loading at equipment capacity minus the daily
	// incoming volume.
	LoadRateSurplus LoadRateBasis = "surplus"
)

// FillPolicy decides whether the load step loops after filling a cell.
type FillPolicy string

const (
	// FillUntilExhausted keeps loading while rate and backlog remain, so a
	// second cell may fill on the same day. Canonical.
	FillUntilExhausted FillPolicy = "until-exhausted"
	// FillOneCellPerDay stops the load step once a single cell fills.
	FillOneCellPerDay FillPolicy = "one-cell-per-day"
)

// SimulationPolicy bundles the rule variants in force for one run.
type SimulationPolicy struct {
	Reload   ReloadPolicy
	LoadRate LoadRateBasis
	Fill     FillPolicy
}

// DefaultPolicy returns the canonical rule set.
func DefaultPolicy() SimulationPolicy {
	return SimulationPolicy{
		Reload:   ReloadNextDay,
		LoadRate: LoadRateIncoming,
		Fill:     FillUntilExhausted,
	}
}

// Validate rejects unknown policy names (empty fields fall back to the
// canonical rule).
func (sp SimulationPolicy) Validate() error {
	switch sp.Reload {
	case "", ReloadNextDay, ReloadSameDay:
	default:
		return fmt.Errorf("%w: unknown reload policy %q", ErrInvalidParameter, sp.Reload)
	}
	switch sp.LoadRate {
	case "", LoadRateIncoming, LoadRateEquipment, LoadRateSurplus:
	default:
		return fmt.Errorf("%w: unknown load rate basis %q", ErrInvalidParameter, sp.LoadRate)
	}
	switch sp.Fill {
	case "", FillUntilExhausted, FillOneCellPerDay:
	default:
		return fmt.Errorf("%w: unknown fill policy %q", ErrInvalidParameter, sp.Fill)
	}
	return nil
}

// Normalized returns the policy with empty fields replaced by the canonical
// rules.
func (sp SimulationPolicy) Normalized() SimulationPolicy {
	def := DefaultPolicy()
	if sp.Reload == "" {
		sp.Reload = def.Reload
	}
	if sp.LoadRate == "" {
		sp.LoadRate = def.LoadRate
	}
	if sp.Fill == "" {
		sp.Fill = def.Fill
	}
	return sp
}

// LoadRateFor resolves the per-day load ceiling for a parameter set.
func (sp SimulationPolicy) LoadRateFor(p FacilityParameters) int {
	switch sp.LoadRate {
	case LoadRateEquipment:
		return p.EquipmentCapacity
	case LoadRateSurplus:
		return p.EquipmentCapacity - p.DailyIncomingVolume
	}
	return p.DailyIncomingVolume
}
