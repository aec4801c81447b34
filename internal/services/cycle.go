package services

import (
	"facility-capacity-service/internal/domain"
)

// EstimateCycle computes the calendar days for one cell to traverse
// Load -> Rip -> Treat -> Dry -> Unload once.
//
// Loading is paced by the incoming volume (a cell cannot fill faster than
// material arrives); unloading is paced by the equipment capacity. Weekend
// policies stretch workdays into calendar days, anchored on the same fixed
// date the probes use so the estimate is deterministic.
func EstimateCycle(params domain.FacilityParameters, cellCapacity int) domain.CycleEstimate {
	weekend := params.Weekend

	loadWorkdays := ceilDiv(cellCapacity, params.DailyIncomingVolume)
	unloadWorkdays := ceilDiv(cellCapacity, params.EquipmentCapacity)

	est := domain.CycleEstimate{
		LoadWorkdays:       loadWorkdays,
		LoadCalendarDays:   domain.CalendarDaysForWorkdays(loadWorkdays, probeAnchor, weekend.Load),
		RipCalendarDays:    domain.CalendarDaysForWorkdays(params.RipDays, probeAnchor, weekend.Rip),
		TreatCalendarDays:  domain.CalendarDaysForWorkdays(params.TreatDays, probeAnchor, weekend.Treat),
		DryCalendarDays:    domain.CalendarDaysForWorkdays(params.DryDays, probeAnchor, weekend.Dry),
		UnloadWorkdays:     unloadWorkdays,
		UnloadCalendarDays: domain.CalendarDaysForWorkdays(unloadWorkdays, probeAnchor, weekend.Unload),
	}

	est.TotalCalendarDays = est.LoadCalendarDays +
		est.RipCalendarDays +
		est.TreatCalendarDays +
		est.DryCalendarDays +
		est.UnloadCalendarDays

	return est
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
