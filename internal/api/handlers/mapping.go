package handlers

import (
	"facility-capacity-service/internal/api/dto"
	"facility-capacity-service/internal/domain"
)

func facilityFromRequest(req dto.FacilityRequest) domain.FacilityParameters {
	return domain.FacilityParameters{
		DailyIncomingVolume: req.DailyVolume,
		EquipmentCapacity:   req.EquipmentCapacity,
		UnloadCapacity:      req.UnloadCapacity,
		RipDays:             req.RipDays,
		TreatDays:           req.TreatDays,
		DryDays:             req.DryDays,
		Weekend: domain.WorkPolicy{
			Load:   weekendFromRequest(req.Weekend.Load),
			Rip:    weekendFromRequest(req.Weekend.Rip),
			Treat:  weekendFromRequest(req.Weekend.Treat),
			Dry:    weekendFromRequest(req.Weekend.Dry),
			Unload: weekendFromRequest(req.Weekend.Unload),
		},
	}
}

func weekendFromRequest(req dto.WeekendPolicyRequest) domain.WeekendPolicy {
	return domain.WeekendPolicy{Saturday: req.Saturday, Sunday: req.Sunday}
}

func policyFromRequest(req dto.PolicyRequest) domain.SimulationPolicy {
	return domain.SimulationPolicy{
		Reload:   domain.ReloadPolicy(req.Reload),
		LoadRate: domain.LoadRateBasis(req.LoadRate),
		Fill:     domain.FillPolicy(req.Fill),
	}
}

func candidateResponse(c domain.CandidateConfiguration) dto.CandidateResponse {
	return dto.CandidateResponse{
		CellCapacity:        c.CellCapacity,
		CellCount:           c.CellCount,
		TotalCapacity:       c.TotalCapacity(),
		LoadDays:            c.Cycle.LoadCalendarDays,
		CycleDays:           c.Cycle.TotalCalendarDays,
		IdleDays:            c.IdleDays,
		PeakBacklog:         c.PeakBacklog,
		MaxDailyVolume:      c.MaxDailyVolume,
		Headroom:            c.Headroom,
		MonotonicityWarning: c.NonMonotonic,
		Score:               c.Score,
	}
}
