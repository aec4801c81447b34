package main

import (
	"facility-capacity-service/internal/domain"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// scenarioFile is the YAML shape plantool accepts. Optional sections fall
// back to the same defaults the HTTP API uses.
type scenarioFile struct {
	Facility struct {
		DailyVolume       int `yaml:"daily_volume"`
		EquipmentCapacity int `yaml:"equipment_capacity"`
		UnloadCapacity    int `yaml:"unload_capacity"`
		RipDays           int `yaml:"rip_days"`
		TreatDays         int `yaml:"treat_days"`
		DryDays           int `yaml:"dry_days"`
		Weekend           struct {
			Load   weekendYAML `yaml:"load"`
			Rip    weekendYAML `yaml:"rip"`
			Treat  weekendYAML `yaml:"treat"`
			Dry    weekendYAML `yaml:"dry"`
			Unload weekendYAML `yaml:"unload"`
		} `yaml:"weekend"`
	} `yaml:"facility"`

	Policy struct {
		Reload   string `yaml:"reload"`
		LoadRate string `yaml:"load_rate"`
		Fill     string `yaml:"fill"`
	} `yaml:"policy"`

	Bounds struct {
		MinCellCapacity int `yaml:"min_cell_capacity"`
		MaxCellCapacity int `yaml:"max_cell_capacity"`
		CapacityStep    int `yaml:"capacity_step"`
		MinCellCount    int `yaml:"min_cell_count"`
		MaxCellCount    int `yaml:"max_cell_count"`
		MaxLoadingDays  int `yaml:"max_loading_days"`
	} `yaml:"bounds"`

	HorizonDays int `yaml:"horizon_days"`
}

type weekendYAML struct {
	Saturday bool `yaml:"saturday"`
	Sunday   bool `yaml:"sunday"`
}

// loadScenario reads and decodes a scenario file. Semantic validation is
// left to the search itself so CLI and API reject inputs identically.
func loadScenario(path string) (*scenarioFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load scenario: %w", err)
	}

	var s scenarioFile
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("load scenario: parse %q: %w", path, err)
	}

	return &s, nil
}

func (s *scenarioFile) facility() domain.FacilityParameters {
	f := s.Facility
	return domain.FacilityParameters{
		DailyIncomingVolume: f.DailyVolume,
		EquipmentCapacity:   f.EquipmentCapacity,
		UnloadCapacity:      f.UnloadCapacity,
		RipDays:             f.RipDays,
		TreatDays:           f.TreatDays,
		DryDays:             f.DryDays,
		Weekend: domain.WorkPolicy{
			Load:   domain.WeekendPolicy(f.Weekend.Load),
			Rip:    domain.WeekendPolicy(f.Weekend.Rip),
			Treat:  domain.WeekendPolicy(f.Weekend.Treat),
			Dry:    domain.WeekendPolicy(f.Weekend.Dry),
			Unload: domain.WeekendPolicy(f.Weekend.Unload),
		},
	}
}

func (s *scenarioFile) policy() domain.SimulationPolicy {
	return domain.SimulationPolicy{
		Reload:   domain.ReloadPolicy(s.Policy.Reload),
		LoadRate: domain.LoadRateBasis(s.Policy.LoadRate),
		Fill:     domain.FillPolicy(s.Policy.Fill),
	}.Normalized()
}

func (s *scenarioFile) bounds() domain.SearchBounds {
	b := s.Bounds
	out := domain.SearchBounds{
		MinCellCapacity: b.MinCellCapacity,
		MaxCellCapacity: b.MaxCellCapacity,
		CapacityStep:    b.CapacityStep,
		MinCellCount:    b.MinCellCount,
		MaxCellCount:    b.MaxCellCount,
		MaxLoadingDays:  b.MaxLoadingDays,
	}
	if out.CapacityStep == 0 {
		out.CapacityStep = 100
	}
	if out.MinCellCount == 0 {
		out.MinCellCount = 2
	}
	if out.MaxCellCount == 0 {
		out.MaxCellCount = 12
	}
	return out
}
