package dto

type SearchBoundsRequest struct {
	MinCellCapacity int `json:"min_cell_capacity"`
	MaxCellCapacity int `json:"max_cell_capacity"`
	CapacityStep    int `json:"capacity_step"`
	MinCellCount    int `json:"min_cell_count"`
	MaxCellCount    int `json:"max_cell_count"`
	MaxLoadingDays  int `json:"max_loading_days"`
}

type OptimizeRequest struct {
	Facility FacilityRequest     `json:"facility"`
	Bounds   SearchBoundsRequest `json:"bounds"`
	Policy   PolicyRequest       `json:"policy"`

	HorizonDays int `json:"horizon_days"`
	MaxResults  int `json:"max_results"`
}

type CandidateResponse struct {
	CellCapacity  int `json:"cell_capacity"`
	CellCount     int `json:"cell_count"`
	TotalCapacity int `json:"total_capacity"`

	LoadDays  int `json:"load_days"`
	CycleDays int `json:"cycle_days"`

	IdleDays    int `json:"idle_days"`
	PeakBacklog int `json:"peak_backlog"`

	MaxDailyVolume      int  `json:"max_daily_volume"`
	Headroom            int  `json:"headroom"`
	MonotonicityWarning bool `json:"monotonicity_warning"`

	Score int `json:"score"`
}

type OptimizeResponse struct {
	RunID      string              `json:"run_id,omitempty"`
	Viable     bool                `json:"viable"`
	Candidates []CandidateResponse `json:"candidates"`
}
