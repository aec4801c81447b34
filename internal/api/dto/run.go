package dto

import "time"

type RunResponse struct {
	RunID     string    `json:"run_id"`
	CreatedAt time.Time `json:"created_at"`

	DailyVolume       int `json:"daily_volume"`
	EquipmentCapacity int `json:"equipment_capacity"`
	HorizonDays       int `json:"horizon_days"`

	Candidates []CandidateResponse `json:"candidates"`
}

type ListRunsResponse struct {
	Runs []RunResponse `json:"runs"`
}
