package dto

type ScheduleRequest struct {
	Facility FacilityRequest `json:"facility"`
	Policy   PolicyRequest   `json:"policy"`

	CellCapacity int `json:"cell_capacity"`
	CellCount    int `json:"cell_count"`

	// Calendar date in YYYY-MM-DD form.
	StartDate string `json:"start_date"`
	Days      int    `json:"days"`
}

type CellEntryResponse struct {
	Cell     int    `json:"cell"`
	Label    string `json:"label"`
	Loaded   int    `json:"loaded"`
	Unloaded int    `json:"unloaded"`
}

type DayRecordResponse struct {
	Date    string              `json:"date"`
	Day     string              `json:"day"`
	Cells   []CellEntryResponse `json:"cells"`
	In      int                 `json:"in"`
	Out     int                 `json:"out"`
	Backlog int                 `json:"backlog"`
	CumIn   int                 `json:"cum_in"`
	CumOut  int                 `json:"cum_out"`
	Idle    bool                `json:"idle"`
}

type ScheduleResponse struct {
	CellCapacity int                 `json:"cell_capacity"`
	CellCount    int                 `json:"cell_count"`
	Days         []DayRecordResponse `json:"days"`
}
