package dto

type WeekendPolicyRequest struct {
	Saturday bool `json:"saturday"`
	Sunday   bool `json:"sunday"`
}

type WorkPolicyRequest struct {
	Load   WeekendPolicyRequest `json:"load"`
	Rip    WeekendPolicyRequest `json:"rip"`
	Treat  WeekendPolicyRequest `json:"treat"`
	Dry    WeekendPolicyRequest `json:"dry"`
	Unload WeekendPolicyRequest `json:"unload"`
}

type FacilityRequest struct {
	DailyVolume       int `json:"daily_volume"`
	EquipmentCapacity int `json:"equipment_capacity"`
	UnloadCapacity    int `json:"unload_capacity"`

	RipDays   int `json:"rip_days"`
	TreatDays int `json:"treat_days"`
	DryDays   int `json:"dry_days"`

	Weekend WorkPolicyRequest `json:"weekend"`
}

// Optional simulation rule variants; empty fields use the canonical rules.
type PolicyRequest struct {
	Reload   string `json:"reload"`
	LoadRate string `json:"load_rate"`
	Fill     string `json:"fill"`
}
