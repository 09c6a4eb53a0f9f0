package domain

// SchedulingConstraints is the tunable policy record for one scheduling run.
// All numeric fields must be non-negative; the engine rejects anything else
// at construction time.
type SchedulingConstraints struct {
	MaxHoursPerVolunteer      float64 `json:"maxHoursPerVolunteer" yaml:"maxHoursPerVolunteer" validate:"gte=0"`
	MinHoursPerVolunteer      float64 `json:"minHoursPerVolunteer" yaml:"minHoursPerVolunteer" validate:"gte=0"`
	MaxHoursPerDay            float64 `json:"maxHoursPerDay" yaml:"maxHoursPerDay" validate:"gte=0"`
	MinHoursPerDay            float64 `json:"minHoursPerDay" yaml:"minHoursPerDay" validate:"gte=0"`
	BalanceTeams              bool    `json:"balanceTeams" yaml:"balanceTeams"`
	PrioritizeExperience      bool    `json:"prioritizeExperience" yaml:"prioritizeExperience"`
	RespectStrictAvailability bool    `json:"respectStrictAvailability" yaml:"respectStrictAvailability"`
	AllowOvertime             bool    `json:"allowOvertime" yaml:"allowOvertime"`
	MaxOvertimeHours          float64 `json:"maxOvertimeHours" yaml:"maxOvertimeHours" validate:"gte=0"`
}

func DefaultConstraints() SchedulingConstraints {
	return SchedulingConstraints{
		MaxHoursPerVolunteer:      12,
		MinHoursPerVolunteer:      2,
		MaxHoursPerDay:            8,
		MinHoursPerDay:            1,
		BalanceTeams:              true,
		PrioritizeExperience:      true,
		RespectStrictAvailability: true,
		AllowOvertime:             false,
		MaxOvertimeHours:          2,
	}
}

// ConstraintOverrides carries partial caller-supplied values. Nil fields keep
// their defaults, so a caller can tune one knob without restating the rest.
type ConstraintOverrides struct {
	MaxHoursPerVolunteer      *float64 `json:"maxHoursPerVolunteer" yaml:"maxHoursPerVolunteer"`
	MinHoursPerVolunteer      *float64 `json:"minHoursPerVolunteer" yaml:"minHoursPerVolunteer"`
	MaxHoursPerDay            *float64 `json:"maxHoursPerDay" yaml:"maxHoursPerDay"`
	MinHoursPerDay            *float64 `json:"minHoursPerDay" yaml:"minHoursPerDay"`
	BalanceTeams              *bool    `json:"balanceTeams" yaml:"balanceTeams"`
	PrioritizeExperience      *bool    `json:"prioritizeExperience" yaml:"prioritizeExperience"`
	RespectStrictAvailability *bool    `json:"respectStrictAvailability" yaml:"respectStrictAvailability"`
	AllowOvertime             *bool    `json:"allowOvertime" yaml:"allowOvertime"`
	MaxOvertimeHours          *float64 `json:"maxOvertimeHours" yaml:"maxOvertimeHours"`
}

// MergeConstraints lays the overrides over the defaults.
func MergeConstraints(overrides ConstraintOverrides) SchedulingConstraints {
	cons := DefaultConstraints()

	if overrides.MaxHoursPerVolunteer != nil {
		cons.MaxHoursPerVolunteer = *overrides.MaxHoursPerVolunteer
	}
	if overrides.MinHoursPerVolunteer != nil {
		cons.MinHoursPerVolunteer = *overrides.MinHoursPerVolunteer
	}
	if overrides.MaxHoursPerDay != nil {
		cons.MaxHoursPerDay = *overrides.MaxHoursPerDay
	}
	if overrides.MinHoursPerDay != nil {
		cons.MinHoursPerDay = *overrides.MinHoursPerDay
	}
	if overrides.BalanceTeams != nil {
		cons.BalanceTeams = *overrides.BalanceTeams
	}
	if overrides.PrioritizeExperience != nil {
		cons.PrioritizeExperience = *overrides.PrioritizeExperience
	}
	if overrides.RespectStrictAvailability != nil {
		cons.RespectStrictAvailability = *overrides.RespectStrictAvailability
	}
	if overrides.AllowOvertime != nil {
		cons.AllowOvertime = *overrides.AllowOvertime
	}
	if overrides.MaxOvertimeHours != nil {
		cons.MaxOvertimeHours = *overrides.MaxOvertimeHours
	}

	return cons
}
