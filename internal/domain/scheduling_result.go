package domain

type SchedulingStats struct {
	TotalAssignments         int     `json:"totalAssignments"`
	AverageHoursPerVolunteer float64 `json:"averageHoursPerVolunteer"`
	SatisfactionRate         float64 `json:"satisfactionRate"` // 0-1, mean confidence
	BalanceScore             float64 `json:"balanceScore"`     // 0-1, 1 = perfectly even hours
}

// SchedulingResult is the full report of one run. It has no lifecycle of its
// own: the caller either renders it as a preview or commits the assignments.
type SchedulingResult struct {
	Assignments          []Assignment    `json:"assignments"`
	UnassignedVolunteers []int64         `json:"unassignedVolunteers"`
	UnfilledSlots        []int64         `json:"unfilledSlots"`
	Stats                SchedulingStats `json:"stats"`
	Warnings             []string        `json:"warnings"`
	Recommendations      []string        `json:"recommendations"`
}
