package domain

import (
	"time"

	"github.com/google/uuid"
)

// Assignment pairs a volunteer with a slot. Created only by the engine; the
// repository stamps the run id when a roster is committed.
type Assignment struct {
	ID          int64     `json:"id"`
	EventID     int64     `json:"eventID"`
	VolunteerID int64     `json:"volunteerID"`
	SlotID      int64     `json:"slotID"`
	TeamID      *int64    `json:"teamID"`
	Score       int       `json:"score"`
	Confidence  int       `json:"confidence"` // 0-100, display only
	RunID       uuid.UUID `json:"runID"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SchedulingRun is the audit record for one committed run: who triggered it,
// when, and the headline numbers of the roster it produced.
type SchedulingRun struct {
	ID               uuid.UUID `json:"id"`
	EventID          int64     `json:"eventID"`
	TriggeredBy      string    `json:"triggeredBy"`
	TotalAssignments int       `json:"totalAssignments"`
	SatisfactionRate float64   `json:"satisfactionRate"`
	BalanceScore     float64   `json:"balanceScore"`
	CreatedAt        time.Time `json:"createdAt"`
}
