package domain

import "time"

// TimeSlot is one shift that needs volunteers. The engine never mutates the
// slot values it is handed; it tracks remaining capacity in its own state.
type TimeSlot struct {
	ID                 int64     `json:"id"`
	EventID            int64     `json:"eventID"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	StartTime          time.Time `json:"startTime"`
	EndTime            time.Time `json:"endTime"`
	TeamID             *int64    `json:"teamID"`
	MaxVolunteers      int32     `json:"maxVolunteers"`
	AssignedVolunteers int32     `json:"assignedVolunteers"`
	RequiredSkills     []string  `json:"requiredSkills"`
	Priority           int32     `json:"priority"`
	CreatedAt          time.Time `json:"createdAt"`
	Version            int32     `json:"-"`
}

func (s *TimeSlot) DurationHours() float64 {
	return s.EndTime.Sub(s.StartTime).Hours()
}
