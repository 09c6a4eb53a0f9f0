package domain

import (
	"encoding/json"
	"time"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// VolunteerApplication is one accepted application for an event. The engine
// treats it as read-only input.
type VolunteerApplication struct {
	ID               int64             `json:"id"`
	EventID          int64             `json:"eventID"`
	UserID           int64             `json:"userID"`
	FullName         string            `json:"fullName"`
	Email            string            `json:"email"`
	Phone            string            `json:"phone"`
	Availability     json.RawMessage   `json:"availability"`
	Experience       string            `json:"experience"`
	Motivation       string            `json:"motivation"`
	PreferredTeamIDs []int64           `json:"preferredTeamIDs"`
	Status           ApplicationStatus `json:"status"`
	CreatedAt        time.Time         `json:"createdAt"`
	Version          int32             `json:"-"`
}
