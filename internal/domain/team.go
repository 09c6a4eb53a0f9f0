package domain

import "time"

// Team is referenced by slots and by volunteer preferences. The color only
// matters to the frontend.
type Team struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"eventID"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
