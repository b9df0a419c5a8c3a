package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is an ordered itinerary of stops owned by a single user.
// Stop order is a dense zero-based sequence: the position in Stops is the
// persisted stop_order, so removing a stop renumbers everything after it.
type Trip struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description" db:"description"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Stops       []Stop    `json:"stops"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// AddStop appends the stop at the next dense index.
func (t *Trip) AddStop(stop Stop) {
	t.Stops = append(t.Stops, stop)
}

// RemoveStop deletes the stop at index and shifts later stops down by one.
func (t *Trip) RemoveStop(index int) bool {
	if index < 0 || index >= len(t.Stops) {
		return false
	}
	t.Stops = append(t.Stops[:index], t.Stops[index+1:]...)
	return true
}

// Stop returns the stop at index, or nil when out of range.
func (t *Trip) Stop(index int) *Stop {
	if index < 0 || index >= len(t.Stops) {
		return nil
	}
	return &t.Stops[index]
}

func (t *Trip) TotalStops() int {
	return len(t.Stops)
}

// TotalTime is the sum of stop dwell times in minutes.
func (t *Trip) TotalTime() int {
	total := 0
	for _, stop := range t.Stops {
		total += stop.TimeMinutes
	}
	return total
}

// TotalCost is the sum of stop costs in dollars.
func (t *Trip) TotalCost() float64 {
	total := 0.0
	for _, stop := range t.Stops {
		total += stop.Cost
	}
	return total
}

// Waypoints returns the ordered stop coordinates for routing.
func (t *Trip) Waypoints() []Coordinate {
	points := make([]Coordinate, len(t.Stops))
	for i, stop := range t.Stops {
		points[i] = stop.Coordinate()
	}
	return points
}

// TripMetadata carries a partial update of trip fields; nil means unchanged.
type TripMetadata struct {
	Name        *string
	Description *string
	ImageURL    *string
}
