package dto

import (
	"time"

	"github.com/roadtrip-service/internal/domain"
)

// StopResponse - one stop of a trip as exposed over the API
type StopResponse struct {
	Location []float64 `json:"location"` // [lat, lon]
	Type     string    `json:"type"`
	Image    string    `json:"image"`
	Time     int       `json:"time"`
	Cost     float64   `json:"cost"`
}

// TripResponse - a trip with its ordered stops and derived totals
type TripResponse struct {
	ID          string         `json:"id"`
	UserID      string         `json:"user_id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	Stops       []StopResponse `json:"stops"`
	TotalStops  int            `json:"total_stops"`
	TotalTime   int            `json:"total_time"`
	TotalCost   float64        `json:"total_cost"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ConvertTrip maps a domain trip to its API representation.
func ConvertTrip(trip *domain.Trip) TripResponse {
	stops := make([]StopResponse, 0, len(trip.Stops))
	for _, stop := range trip.Stops {
		stops = append(stops, StopResponse{
			Location: []float64{stop.Latitude, stop.Longitude},
			Type:     stop.Category.String(),
			Image:    stop.Category.Icon(),
			Time:     stop.TimeMinutes,
			Cost:     stop.Cost,
		})
	}

	return TripResponse{
		ID:          trip.ID.String(),
		UserID:      trip.UserID,
		Name:        trip.Name,
		Description: trip.Description,
		ImageURL:    trip.ImageURL,
		Stops:       stops,
		TotalStops:  trip.TotalStops(),
		TotalTime:   trip.TotalTime(),
		TotalCost:   trip.TotalCost(),
		CreatedAt:   trip.CreatedAt,
	}
}

// StopPriceBreakdown - estimated price of one stop within a budget
type StopPriceBreakdown struct {
	Index          int       `json:"index"`
	Location       []float64 `json:"location"`
	Type           string    `json:"type"`
	EstimatedPrice float64   `json:"estimated_price"`
}

// BudgetResponse - full cost breakdown of a trip
type BudgetResponse struct {
	TotalCost float64              `json:"total_cost"`
	Stops     []StopPriceBreakdown `json:"stops"`
	Currency  string               `json:"currency"`
}

// StopPriceResponse - estimated price of a single stop
type StopPriceResponse struct {
	EstimatedPrice float64   `json:"estimated_price"`
	Type           string    `json:"type"`
	Location       []float64 `json:"location"`
	Currency       string    `json:"currency"`
}

// DefaultPricesResponse - fallback price table per category
type DefaultPricesResponse struct {
	DefaultPrices map[string]float64 `json:"default_prices"`
	Currency      string             `json:"currency"`
}

// GeocodeResponse - coordinates of the first geocoding match
type GeocodeResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ReverseGeocodeResponse - formatted address of the first match
type ReverseGeocodeResponse struct {
	Address string `json:"address"`
}

// DirectionsResponse - one aggregated route with folded totals
type DirectionsResponse struct {
	Route domain.Route `json:"route"`
}

// UserTrips - trips of one user for the admin listing
type UserTrips struct {
	UserID    string         `json:"user_id"`
	TripCount int            `json:"trip_count"`
	Trips     []TripResponse `json:"trips"`
}

// AdminTripsResponse - all persisted trips grouped by user
type AdminTripsResponse struct {
	Users []UserTrips `json:"users"`
	Total int         `json:"total"` // total trips across all users
}
