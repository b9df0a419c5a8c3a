package domain

import "strings"

// StopCategory is a closed enumeration of waypoint categories.
type StopCategory string

const (
	StopCategoryFood          StopCategory = "FOOD"
	StopCategoryRest          StopCategory = "REST"
	StopCategoryFuel          StopCategory = "FUEL"
	StopCategoryEntertainment StopCategory = "ENTERTAINMENT"
	StopCategoryMisc          StopCategory = "MISC"
)

// stopCategoryIcons maps each category to its display image, relative to the frontend root.
var stopCategoryIcons = map[StopCategory]string{
	StopCategoryFood:          "images/stop-food.png",
	StopCategoryRest:          "images/stop-rest.png",
	StopCategoryFuel:          "images/stop-fuel.png",
	StopCategoryEntertainment: "images/stop-entertainment.png",
	StopCategoryMisc:          "images/stop-misc.png",
}

// ParseStopCategory normalizes user input to a canonical category.
// Input is case-insensitive; anything unrecognized becomes MISC, never an error.
func ParseStopCategory(s string) StopCategory {
	switch StopCategory(strings.ToUpper(strings.TrimSpace(s))) {
	case StopCategoryFood:
		return StopCategoryFood
	case StopCategoryRest:
		return StopCategoryRest
	case StopCategoryFuel:
		return StopCategoryFuel
	case StopCategoryEntertainment:
		return StopCategoryEntertainment
	default:
		return StopCategoryMisc
	}
}

func (c StopCategory) String() string {
	return string(c)
}

// Icon returns the display image path for the category.
func (c StopCategory) Icon() string {
	if icon, ok := stopCategoryIcons[c]; ok {
		return icon
	}
	return stopCategoryIcons[StopCategoryMisc]
}

// ValidStopCategories returns the closed set of categories.
func ValidStopCategories() []StopCategory {
	return []StopCategory{
		StopCategoryFood,
		StopCategoryRest,
		StopCategoryFuel,
		StopCategoryEntertainment,
		StopCategoryMisc,
	}
}

// Stop is one waypoint of a trip.
type Stop struct {
	Latitude    float64      `json:"latitude" db:"latitude"`
	Longitude   float64      `json:"longitude" db:"longitude"`
	Category    StopCategory `json:"category" db:"stop_type"`
	TimeMinutes int          `json:"time_minutes" db:"time_minutes"` // dwell time
	Cost        float64      `json:"cost" db:"cost"`                 // USD, 2-decimal
}

// Coordinate returns the stop location as a coordinate pair.
func (s Stop) Coordinate() Coordinate {
	return Coordinate{Lat: s.Latitude, Lon: s.Longitude}
}
