package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrEmptyStops = New(
		"EMPTY_STOPS",
		"At least one stop is required",
		http.StatusBadRequest,
	)

	ErrNotEnoughWaypoints = New(
		"NOT_ENOUGH_WAYPOINTS",
		"At least two waypoints are required for routing",
		http.StatusBadRequest,
	)

	ErrTripNotFound = New(
		"TRIP_NOT_FOUND",
		"Trip not found",
		http.StatusNotFound,
	)

	ErrStopNotFound = New(
		"STOP_NOT_FOUND",
		"Stop not found",
		http.StatusNotFound,
	)

	// ErrRouteNotFound is the unroutable outcome: the provider answered but no
	// drivable path connects the given waypoints. Distinct from ErrGeoProvider.
	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"No route connects the given waypoints",
		http.StatusNotFound,
	)

	ErrAddressNotFound = New(
		"ADDRESS_NOT_FOUND",
		"No geocoding result for the given input",
		http.StatusNotFound,
	)

	ErrGeoProviderUnavailable = New(
		"GEO_PROVIDER_UNAVAILABLE",
		"Geo provider is not configured",
		http.StatusServiceUnavailable,
	)

	ErrGeoProvider = New(
		"GEO_PROVIDER_ERROR",
		"Geo provider request failed",
		http.StatusBadGateway,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
