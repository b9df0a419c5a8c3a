package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/roadtrip-service/internal/config"
	"github.com/roadtrip-service/internal/domain"
	"github.com/roadtrip-service/internal/domain/repository"
	"go.uber.org/zap"
)

// Google Maps API response statuses treated as an empty outcome rather than a failure.
const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
	statusNotFound    = "NOT_FOUND"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a geo provider client backed by the Google Maps Web Service APIs.
func NewClient(cfg *config.GoogleConfig, logger *zap.Logger) repository.GeoRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// geocodeResponse is the wire format of the Geocoding API.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *client) Geocode(ctx context.Context, address string) (*domain.Coordinate, error) {
	params := url.Values{}
	params.Set("address", address)

	var resp geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status == statusZeroResults || len(resp.Results) == 0 {
		return nil, nil
	}
	if resp.Status != statusOK {
		return nil, fmt.Errorf("geocode: google API returned status %s", resp.Status)
	}

	loc := resp.Results[0].Geometry.Location
	return &domain.Coordinate{Lat: loc.Lat, Lon: loc.Lng}, nil
}

func (c *client) ReverseGeocode(ctx context.Context, lat, lon float64) (*string, error) {
	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lon))

	var resp geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status == statusZeroResults || len(resp.Results) == 0 {
		return nil, nil
	}
	if resp.Status != statusOK {
		return nil, fmt.Errorf("reverse geocode: google API returned status %s", resp.Status)
	}

	addr := resp.Results[0].FormattedAddress
	return &addr, nil
}

// placesNearbyResponse is the wire format of the Places Nearby Search API.
type placesNearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string `json:"place_id"`
		Name     string `json:"name"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *client) PlacesNearby(
	ctx context.Context,
	lat, lon float64,
	radiusMeters int,
	categoryTerm string,
) ([]domain.Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lon))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("type", categoryTerm)

	var resp placesNearbyResponse
	if err := c.get(ctx, "/place/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status == statusZeroResults {
		return nil, nil
	}
	if resp.Status != statusOK {
		return nil, fmt.Errorf("places nearby: google API returned status %s", resp.Status)
	}

	places := make([]domain.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, domain.Place{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Lat:     r.Geometry.Location.Lat,
			Lon:     r.Geometry.Location.Lng,
		})
	}

	return places, nil
}

// placeDetailsResponse is the wire format of the Place Details API.
type placeDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name       string   `json:"name"`
		PriceLevel *int     `json:"price_level"`
		Rating     *float64 `json:"rating"`
	} `json:"result"`
}

func (c *client) PlaceDetails(
	ctx context.Context,
	placeID string,
	fields []string,
) (*domain.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	if len(fields) > 0 {
		params.Set("fields", strings.Join(fields, ","))
	}

	var resp placeDetailsResponse
	if err := c.get(ctx, "/place/details/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status == statusZeroResults || resp.Status == statusNotFound {
		return nil, nil
	}
	if resp.Status != statusOK {
		return nil, fmt.Errorf("place details: google API returned status %s", resp.Status)
	}

	return &domain.PlaceDetails{
		Name:       resp.Result.Name,
		PriceLevel: resp.Result.PriceLevel,
		Rating:     resp.Result.Rating,
	}, nil
}

// directionsResponse is the wire format of the Directions API.
type directionsResponse struct {
	Status string `json:"status"`
	Routes []struct {
		Summary          string `json:"summary"`
		OverviewPolyline struct {
			Points string `json:"points"`
		} `json:"overview_polyline"`
		Legs []struct {
			Distance struct {
				Value int `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"` // seconds
			} `json:"duration"`
			StartAddress string `json:"start_address"`
			EndAddress   string `json:"end_address"`
		} `json:"legs"`
	} `json:"routes"`
}

func (c *client) Route(
	ctx context.Context,
	origin, destination domain.Coordinate,
	waypoints []domain.Coordinate,
	mode domain.TravelMode,
	departureTime *time.Time,
) (*domain.ProviderRoute, error) {
	params := url.Values{}
	params.Set("origin", fmt.Sprintf("%f,%f", origin.Lat, origin.Lon))
	params.Set("destination", fmt.Sprintf("%f,%f", destination.Lat, destination.Lon))
	params.Set("mode", string(mode))

	// Interior waypoints are via-points in caller order. No optimize:true - the
	// provider must not reorder them.
	if len(waypoints) > 0 {
		points := make([]string, len(waypoints))
		for i, wp := range waypoints {
			points[i] = fmt.Sprintf("%f,%f", wp.Lat, wp.Lon)
		}
		params.Set("waypoints", strings.Join(points, "|"))
	}

	if departureTime != nil {
		params.Set("departure_time", fmt.Sprintf("%d", departureTime.Unix()))
	}

	var resp directionsResponse
	if err := c.get(ctx, "/directions/json", params, &resp); err != nil {
		return nil, err
	}

	if resp.Status == statusZeroResults || len(resp.Routes) == 0 {
		return nil, nil
	}
	if resp.Status != statusOK {
		return nil, fmt.Errorf("directions: google API returned status %s", resp.Status)
	}

	route := resp.Routes[0]
	legs := make([]domain.RouteLeg, 0, len(route.Legs))
	for _, leg := range route.Legs {
		legs = append(legs, domain.RouteLeg{
			DistanceMeters:  leg.Distance.Value,
			DurationSeconds: leg.Duration.Value,
			StartAddress:    leg.StartAddress,
			EndAddress:      leg.EndAddress,
		})
	}

	return &domain.ProviderRoute{
		Summary:  route.Summary,
		Polyline: route.OverviewPolyline.Points,
		Legs:     legs,
	}, nil
}

// get executes one API call and decodes the JSON body into out.
func (c *client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	c.logger.Debug("Calling Google Maps API", zap.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Google Maps API returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("google API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
