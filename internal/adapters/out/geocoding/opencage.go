package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"martdelivery/internal/core/domain/model/kernel"
	"martdelivery/internal/core/ports"
	"martdelivery/internal/pkg/errs"
)

// DefaultOpenCageURL is the OpenCage forward geocoding endpoint.
const DefaultOpenCageURL = "https://api.opencagedata.com/geocode/v1/json"

// OpenCageGeocoder resolves addresses with the OpenCage Geocoding API.
type OpenCageGeocoder struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewOpenCageGeocoder creates a geocoder. An empty endpoint means DefaultOpenCageURL;
// a nil client means a client with a 10 second timeout.
func NewOpenCageGeocoder(apiKey, endpoint string, client *http.Client) *OpenCageGeocoder {
	if endpoint == "" {
		endpoint = DefaultOpenCageURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &OpenCageGeocoder{apiKey: apiKey, endpoint: endpoint, client: client}
}

type openCageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Components map[string]any `json:"components"`
		Formatted  string         `json:"formatted"`
	} `json:"results"`
	Status struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"status"`
}

func (g *OpenCageGeocoder) Resolve(ctx context.Context, address string) (ports.GeocodeResult, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("key", g.apiKey)
	query.Set("limit", "1")
	query.Set("no_annotations", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("geocoding: opencage: build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("%w: geocoding: opencage: %w", errs.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	var body openCageResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("%w: geocoding: opencage: decode response (http %d): %w", errs.ErrUpstreamUnavailable, resp.StatusCode, err)
	}
	if resp.StatusCode != http.StatusOK {
		return ports.GeocodeResult{}, fmt.Errorf("%w: geocoding: opencage: http %d: %s", errs.ErrUpstreamUnavailable, resp.StatusCode, body.Status.Message)
	}
	if len(body.Results) == 0 {
		return ports.GeocodeResult{}, ports.ErrAddressNotFound
	}

	best := body.Results[0]
	point, err := kernel.NewGeoPoint(best.Geometry.Lng, best.Geometry.Lat)
	if err != nil {
		return ports.GeocodeResult{}, fmt.Errorf("%w: geocoding: opencage returned an invalid point: %w", errs.ErrUpstreamUnavailable, err)
	}

	return ports.GeocodeResult{
		Point: point,
		Components: ports.AddressComponents{
			City:       firstComponent(best.Components, "city", "town", "village", "suburb"),
			State:      firstComponent(best.Components, "state"),
			Country:    firstComponent(best.Components, "country"),
			PostalCode: firstComponent(best.Components, "postcode", "pincode"),
		},
		FormattedAddress: best.Formatted,
	}, nil
}

// firstComponent returns the first non-empty string component among keys.
func firstComponent(components map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := components[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
