package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"voyago/internal/models/response_models"
)

// GeocoderInterface resolves a free-text place query to coordinates.
// A query that matches nothing returns (nil, nil); errors are reserved for
// transport and decoding failures.
type GeocoderInterface interface {
	Lookup(ctx context.Context, query string) (*response_models.GeoCoordinates, error)
}

const nominatimBaseURL = "https://nominatim.openstreetmap.org"

// NominatimGeocoder queries the public Nominatim search endpoint. The
// client timeout is the only deadline; callers add none of their own.
type NominatimGeocoder struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewNominatimGeocoder() *NominatimGeocoder {
	return &NominatimGeocoder{
		baseURL:   nominatimBaseURL,
		userAgent: "voyago/1.0 (trip planner)",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewNominatimGeocoderWithBase exists for tests pointing at a local server.
func NewNominatimGeocoderWithBase(baseURL string) *NominatimGeocoder {
	g := NewNominatimGeocoder()
	g.baseURL = baseURL
	return g
}

func (g *NominatimGeocoder) Lookup(ctx context.Context, query string) (*response_models.GeoCoordinates, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", g.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nominatim: unexpected status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("nominatim: decode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim: bad latitude %q", results[0].Lat)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("nominatim: bad longitude %q", results[0].Lon)
	}

	return &response_models.GeoCoordinates{Lat: lat, Lng: lng}, nil
}
