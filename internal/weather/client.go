package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultGeoBaseURL     = "https://api.openweathermap.org/geo/1.0"
	defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
)

// LocationNotFoundError means geocoding produced no match for a location name.
type LocationNotFoundError struct {
	Name string
}

func (e *LocationNotFoundError) Error() string {
	return fmt.Sprintf("could not find coordinates for location: %s", e.Name)
}

// Coordinates is a geocoded latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Conditions is the current weather at a coordinate pair, metric units.
type Conditions struct {
	Temperature float64
	Description string
	Icon        string
}

// Provider abstracts the external weather data source.
type Provider interface {
	Geocode(ctx context.Context, name string) (Coordinates, error)
	Current(ctx context.Context, coord Coordinates) (Conditions, error)
}

// Client talks to an OpenWeatherMap-compatible API.
type Client struct {
	apiKey         string
	geoBaseURL     string
	weatherBaseURL string
	httpClient     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the geocoding and weather API base URLs.
func WithBaseURLs(geoBase, weatherBase string) Option {
	return func(c *Client) {
		c.geoBaseURL = geoBase
		c.weatherBaseURL = weatherBase
	}
}

// WithHTTPClient overrides the HTTP client used for provider calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a weather provider client with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:         apiKey,
		geoBaseURL:     defaultGeoBaseURL,
		weatherBaseURL: defaultWeatherBaseURL,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Geocode resolves a location name to its single best coordinate match.
func (c *Client) Geocode(ctx context.Context, name string) (Coordinates, error) {
	q := url.Values{}
	q.Set("q", name)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var matches []Coordinates
	if err := c.getJSON(ctx, c.geoBaseURL+"/direct?"+q.Encode(), &matches); err != nil {
		return Coordinates{}, fmt.Errorf("geocoding %q: %w", name, err)
	}

	if len(matches) == 0 {
		return Coordinates{}, &LocationNotFoundError{Name: name}
	}

	return matches[0], nil
}

// currentResponse mirrors the subset of the provider payload we consume.
type currentResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

// Current fetches current conditions for a coordinate pair in metric units.
func (c *Client) Current(ctx context.Context, coord Coordinates) (Conditions, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", coord.Lat))
	q.Set("lon", fmt.Sprintf("%f", coord.Lon))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	var resp currentResponse
	if err := c.getJSON(ctx, c.weatherBaseURL+"/weather?"+q.Encode(), &resp); err != nil {
		return Conditions{}, fmt.Errorf("fetching conditions: %w", err)
	}

	if len(resp.Weather) == 0 {
		return Conditions{}, fmt.Errorf("malformed provider response: no weather conditions")
	}

	return Conditions{
		Temperature: resp.Main.Temp,
		Description: resp.Weather[0].Description,
		Icon:        resp.Weather[0].Icon,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}
