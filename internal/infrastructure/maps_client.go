package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"project_travelSafe/internal/entities"
)

// MapsClient implements interfaces.PlacesSource and
// interfaces.DirectionsSource against the Google Maps REST APIs.
type MapsClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewMapsClient(apiKey, baseURL string, timeout time.Duration) *MapsClient {
	return &MapsClient{
		apiKey:  apiKey,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Wire shapes for the Maps JSON payloads. Distances and durations come
// as {text, value} objects; only the display text is carried over.
type wireTextValue struct {
	Text string `json:"text"`
}

type wireLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type wirePlace struct {
	Name     string   `json:"name"`
	Types    []string `json:"types"`
	Vicinity string   `json:"vicinity"`
	Geometry struct {
		Location wireLatLng `json:"location"`
	} `json:"geometry"`
}

type wireStep struct {
	HTMLInstructions string        `json:"html_instructions"`
	Distance         wireTextValue `json:"distance"`
	Duration         wireTextValue `json:"duration"`
}

type wireLeg struct {
	StartAddress string     `json:"start_address"`
	EndAddress   string     `json:"end_address"`
	EndLocation  wireLatLng `json:"end_location"`
	Steps        []wireStep `json:"steps"`
}

type wireRoute struct {
	Summary string    `json:"summary"`
	Legs    []wireLeg `json:"legs"`
}

func (c *MapsClient) FetchNearby(ctx context.Context, lat, lng float64, radiusMeters int, categories []string) ([]entities.Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("type", strings.Join(categories, "|"))
	params.Set("key", c.apiKey)

	var payload struct {
		Status  string      `json:"status"`
		Results []wirePlace `json:"results"`
	}
	if err := c.getJSON(ctx, "/place/nearbysearch/json", params, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("places search status %s", payload.Status)
	}

	places := make([]entities.Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		places = append(places, entities.Place{
			Name:     r.Name,
			Types:    r.Types,
			Vicinity: r.Vicinity,
			Location: entities.LatLng{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng},
		})
	}
	return places, nil
}

func (c *MapsClient) FetchRoute(ctx context.Context, origin, destination string) ([]entities.Route, error) {
	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)
	params.Set("mode", "walking")
	params.Set("key", c.apiKey)

	var payload struct {
		Status string      `json:"status"`
		Routes []wireRoute `json:"routes"`
	}
	if err := c.getJSON(ctx, "/directions/json", params, &payload); err != nil {
		return nil, err
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("directions status %s", payload.Status)
	}

	routes := make([]entities.Route, 0, len(payload.Routes))
	for _, r := range payload.Routes {
		route := entities.Route{Summary: r.Summary, Legs: make([]entities.Leg, 0, len(r.Legs))}
		for _, l := range r.Legs {
			leg := entities.Leg{
				StartAddress: l.StartAddress,
				EndAddress:   l.EndAddress,
				EndLocation:  entities.LatLng{Lat: l.EndLocation.Lat, Lng: l.EndLocation.Lng},
				Steps:        make([]entities.Step, 0, len(l.Steps)),
			}
			for _, s := range l.Steps {
				leg.Steps = append(leg.Steps, entities.Step{
					Instructions: s.HTMLInstructions,
					Distance:     s.Distance.Text,
					Duration:     s.Duration.Text,
				})
			}
			route.Legs = append(route.Legs, leg)
		}
		routes = append(routes, route)
	}
	return routes, nil
}

func (c *MapsClient) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps api returned HTTP %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
