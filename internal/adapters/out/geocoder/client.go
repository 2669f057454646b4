// Package geocoder implements the Geocoder port on top of the Yandex
// geocoding HTTP API.
package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Client resolves postal addresses via the Yandex geocoder API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a geocoder client for the given API endpoint and key.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// geocodeResponse mirrors the parts of the Yandex response we read.
// The position comes as a "lon lat" pair in the pos field.
type geocodeResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Resolve looks up the coordinates of the given address.
// Returns errs.ErrObjectNotFound when the service finds no match.
func (c *Client) Resolve(ctx context.Context, address string) (kernel.Coordinates, error) {
	if strings.TrimSpace(address) == "" {
		return kernel.Coordinates{}, errs.NewValueIsRequiredError("address")
	}

	reqURL := fmt.Sprintf("%s?apikey=%s&geocode=%s&format=json",
		c.baseURL, url.QueryEscape(c.apiKey), url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return kernel.Coordinates{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.Coordinates{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.Coordinates{}, fmt.Errorf("geocoder responded with status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err = json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return kernel.Coordinates{}, fmt.Errorf("failed to decode geocoder response: %w", err)
	}

	members := decoded.Response.GeoObjectCollection.FeatureMember
	if len(members) == 0 {
		return kernel.Coordinates{}, errs.NewObjectNotFoundError("address", address)
	}

	return parsePos(members[0].GeoObject.Point.Pos)
}

// parsePos converts the "lon lat" pair into domain coordinates.
func parsePos(pos string) (kernel.Coordinates, error) {
	parts := strings.Fields(pos)
	if len(parts) != 2 {
		return kernel.Coordinates{}, errs.NewValueIsInvalidErrorWithCause(
			"pos", fmt.Errorf("expected two fields, got %q", pos))
	}

	longitude, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return kernel.Coordinates{}, errs.NewValueIsInvalidErrorWithCause("longitude", err)
	}
	latitude, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return kernel.Coordinates{}, errs.NewValueIsInvalidErrorWithCause("latitude", err)
	}

	return kernel.NewCoordinates(latitude, longitude)
}
