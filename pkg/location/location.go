// Package location resolves the viewer's coordinates to a short place label
// for the clock card, falling back to the local timezone name when no lookup
// is possible.
package location

//go:generate mockgen -destination=mocks/geocoder.go -package=mocks gitlab.com/tinyland/lab/tickcard/pkg/location Geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultEndpoint is the BigDataCloud-compatible service used when none is
// configured.
const DefaultEndpoint = "https://api.bigdatacloud.net"

const reversePath = "/data/reverse-geocode-client"

// ErrLookupFailed covers every way a reverse lookup can fail to produce a
// city: transport errors, non-2xx replies, empty results, missing coordinates.
var ErrLookupFailed = errors.New("location: lookup failed")

// Place is the subset of a reverse geocoding reply the card displays.
type Place struct {
	City        string `json:"city"`
	Locality    string `json:"locality"`
	CountryCode string `json:"countryCode"`
}

// Label returns "City, CC", or the city alone without a country code.
func (p Place) Label() string {
	name := p.City
	if name == "" {
		name = p.Locality
	}
	if p.CountryCode == "" {
		return name
	}
	return name + ", " + p.CountryCode
}

// Geocoder turns coordinates into a place.
type Geocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (Place, error)
}

// Client is an HTTP Geocoder.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for baseURL; an empty baseURL means
// DefaultEndpoint and a non-positive timeout means five seconds.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Reverse looks up the place at lat/lon.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (Place, error) {
	if !ValidCoordinates(lat, lon) {
		return Place{}, fmt.Errorf("%w: coordinates %v,%v out of range", ErrLookupFailed, lat, lon)
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("localityLanguage", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+reversePath+"?"+q.Encode(), nil)
	if err != nil {
		return Place{}, fmt.Errorf("%w: create request: %v", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Place{}, fmt.Errorf("%w: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return Place{}, fmt.Errorf("%w: read response: %v", ErrLookupFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Place{}, fmt.Errorf("%w: status %d", ErrLookupFailed, resp.StatusCode)
	}

	var p Place
	if err := json.Unmarshal(body, &p); err != nil {
		return Place{}, fmt.Errorf("%w: decode: %v", ErrLookupFailed, err)
	}
	if p.City == "" && p.Locality == "" {
		return Place{}, fmt.Errorf("%w: no city in reply", ErrLookupFailed)
	}
	return p, nil
}

// ValidCoordinates reports whether lat/lon lie on the globe.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// FallbackLabel renders the full IANA name for display with underscores as
// spaces ("America/New_York" becomes "America/New York").
func FallbackLabel(tz string) string {
	return strings.ReplaceAll(tz, "_", " ")
}

// Resolve returns the geocoded label, or FallbackLabel(tz) with the lookup
// error when the lookup fails. A nil geocoder always falls back.
func Resolve(ctx context.Context, g Geocoder, lat, lon float64, tz string) (string, error) {
	if g == nil {
		return FallbackLabel(tz), fmt.Errorf("%w: lookup disabled", ErrLookupFailed)
	}
	p, err := g.Reverse(ctx, lat, lon)
	if err != nil {
		if !errors.Is(err, ErrLookupFailed) {
			err = fmt.Errorf("%w: %v", ErrLookupFailed, err)
		}
		return FallbackLabel(tz), err
	}
	return p.Label(), nil
}
