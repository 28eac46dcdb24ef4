// Package geocode fills in vet coordinates from their street address.
package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"petparrk/internal/config"
	"petparrk/internal/httpclient"
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64
	Lon float64
}

// Geocoder resolves an address. A nil point with a nil error means no match.
type Geocoder interface {
	Lookup(ctx context.Context, address string) (*Point, error)
}

// NominatimClient queries an OpenStreetMap Nominatim server.
type NominatimClient struct {
	http      *httpclient.Client
	userAgent string
}

// NewNominatimClient creates a client for cfg.BaseURL.
func NewNominatimClient(cfg config.GeocoderConfig) (*NominatimClient, error) {
	c, err := httpclient.NewWithBaseURL(cfg.BaseURL, httpclient.DefaultTimeout)
	if err != nil {
		return nil, err
	}
	return &NominatimClient{http: c, userAgent: cfg.UserAgent}, nil
}

var _ Geocoder = (*NominatimClient)(nil)

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Lookup returns the first search hit for address.
func (c *NominatimClient) Lookup(ctx context.Context, address string) (*Point, error) {
	q := url.Values{
		"q":      {address},
		"format": {"json"},
		"limit":  {"1"},
	}
	var results []searchResult
	headers := map[string]string{"User-Agent": c.userAgent}
	if err := c.http.DoJSON(ctx, http.MethodGet, "/search?"+q.Encode(), headers, nil, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lat %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse lon %q: %w", results[0].Lon, err)
	}
	return &Point{Lat: lat, Lon: lon}, nil
}
