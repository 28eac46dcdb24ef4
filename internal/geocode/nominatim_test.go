package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petparrk/internal/config"
)

func TestNominatimClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "PetParrk/1.0", r.Header.Get("User-Agent"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		switch r.URL.Query().Get("q") {
		case "1 Main St, San Francisco, CA 94110":
			_, _ = w.Write([]byte(`[{"lat":"37.7599","lon":"-122.4148","display_name":"Main St"}]`))
		case "bad coords":
			_, _ = w.Write([]byte(`[{"lat":"north","lon":"-122"}]`))
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c, err := NewNominatimClient(config.GeocoderConfig{BaseURL: srv.URL, UserAgent: "PetParrk/1.0"})
	require.NoError(t, err)
	ctx := context.Background()

	pt, err := c.Lookup(ctx, "1 Main St, San Francisco, CA 94110")
	require.NoError(t, err)
	require.NotNil(t, pt)
	assert.InDelta(t, 37.7599, pt.Lat, 1e-9)
	assert.InDelta(t, -122.4148, pt.Lon, 1e-9)

	pt, err = c.Lookup(ctx, "nowhere")
	assert.NoError(t, err)
	assert.Nil(t, pt)

	_, err = c.Lookup(ctx, "bad coords")
	assert.Error(t, err)
}
