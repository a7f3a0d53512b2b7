package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaMkot/ISRES-BookingService/internal/integrations/propertyservice"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testAddress() propertyservice.Address {
	return propertyservice.Address{City: "Damascus", Street: "Baghdad Street"}
}

func TestClient_Geocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Damascus, Baghdad Street", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat": "33.5130695", "lon": "36.3095814", "display_name": "Baghdad Street, Damascus"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-agent", 5*time.Second, noopLogger{})

	coord, err := client.Geocode(context.Background(), testAddress())
	require.NoError(t, err)
	assert.InDelta(t, 33.5130695, coord.Lat, 1e-9)
	assert.InDelta(t, 36.3095814, coord.Lon, 1e-9)
}

func TestClient_Geocode_FirstMatchWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"lat": "1.0", "lon": "2.0"}, {"lat": "50.0", "lon": "60.0"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-agent", 5*time.Second, noopLogger{})

	coord, err := client.Geocode(context.Background(), testAddress())
	require.NoError(t, err)
	assert.Equal(t, 1.0, coord.Lat)
	assert.Equal(t, 2.0, coord.Lon)
}

func TestClient_Geocode_NoResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-agent", 5*time.Second, noopLogger{})

	_, err := client.Geocode(context.Background(), testAddress())
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestClient_Geocode_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-agent", 5*time.Second, noopLogger{})

	_, err := client.Geocode(context.Background(), testAddress())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_Geocode_MalformedCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[{"lat": "not-a-number", "lon": "36.3"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-agent", 5*time.Second, noopLogger{})

	_, err := client.Geocode(context.Background(), testAddress())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
