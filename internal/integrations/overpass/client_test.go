package overpass

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestClient_FindNearby(t *testing.T) {
	var receivedQuery string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		receivedQuery = r.PostForm.Get("data")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"elements": [
				{"type": "node", "id": 1, "lat": 33.514, "lon": 36.31, "tags": {"amenity": "cafe", "name": "Corner Cafe"}},
				{"type": "way", "id": 2, "center": {"lat": 33.515, "lon": 36.311}, "tags": {"leisure": "park"}}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	coord := domain.Coordinate{Lat: 33.5130695, Lon: 36.3095814}
	elements, err := client.FindNearby(context.Background(), coord, 500, domain.NearbyCategories)
	require.NoError(t, err)
	require.Len(t, elements, 2)

	// Запрос содержит по node-выражению на каждую категорию
	assert.Contains(t, receivedQuery, "[out:json];")
	assert.Contains(t, receivedQuery, "node[amenity=cafe](around:500,")
	assert.Contains(t, receivedQuery, "node[shop=supermarket](around:500,")
	assert.Contains(t, receivedQuery, "node[leisure=park](around:500,")
	assert.Contains(t, receivedQuery, "out center;")

	lat, lon, ok := elements[0].Coordinate()
	assert.True(t, ok)
	assert.Equal(t, 33.514, lat)
	assert.Equal(t, 36.31, lon)
	assert.Equal(t, "Corner Cafe", elements[0].Name())

	// Площадной объект отдает центр и пустое имя
	lat, lon, ok = elements[1].Coordinate()
	assert.True(t, ok)
	assert.Equal(t, 33.515, lat)
	assert.Equal(t, 36.311, lon)
	assert.Equal(t, "", elements[1].Name())
}

func TestClient_FindNearby_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	_, err := client.FindNearby(context.Background(), domain.Coordinate{}, 500, domain.NearbyCategories)
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestClient_FindNearby_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"elements": [`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second, noopLogger{})

	_, err := client.FindNearby(context.Background(), domain.Coordinate{}, 500, domain.NearbyCategories)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestBuildQuery(t *testing.T) {
	query := buildQuery(domain.Coordinate{Lat: 33.51, Lon: 36.29}, 500, []domain.CategorySelector{
		{Key: "amenity", Value: "school", Category: domain.CategorySchool},
		{Key: "shop", Value: "mall", Category: domain.CategoryMall},
	})

	assert.Contains(t, query, "node[amenity=school](around:500,33.510000,36.290000);")
	assert.Contains(t, query, "node[shop=mall](around:500,33.510000,36.290000);")
}
