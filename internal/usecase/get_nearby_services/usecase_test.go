package get_nearby_services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	"github.com/ShaMkot/ISRES-BookingService/internal/integrations/overpass"
	"github.com/ShaMkot/ISRES-BookingService/internal/integrations/propertyservice"
)

type stubPropertyClient struct {
	property *propertyservice.Property
	err      error
}

func (c *stubPropertyClient) GetProperty(context.Context, int64) (*propertyservice.Property, error) {
	return c.property, c.err
}

type stubGeocoder struct {
	coord domain.Coordinate
	err   error
}

func (g *stubGeocoder) Geocode(context.Context, propertyservice.Address) (domain.Coordinate, error) {
	return g.coord, g.err
}

type stubPOIClient struct {
	elements []overpass.Element
	err      error
}

func (c *stubPOIClient) FindNearby(context.Context, domain.Coordinate, int, []domain.CategorySelector) ([]overpass.Element, error) {
	return c.elements, c.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func testProperty() *propertyservice.Property {
	return &propertyservice.Property{
		ID:      10,
		OwnerID: 100,
		Address: propertyservice.Address{City: "Damascus", Street: "Baghdad Street"},
	}
}

func TestUseCase_Execute_GroupsAndSortsByDistance(t *testing.T) {
	origin := domain.Coordinate{Lat: 33.51, Lon: 36.29}

	poi := &stubPOIClient{elements: []overpass.Element{
		{Type: "node", ID: 1, Lat: 33.515, Lon: 36.29, Tags: map[string]string{"amenity": "cafe", "name": "Corner Cafe"}},
		{Type: "node", ID: 2, Lat: 33.511, Lon: 36.29, Tags: map[string]string{"amenity": "cafe", "name": "Near Cafe"}},
		{Type: "node", ID: 3, Lat: 33.512, Lon: 36.29, Tags: map[string]string{"amenity": "pharmacy", "name": "City Pharmacy"}},
	}}

	uc := NewUseCase(&stubPropertyClient{property: testProperty()}, &stubGeocoder{coord: origin}, poi, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 10})
	require.NoError(t, err)

	assert.Equal(t, int64(10), resp.PropertyID)
	assert.Equal(t, origin.Lat, resp.Lat)
	assert.Equal(t, origin.Lon, resp.Lon)

	require.Len(t, resp.Services, 2)

	cafes := resp.Services["cafe"]
	require.Len(t, cafes, 2)
	assert.Equal(t, "Near Cafe", cafes[0].Name)
	assert.Equal(t, "Corner Cafe", cafes[1].Name)
	assert.LessOrEqual(t, cafes[0].DistanceKm, cafes[1].DistanceKm)

	require.Len(t, resp.Services["pharmacy"], 1)
	assert.Equal(t, "City Pharmacy", resp.Services["pharmacy"][0].Name)
}

func TestUseCase_Execute_UnnamedElementGetsFallbackName(t *testing.T) {
	origin := domain.Coordinate{Lat: 33.51, Lon: 36.29}

	poi := &stubPOIClient{elements: []overpass.Element{
		{Type: "node", ID: 1, Lat: 33.5101, Lon: 36.2901, Tags: map[string]string{"shop": "supermarket"}},
	}}

	uc := NewUseCase(&stubPropertyClient{property: testProperty()}, &stubGeocoder{coord: origin}, poi, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 10})
	require.NoError(t, err)

	records := resp.Services["supermarket"]
	require.Len(t, records, 1)
	assert.Equal(t, domain.UnnamedServiceName, records[0].Name)
	assert.GreaterOrEqual(t, records[0].DistanceKm, 0.0)
}

func TestUseCase_Execute_SkipsElementsWithoutCoordinateOrCategory(t *testing.T) {
	origin := domain.Coordinate{Lat: 33.51, Lon: 36.29}

	poi := &stubPOIClient{elements: []overpass.Element{
		// Нет координаты - нечего считать
		{Type: "node", ID: 1, Tags: map[string]string{"amenity": "cafe", "name": "Ghost Cafe"}},
		// Тег вне фиксированного списка категорий
		{Type: "node", ID: 2, Lat: 33.511, Lon: 36.29, Tags: map[string]string{"amenity": "bank", "name": "Bank"}},
		// Площадной объект с центром - попадает в результат
		{Type: "way", ID: 3, Center: &overpass.Center{Lat: 33.512, Lon: 36.29}, Tags: map[string]string{"leisure": "park", "name": "Central Park"}},
	}}

	uc := NewUseCase(&stubPropertyClient{property: testProperty()}, &stubGeocoder{coord: origin}, poi, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Services, 1)
	require.Len(t, resp.Services["park"], 1)
	assert.Equal(t, "Central Park", resp.Services["park"][0].Name)
}

func TestUseCase_Execute_PropertyNotFound(t *testing.T) {
	uc := NewUseCase(
		&stubPropertyClient{err: propertyservice.ErrPropertyNotFound},
		&stubGeocoder{}, &stubPOIClient{}, noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{PropertyID: 10})
	assert.ErrorIs(t, err, ErrPropertyNotFound)
}

func TestUseCase_Execute_GeocodeFailureIsFatal(t *testing.T) {
	uc := NewUseCase(
		&stubPropertyClient{property: testProperty()},
		&stubGeocoder{err: assert.AnError},
		&stubPOIClient{}, noopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 10})
	assert.ErrorIs(t, err, ErrGeocodeFailed)
	assert.Nil(t, resp, "no partial result on geocode failure")
}

func TestUseCase_Execute_POILookupFailure(t *testing.T) {
	uc := NewUseCase(
		&stubPropertyClient{property: testProperty()},
		&stubGeocoder{coord: domain.Coordinate{Lat: 33.51, Lon: 36.29}},
		&stubPOIClient{err: assert.AnError}, noopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{PropertyID: 10})
	assert.ErrorIs(t, err, ErrServiceLookupFailed)
}

func TestUseCase_Execute_InvalidPropertyID(t *testing.T) {
	uc := NewUseCase(&stubPropertyClient{}, &stubGeocoder{}, &stubPOIClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{PropertyID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
