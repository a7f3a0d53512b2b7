package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Nearby-services search constants
const (
	// NearbyRadiusMeters радиус поиска сервисов вокруг объекта
	NearbyRadiusMeters = 500

	// UnnamedServiceName подставляется для POI без названия
	UnnamedServiceName = "Unnamed"
)
