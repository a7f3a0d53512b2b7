package get_nearby_services

// Request модель запроса сервисов рядом с объектом
type Request struct {
	PropertyID int64
}

// ServiceRecord сервис рядом с объектом
type ServiceRecord struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKm float64 `json:"distanceKm"`
}

// Response сервисы, сгруппированные по категориям.
// Внутри категории записи отсортированы по расстоянию по возрастанию;
// выбор ближайшего в категории остается за потребителем.
type Response struct {
	PropertyID int64                      `json:"propertyId"`
	Lat        float64                    `json:"lat"`
	Lon        float64                    `json:"lon"`
	Services   map[string][]ServiceRecord `json:"services"`
}
