package domain

// Coordinate точка на карте (градусы)
type Coordinate struct {
	Lat float64
	Lon float64
}

// NearbyService сервис рядом с объектом недвижимости.
// Результат запроса к внешнему индексу POI, не персистится.
type NearbyService struct {
	Name       string
	Category   ServiceCategory
	Lat        float64
	Lon        float64
	DistanceKm float64 // расстояние от объекта по дуге большого круга
	PropertyID int64
}

// ServiceCategory категория сервиса из фиксированного списка
type ServiceCategory string

const (
	CategorySchool       ServiceCategory = "school"
	CategoryCafe         ServiceCategory = "cafe"
	CategoryPharmacy     ServiceCategory = "pharmacy"
	CategoryHospital     ServiceCategory = "hospital"
	CategoryRestaurant   ServiceCategory = "restaurant"
	CategoryDoctors      ServiceCategory = "doctors"
	CategorySupermarket  ServiceCategory = "supermarket"
	CategoryMall         ServiceCategory = "mall"
	CategoryPark         ServiceCategory = "park"
	CategorySportsCentre ServiceCategory = "sports_centre"
)

// NearbyCategories фиксированный список категорий для поиска сервисов.
// Ключ - тег OSM, по которому категория ищется в индексе.
var NearbyCategories = []CategorySelector{
	{Key: "amenity", Value: string(CategorySchool), Category: CategorySchool},
	{Key: "amenity", Value: string(CategoryCafe), Category: CategoryCafe},
	{Key: "amenity", Value: string(CategoryPharmacy), Category: CategoryPharmacy},
	{Key: "amenity", Value: string(CategoryHospital), Category: CategoryHospital},
	{Key: "amenity", Value: string(CategoryRestaurant), Category: CategoryRestaurant},
	{Key: "amenity", Value: string(CategoryDoctors), Category: CategoryDoctors},
	{Key: "shop", Value: string(CategorySupermarket), Category: CategorySupermarket},
	{Key: "shop", Value: string(CategoryMall), Category: CategoryMall},
	{Key: "leisure", Value: string(CategoryPark), Category: CategoryPark},
	{Key: "leisure", Value: string(CategorySportsCentre), Category: CategorySportsCentre},
}

// CategorySelector пара тег/значение для запроса к индексу POI
type CategorySelector struct {
	Key      string
	Value    string
	Category ServiceCategory
}
