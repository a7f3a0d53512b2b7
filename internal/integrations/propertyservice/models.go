package propertyservice

// Property модель объекта недвижимости из PropertyService
type Property struct {
	ID      int64   `json:"id"`
	OwnerID int64   `json:"owner_id"`
	Title   string  `json:"title"`
	Address Address `json:"address"`
}

// Address структурированный адрес объекта
type Address struct {
	City     string `json:"city"`
	Street   string `json:"street"`
	District string `json:"district,omitempty"`
}

// ErrorResponse модель ошибки от PropertyService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
