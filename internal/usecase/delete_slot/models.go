package delete_slot

// Request модель запроса на удаление слота
type Request struct {
	SlotID      int64 // ID слота просмотра
	RequesterID int64 // ID запросившего удаление (из контекста аутентификации)
}
