package overpass

// response ответ Overpass API (формат out:json)
type response struct {
	Elements []Element `json:"elements"`
}

// Element элемент индекса POI. Узлы несут собственные координаты,
// площадные объекты - вычисленный центр (out center).
type Element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat,omitempty"`
	Lon    float64           `json:"lon,omitempty"`
	Center *Center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

// Center центр площадного объекта
type Center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Coordinate возвращает координату элемента: собственную для узла,
// центр для площадного объекта. ok=false, если координаты нет вовсе.
func (e *Element) Coordinate() (lat, lon float64, ok bool) {
	if e.Lat != 0 || e.Lon != 0 {
		return e.Lat, e.Lon, true
	}
	if e.Center != nil {
		return e.Center.Lat, e.Center.Lon, true
	}
	return 0, 0, false
}

// Name возвращает значение тега name, пустую строку если тега нет
func (e *Element) Name() string {
	if e.Tags == nil {
		return ""
	}
	return e.Tags["name"]
}

// TagValue возвращает значение произвольного тега элемента
func (e *Element) TagValue(key string) string {
	if e.Tags == nil {
		return ""
	}
	return e.Tags[key]
}
