package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
	"github.com/ShaMkot/ISRES-BookingService/internal/integrations/propertyservice"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент сервиса геокодирования Nominatim.
// Преобразует структурированный адрес в координаты.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Nominatim.
// userAgent обязателен - публичный Nominatim отклоняет запросы без него.
func NewClient(baseURL string, userAgent string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Geocode возвращает координаты лучшего совпадения для адреса.
// Первый результат считается авторитетным (limit=1, без дизамбигуации).
// Если совпадений нет - ErrNoResult; запасных координат не возвращается.
func (c *Client) Geocode(ctx context.Context, address propertyservice.Address) (domain.Coordinate, error) {
	query := fmt.Sprintf("%s, %s", address.City, address.Street)

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return domain.Coordinate{}, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if len(results) == 0 {
		c.log.Warn("Geocode: no result for address %q", query)
		return domain.Coordinate{}, ErrNoResult
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: failed to parse lat %q: %v", ErrInvalidResponse, results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("%w: failed to parse lon %q: %v", ErrInvalidResponse, results[0].Lon, err)
	}

	c.log.Info("Geocode: resolved %q to (%f, %f)", query, lat, lon)
	return domain.Coordinate{Lat: lat, Lon: lon}, nil
}
