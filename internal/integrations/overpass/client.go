package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ShaMkot/ISRES-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент Overpass API - индекса точек интереса OpenStreetMap
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Overpass
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FindNearby возвращает элементы индекса POI в радиусе radiusMeters от точки,
// подходящие под переданные селекторы категорий. Для площадных объектов
// запрашивается вычисленный центр (out center).
func (c *Client) FindNearby(
	ctx context.Context,
	coord domain.Coordinate,
	radiusMeters int,
	selectors []domain.CategorySelector,
) ([]Element, error) {
	query := buildQuery(coord, radiusMeters, selectors)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrLookupFailed, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrLookupFailed, resp.StatusCode, string(body))
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.log.Info("FindNearby: %d elements within %dm of (%f, %f)",
		len(parsed.Elements), radiusMeters, coord.Lat, coord.Lon)

	return parsed.Elements, nil
}

// buildQuery собирает Overpass QL запрос: по node-выражению на каждую
// категорию, объединенных в одну группу
func buildQuery(coord domain.Coordinate, radiusMeters int, selectors []domain.CategorySelector) string {
	var b strings.Builder

	b.WriteString("[out:json];\n(\n")
	for _, sel := range selectors {
		b.WriteString(fmt.Sprintf("  node[%s=%s](around:%d,%f,%f);\n",
			sel.Key, sel.Value, radiusMeters, coord.Lat, coord.Lon))
	}
	b.WriteString(");\nout center;")

	return b.String()
}
