package remotecsv

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для загрузки CSV-расписания по HTTP
type Client struct {
	url        string
	maxBytes   int64
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(url string, timeout time.Duration, maxBytes int64, log Logger) *Client {
	return &Client{
		url:      url,
		maxBytes: maxBytes,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// URL возвращает адрес, с которого загружается расписание
func (c *Client) URL() string {
	return c.url
}

// Fetch загружает файл расписания целиком
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	c.log.Info("Fetching schedule from %s", c.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "text/csv, text/plain")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Schedule fetch failed: url=%s, error=%v", c.url, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", ErrInvalidResponse, err)
	}
	if int64(len(data)) > c.maxBytes {
		return nil, fmt.Errorf("%w: limit %d bytes", ErrTooLarge, c.maxBytes)
	}

	c.log.Info("Schedule fetched: url=%s, bytes=%d", c.url, len(data))
	return data, nil
}
