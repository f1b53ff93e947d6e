package providerservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с каталогом провайдеров
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProvider получает карточку провайдера по ID
func (c *Client) GetProvider(ctx context.Context, providerID int64) (*Provider, error) {
	url := fmt.Sprintf("%s/internal/providers/%d", c.baseURL, providerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid provider ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrProviderNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var provider Provider
	if err := json.NewDecoder(resp.Body).Decode(&provider); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &provider, nil
}

// GetProviderWithGracefulDegradation получает карточку провайдера с graceful degradation
// При недоступности каталога возвращает ErrServiceDegraded: сессия календаря
// все равно откроется на настройках движка по умолчанию
func (c *Client) GetProviderWithGracefulDegradation(ctx context.Context, providerID int64) (*Provider, error) {
	c.log.Info("Fetching provider card for provider_id=%d", providerID)

	provider, err := c.GetProvider(ctx, providerID)
	if err != nil {
		// Отсутствие провайдера - бизнес-ошибка, пробрасываем её дальше
		if err == ErrProviderNotFound {
			c.log.Info("Provider %d not found in directory", providerID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		c.log.Error("ProviderService unavailable, applying graceful degradation for provider_id=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: provider_id=%d, error=%v", ErrServiceDegraded, providerID, err)
	}

	c.log.Info("Successfully fetched provider %d, slot_duration=%d, fallback_enabled=%t",
		providerID, provider.SlotDurationMinutes, provider.FallbackEnabled)
	return provider, nil
}
