package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DeleoNey/Travel-Planner-API/internal/logger"

	"go.uber.org/zap"
)

var (
	// ErrUnknownCountry - для страны нет валюты в справочнике.
	ErrUnknownCountry = errors.New("currency for country not found")
	// ErrUnsupportedCurrency - провайдер курсов не знает целевую валюту.
	ErrUnsupportedCurrency = errors.New("invalid target currency")
	// ErrServiceUnavailable - провайдер курсов недоступен или ответил ошибкой.
	ErrServiceUnavailable = errors.New("exchange rate service unavailable")
)

// countryToCurrency - фиксированный справочник "страна -> код валюты ISO 4217".
// Сопоставление точное и регистрозависимое.
var countryToCurrency = map[string]string{
	"Ukraine":        "UAH",
	"Poland":         "PLN",
	"Germany":        "EUR",
	"France":         "EUR",
	"United States":  "USD",
	"Italy":          "EUR",
	"Belgium":        "EUR",
	"United Kingdom": "GBP",
}

// ConvertedBudget - результат пересчета бюджета в валюту страны посещения.
type ConvertedBudget struct {
	OriginalAmount   float64 `json:"original_amount"`
	OriginalCurrency string  `json:"original_currency"`
	ConvertedAmount  string  `json:"converted_amount"`
}

// CurrencyService выполняет пересчет сумм по живому курсу.
// Каждый вызов Convert обращается к провайдеру курсов без кеширования:
// результат используется только для отображения.
type CurrencyService struct {
	baseURL      string
	baseCurrency string
	client       *http.Client
}

// NewCurrencyService создает сервис пересчета валют.
// Пустая базовая валюта заменяется на "USD".
func NewCurrencyService(baseURL, baseCurrency string) *CurrencyService {
	if baseCurrency == "" {
		baseCurrency = "USD"
	}
	return &CurrencyService{
		baseURL:      baseURL,
		baseCurrency: baseCurrency,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

// CurrencyForCountry возвращает код валюты для страны из фиксированного справочника.
func (s *CurrencyService) CurrencyForCountry(country string) (string, error) {
	currency, ok := countryToCurrency[country]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCountry, country)
	}
	return currency, nil
}

// Convert пересчитывает сумму из базовой валюты в целевую по текущему курсу.
func (s *CurrencyService) Convert(ctx context.Context, amount float64, targetCurrency string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/"+s.baseCurrency, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Get().Warn("сервис курсов валют недоступен", zap.Error(err))
		return 0, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Get().Warn("сервис курсов валют ответил ошибкой", zap.Int("status", resp.StatusCode))
		return 0, fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
	}

	var payload struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	rate, ok := payload.Rates[targetCurrency]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, targetCurrency)
	}

	return amount * rate, nil
}

// ConvertBudgetForCountry пересчитывает бюджет в валюту указанной страны.
// Итоговая сумма округляется до 2 знаков и выдается строкой вида "4000.00 UAH".
func (s *CurrencyService) ConvertBudgetForCountry(ctx context.Context, amount float64, country string) (*ConvertedBudget, error) {
	targetCurrency, err := s.CurrencyForCountry(country)
	if err != nil {
		return nil, err
	}

	converted, err := s.Convert(ctx, amount, targetCurrency)
	if err != nil {
		return nil, err
	}

	return &ConvertedBudget{
		OriginalAmount:   amount,
		OriginalCurrency: s.baseCurrency,
		ConvertedAmount:  fmt.Sprintf("%.2f %s", converted, targetCurrency),
	}, nil
}
