package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/DeleoNey/Travel-Planner-API/internal/logger"

	"go.uber.org/zap"
)

// Weather - нормализованная сводка текущей погоды в точке маршрута.
// Отсутствующие у провайдера поля остаются пустыми, ошибки это не вызывает.
type Weather struct {
	Condition   string  `json:"condition,omitempty"`
	Description string  `json:"description,omitempty"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	WindSpeed   float64 `json:"wind_speed"`
	Country     string  `json:"country,omitempty"`
	City        string  `json:"city,omitempty"`
}

// WeatherService запрашивает текущую погоду у внешнего погодного API.
type WeatherService struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewWeatherService создает сервис погоды.
func NewWeatherService(baseURL, apiKey string) *WeatherService {
	return &WeatherService{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// CurrentWeather возвращает текущую погоду по координатам (единицы - метрические).
// Никогда не паникует: любой сбой (HTTP-статус, сеть, форма ответа)
// возвращается как *ProviderError соответствующего вида.
func (s *WeatherService) CurrentWeather(ctx context.Context, lat, lon float64) (*Weather, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", s.apiKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, newProviderError("weather", KindNetwork, err.Error())
	}

	resp, err := s.client.Do(req)
	if err != nil {
		logger.Get().Warn("сервис погоды недоступен", zap.Error(err))
		return nil, newProviderError("weather", KindNetwork, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Get().Warn("сервис погоды ответил ошибкой", zap.Int("status", resp.StatusCode))
		return nil, newProviderError("weather", KindHTTP, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var payload struct {
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
		Main *struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Sys struct {
			Country string `json:"country"`
		} `json:"sys"`
		Name string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, newProviderError("weather", KindDecode, err.Error())
	}
	if payload.Main == nil {
		// Температура - обязательная часть ответа, без нее сводка бессмысленна.
		return nil, newProviderError("weather", KindDecode, "response missing main section")
	}

	w := &Weather{
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		WindSpeed:   payload.Wind.Speed,
		Country:     payload.Sys.Country,
		City:        payload.Name,
	}
	if len(payload.Weather) > 0 {
		w.Condition = payload.Weather[0].Main
		w.Description = payload.Weather[0].Description
	}

	return w, nil
}
